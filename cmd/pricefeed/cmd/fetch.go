package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pricefeed/barfile"
	"github.com/rustyeddy/pricefeed/series"
	"github.com/rustyeddy/pricefeed/store"
	"github.com/rustyeddy/pricefeed/vendorapi"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch a price series from a source and normalize it",
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.AddCommand(newFetchVendorCmd())
	fetchCmd.AddCommand(newFetchFileCmd())
	fetchCmd.AddCommand(newFetchTerminalCmd())
}

func newFetchVendorCmd() *cobra.Command {
	var (
		baseURL  string
		token    string
		symbol   string
		interval string
		startStr string
		endStr   string
		outPath  string
		dbPath   string
		noReduce bool
	)

	cmd := &cobra.Command{
		Use:   "vendor",
		Short: "Download bar history from the vendor API",
		RunE: func(cmd *cobra.Command, args []string) error {
			if baseURL == "" {
				baseURL = strings.TrimSpace(os.Getenv("PRICEFEED_BASE_URL"))
			}
			if baseURL == "" {
				return fmt.Errorf("missing --base-url (or env PRICEFEED_BASE_URL)")
			}
			if token == "" {
				token = strings.TrimSpace(os.Getenv("PRICEFEED_TOKEN"))
			}
			if symbol == "" {
				return fmt.Errorf("missing --symbol (e.g. MSFT)")
			}
			if interval == "" {
				interval = "1d"
			}

			start, err := parseDay(startStr)
			if err != nil {
				return fmt.Errorf("bad --start: %w", err)
			}
			end, err := parseDay(endStr)
			if err != nil {
				return fmt.Errorf("bad --end: %w", err)
			}

			client := vendorapi.NewClient(baseURL, token)
			frame, err := vendorapi.Fetch(context.Background(), client, symbol,
				start, end, vendorapi.Interval(interval), !noReduce)
			if err != nil {
				return err
			}
			if frame.Len() == 0 {
				fmt.Fprintf(os.Stderr, "no data for %s in range\n", symbol)
			}

			return deliver(frame, symbol, "vendor", interval, outPath, dbPath)
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "vendor API base URL")
	cmd.Flags().StringVar(&token, "token", "", "vendor API token (or env PRICEFEED_TOKEN)")
	cmd.Flags().StringVar(&symbol, "symbol", "", "ticker symbol")
	cmd.Flags().StringVar(&interval, "interval", "1d", "bar interval (1m..3mo)")
	cmd.Flags().StringVar(&startStr, "start", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&endStr, "end", "", "end date YYYY-MM-DD")
	cmd.Flags().StringVar(&outPath, "out", "", "write series CSV to this path")
	cmd.Flags().StringVar(&dbPath, "db", "", "archive series into this SQLite store")
	cmd.Flags().BoolVar(&noReduce, "no-reduce", false, "keep all columns, skip gap filling")

	return cmd
}

func newFetchFileCmd() *cobra.Command {
	var (
		path     string
		delim    string
		intraday bool
		outPath  string
		dbPath   string
		noReduce bool
	)

	cmd := &cobra.Command{
		Use:   "file",
		Short: "Read a delimited bar export file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path == "" {
				return fmt.Errorf("missing --path")
			}
			d := []rune(delim)
			if len(d) != 1 {
				return fmt.Errorf("--delim must be a single character")
			}

			frame, err := barfile.Read(path, d[0], !intraday, !noReduce)
			if err != nil {
				return err
			}

			kind := "daily"
			if intraday {
				kind = "intraday"
			}
			return deliver(frame, path, "file", kind, outPath, dbPath)
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "bar export file (.gz/.xz supported)")
	cmd.Flags().StringVar(&delim, "delim", "\t", "field delimiter")
	cmd.Flags().BoolVar(&intraday, "intraday", false, "use the intraday schema (Date+Time columns)")
	cmd.Flags().StringVar(&outPath, "out", "", "write series CSV to this path")
	cmd.Flags().StringVar(&dbPath, "db", "", "archive series into this SQLite store")
	cmd.Flags().BoolVar(&noReduce, "no-reduce", false, "keep all columns, skip gap filling")

	return cmd
}

// deliver writes the frame to a CSV file and/or the SQLite archive,
// whichever the caller asked for.
func deliver(frame *series.Frame, symbol, source, interval, outPath, dbPath string) error {
	if outPath == "" && dbPath == "" {
		fmt.Printf("%d rows fetched (no --out or --db given)\n", frame.Len())
		return nil
	}

	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create %s: %w", outPath, err)
		}
		if err := store.WriteCSV(f, frame); err != nil {
			f.Close()
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		if err := f.Close(); err != nil {
			return err
		}
		fmt.Printf("wrote %d rows to %s\n", frame.Len(), outPath)
	}

	if dbPath != "" {
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		recID, err := st.Save(symbol, source, interval, frame)
		if err != nil {
			return fmt.Errorf("save series: %w", err)
		}
		fmt.Printf("stored %d rows as %s\n", frame.Len(), recID)
	}

	return nil
}

func parseDay(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.UTC)
}
