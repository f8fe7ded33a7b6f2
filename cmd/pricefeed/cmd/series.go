package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pricefeed/store"
)

var seriesCmd = &cobra.Command{
	Use:   "series",
	Short: "Inspect and export archived series",
}

var (
	seriesDBPath  string
	seriesOutPath string
)

var seriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List archived series, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(seriesDBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		recs, err := st.List()
		if err != nil {
			return err
		}
		if len(recs) == 0 {
			fmt.Println("no series stored")
			return nil
		}
		for _, r := range recs {
			fmt.Printf("%s  %-12s %-8s %-6s %6d rows  %s\n",
				r.ID, r.Symbol, r.Source, r.Interval, r.Rows,
				r.CreatedAt.Format("2006-01-02 15:04"))
		}
		return nil
	},
}

var seriesExportCmd = &cobra.Command{
	Use:   "export <series-id>",
	Short: "Export an archived series to CSV",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := store.Open(seriesDBPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		frame, err := st.Load(args[0])
		if err != nil {
			return err
		}
		if frame.Len() == 0 {
			return fmt.Errorf("no such series (or empty): %s", args[0])
		}

		out := os.Stdout
		if seriesOutPath != "" {
			f, err := os.Create(seriesOutPath)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return store.WriteCSV(out, frame)
	},
}

func init() {
	rootCmd.AddCommand(seriesCmd)
	seriesCmd.AddCommand(seriesListCmd)
	seriesCmd.AddCommand(seriesExportCmd)

	seriesCmd.PersistentFlags().StringVar(&seriesDBPath, "db", "./pricefeed.sqlite", "path to SQLite series store")
	seriesExportCmd.Flags().StringVarP(&seriesOutPath, "out", "o", "", "output file (default stdout)")
}
