package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/pricefeed/terminal"
)

// Terminal sessions are external to this binary: connecting and logging in
// belong to whatever bridge owns the live terminal. By default no session is
// attached, so the fetch degrades to "no usable data" exactly as the adapter
// does for an unauthorized call. A bridge embedding this CLI swaps these in
// before Execute.
var (
	terminalSession    terminal.Terminal
	terminalAuthorized bool
)

func newFetchTerminalCmd() *cobra.Command {
	var (
		symbol   string
		tfStr    string
		startStr string
		endStr   string
		fromPos  int
		count    int
		outPath  string
		dbPath   string
		noReduce bool
	)

	cmd := &cobra.Command{
		Use:   "terminal",
		Short: "Pull bar history from a connected trading-terminal session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if symbol == "" {
				return fmt.Errorf("missing --symbol (e.g. EURUSD)")
			}
			tf := terminal.Timeframe(tfStr)
			if _, ok := terminal.BarCode(tf); !ok {
				return fmt.Errorf("unknown timeframe: %s", tfStr)
			}

			haveDates := startStr != "" || endStr != ""
			havePos := count > 0
			if haveDates && havePos {
				return fmt.Errorf("--start/--end and --count are mutually exclusive")
			}
			if !haveDates && !havePos {
				return fmt.Errorf("provide either --start and --end or --count")
			}

			var sel terminal.RangeSelector
			if haveDates {
				start, err := parseDay(startStr)
				if err != nil {
					return fmt.Errorf("bad --start: %w", err)
				}
				end, err := parseDay(endStr)
				if err != nil {
					return fmt.Errorf("bad --end: %w", err)
				}
				if start.IsZero() || end.IsZero() {
					return fmt.Errorf("both --start and --end are required for a date range")
				}
				// End of day, so the end date is inclusive.
				sel = terminal.DateRange{From: start, To: end.Add(24*time.Hour - time.Second)}
			} else {
				sel = terminal.PositionRange{Start: fromPos, Count: count}
			}

			frame := terminal.Fetch(terminalSession, terminalAuthorized, symbol, tf, sel, !noReduce)
			if frame == nil {
				fmt.Fprintln(os.Stderr, "no usable data from terminal (is a session connected and authorized?)")
				return nil
			}

			return deliver(frame, symbol, "terminal", tfStr, outPath, dbPath)
		},
	}

	cmd.Flags().StringVar(&symbol, "symbol", "", "terminal symbol")
	cmd.Flags().StringVar(&tfStr, "timeframe", "D1", "bar timeframe (M1..MN1)")
	cmd.Flags().StringVar(&startStr, "start", "", "start date YYYY-MM-DD")
	cmd.Flags().StringVar(&endStr, "end", "", "end date YYYY-MM-DD")
	cmd.Flags().IntVar(&fromPos, "from-pos", 0, "bars back from the most recent bar")
	cmd.Flags().IntVar(&count, "count", 0, "number of bars to pull (position request)")
	cmd.Flags().StringVar(&outPath, "out", "", "write series CSV to this path")
	cmd.Flags().StringVar(&dbPath, "db", "", "archive series into this SQLite store")
	cmd.Flags().BoolVar(&noReduce, "no-reduce", false, "keep all columns, skip gap filling")

	return cmd
}
