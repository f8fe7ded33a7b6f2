package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pricefeed",
	Short: "Fetch and normalize historical price series",
	Long: `Pricefeed ingests historical bar data from heterogeneous sources and
normalizes each into a canonical gap-free price series.

It provides tools for:
  - Fetching bar history from a market-data vendor API
  - Reading daily and intraday bar exports from delimited files
  - Archiving fetched series in SQLite and exporting them to CSV
  - Generating and validating feed configuration files`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}
