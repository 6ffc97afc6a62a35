package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "spreadmon",
	Short: "Binance spread-delta exporter",
	Long: `spreadmon polls the Binance spot market-data API, ranks symbols by
24-hour statistics, reports order-book notional value and bid/ask spreads,
and continuously exports the absolute spread movement between consecutive
samples as a Prometheus gauge.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
