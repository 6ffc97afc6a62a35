package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spreadmon/spreadmon/internal/report"
	"github.com/spreadmon/spreadmon/internal/spread"
)

//nolint:gochecknoglobals // Cobra boilerplate
var spreadCmd = &cobra.Command{
	Use:   "spread SYMBOL...",
	Short: "Report the current price spread for symbols",
	Long: `Samples the last traded price and the best bid/ask per symbol and
prints the spread of each side (last price minus best ask, last price minus
best bid).`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSpread,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(spreadCmd)
}

func runSpread(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, logger, client, err := setupClient()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	sampler := spread.NewSampler(client, logger)

	snapshot, err := sampler.Sample(ctx, args)
	if err != nil {
		return fmt.Errorf("sample spread: %w", err)
	}

	sink := report.NewConsoleSink(logger)
	title := fmt.Sprintf("Price spread for %v", args)

	return sink.Write(title, snapshot)
}
