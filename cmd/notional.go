package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spreadmon/spreadmon/internal/notional"
	"github.com/spreadmon/spreadmon/internal/report"
)

//nolint:gochecknoglobals // Cobra boilerplate
var notionalCmd = &cobra.Command{
	Use:   "notional SYMBOL...",
	Short: "Report order-book notional value for symbols",
	Long: `Fetches an order-book snapshot per symbol and prints the summed
price*quantity over the top levels of each side.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNotional,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(notionalCmd)
	notionalCmd.Flags().IntP("depth", "d", 0, "Order-book levels per side (default from ORDER_BOOK_DEPTH)")
}

func runNotional(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	cfg, logger, client, err := setupClient()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	depth, _ := cmd.Flags().GetInt("depth")
	if depth == 0 {
		depth = cfg.OrderBookDepth
	}
	if depth < 0 || depth > 5000 {
		return fmt.Errorf("depth must be between 1 and 5000, got %d", depth)
	}

	agg := notional.New(client, depth, logger)

	totals, err := agg.TotalNotional(ctx, args)
	if err != nil {
		return fmt.Errorf("aggregate notional value: %w", err)
	}

	sink := report.NewConsoleSink(logger)
	title := fmt.Sprintf("Total notional value of the top %d bids and asks for %v", depth, args)

	return sink.Write(title, totals)
}
