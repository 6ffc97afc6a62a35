package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spreadmon/spreadmon/internal/report"
	"github.com/spreadmon/spreadmon/internal/selector"
)

//nolint:gochecknoglobals // Cobra boilerplate
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Rank symbols by a 24-hour ticker field",
	Long: `Fetches the exchange metadata, filters symbols by quote asset and
prints the top symbols sorted descending by the given 24-hour ticker field
(for example volume, count or quoteVolume).`,
	RunE: runTop,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(topCmd)
	topCmd.Flags().StringP("quote", "q", "USDT", "Quote asset to filter symbols by")
	topCmd.Flags().StringP("field", "f", "volume", "24h ticker field to rank by")
	topCmd.Flags().IntP("count", "c", 5, "Number of symbols to return")
}

func runTop(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	_, logger, client, err := setupClient()
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	quote, _ := cmd.Flags().GetString("quote")
	field, _ := cmd.Flags().GetString("field")
	count, _ := cmd.Flags().GetInt("count")

	if count <= 0 {
		return fmt.Errorf("count must be positive, got %d", count)
	}

	sel := selector.New(client, nil, logger)

	top, err := sel.TopByField(ctx, count, quote, field)
	if err != nil {
		return fmt.Errorf("rank symbols: %w", err)
	}

	sink := report.NewConsoleSink(logger)
	title := fmt.Sprintf("Top %d symbols for %s by %s", count, quote, field)

	return sink.Write(title, map[string]interface{}{
		"quoteAsset": quote,
		"field":      field,
		"symbols":    top,
	})
}
