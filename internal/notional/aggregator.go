package notional

import (
	"context"
	"fmt"

	"github.com/spreadmon/spreadmon/pkg/types"
	"go.uber.org/zap"
)

// DepthProvider is the slice of the Binance client the aggregator needs.
type DepthProvider interface {
	Depth(ctx context.Context, symbol string, limit int) (*types.Depth, error)
}

// Aggregator sums order-book notional value (price * quantity) over the top
// levels of each side.
type Aggregator struct {
	client DepthProvider
	depth  int
	logger *zap.Logger
}

// New creates a new notional aggregator fetching depth levels per side.
func New(client DepthProvider, depth int, logger *zap.Logger) *Aggregator {
	return &Aggregator{
		client: client,
		depth:  depth,
		logger: logger,
	}
}

// TotalNotional returns the summed ask-side and bid-side notional value for
// every symbol in symbols. Each symbol is fetched independently; a fetch
// failure aborts the whole report. Malformed levels are excluded from the
// sum rather than corrupting it.
func (a *Aggregator) TotalNotional(ctx context.Context, symbols []string) (map[string]types.NotionalValue, error) {
	totals := make(map[string]types.NotionalValue, len(symbols))

	for _, symbol := range symbols {
		book, err := a.client.Depth(ctx, symbol, a.depth)
		if err != nil {
			return nil, fmt.Errorf("fetch depth for %s: %w", symbol, err)
		}

		totals[symbol] = types.NotionalValue{
			TotalAsks: a.sumSide(symbol, "asks", book.Asks),
			TotalBids: a.sumSide(symbol, "bids", book.Bids),
		}
	}

	return totals, nil
}

func (a *Aggregator) sumSide(symbol, side string, levels []types.DepthLevel) float64 {
	var total float64
	var skipped int

	for _, level := range levels {
		price, qty, ok := level.PriceQty()
		if !ok {
			skipped++
			continue
		}
		total += price * qty
	}

	if skipped > 0 {
		a.logger.Debug("malformed-levels-skipped",
			zap.String("symbol", symbol),
			zap.String("side", side),
			zap.Int("skipped", skipped))
	}

	return total
}
