package spread

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spreadmon/spreadmon/pkg/types"
	"go.uber.org/zap"
)

// MarketData is the slice of the Binance client the sampler needs.
type MarketData interface {
	TickerPrice(ctx context.Context, symbol string) (*types.PriceTicker, error)
	BookTicker(ctx context.Context, symbol string) (*types.BookTicker, error)
}

// Sampler produces point-in-time spread snapshots. Each symbol takes two
// round trips (last price, then best bid/ask), so a snapshot is only
// approximately simultaneous; downstream differencing tolerates the skew.
type Sampler struct {
	client MarketData
	logger *zap.Logger
}

// NewSampler creates a new spread sampler.
func NewSampler(client MarketData, logger *zap.Logger) *Sampler {
	return &Sampler{
		client: client,
		logger: logger,
	}
}

// Sample returns the spread of every symbol in symbols. Fail-fast: the
// first symbol whose fetch fails aborts the whole call with no partial
// snapshot, so a caller can never publish a half-sampled record.
func (s *Sampler) Sample(ctx context.Context, symbols []string) (types.SpreadSnapshot, error) {
	snapshot := make(types.SpreadSnapshot, len(symbols))

	for _, symbol := range symbols {
		price, err := s.client.TickerPrice(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("fetch price ticker for %s: %w", symbol, err)
		}

		book, err := s.client.BookTicker(ctx, symbol)
		if err != nil {
			return nil, fmt.Errorf("fetch book ticker for %s: %w", symbol, err)
		}

		lastPrice, err := strconv.ParseFloat(price.Price, 64)
		if err != nil {
			return nil, fmt.Errorf("parse last price for %s: %w", symbol, err)
		}

		bestAsk, err := strconv.ParseFloat(book.AskPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("parse ask price for %s: %w", symbol, err)
		}

		bestBid, err := strconv.ParseFloat(book.BidPrice, 64)
		if err != nil {
			return nil, fmt.Errorf("parse bid price for %s: %w", symbol, err)
		}

		snapshot[symbol] = types.Spread{
			Ask: lastPrice - bestAsk,
			Bid: lastPrice - bestBid,
		}
	}

	s.logger.Debug("spread-sampled", zap.Int("symbols", len(snapshot)))

	return snapshot, nil
}
