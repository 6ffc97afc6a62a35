package selector

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spreadmon/spreadmon/pkg/cache"
	"github.com/spreadmon/spreadmon/pkg/types"
	"go.uber.org/zap"
)

// exchangeInfoKey caches the metadata fetch across the back-to-back
// per-quote-asset rankings at startup.
const (
	exchangeInfoKey = "exchange-info"
	exchangeInfoTTL = time.Minute
)

// MarketData is the slice of the Binance client the selector needs.
type MarketData interface {
	ExchangeInfo(ctx context.Context) (*types.ExchangeInfo, error)
	Ticker24h(ctx context.Context, symbols []string) ([]types.Ticker24h, error)
}

// Selector ranks symbols by 24-hour ticker statistics.
type Selector struct {
	client MarketData
	cache  cache.Cache
	logger *zap.Logger
}

// New creates a new symbol selector. cache may be nil, in which case every
// call refetches the exchange metadata.
func New(client MarketData, c cache.Cache, logger *zap.Logger) *Selector {
	return &Selector{
		client: client,
		cache:  c,
		logger: logger,
	}
}

// SelectByQuoteAsset returns every symbol whose quote asset matches, in the
// order the exchange metadata lists them. That order is not guaranteed
// sorted and is the tie-break order for TopByField.
func (s *Selector) SelectByQuoteAsset(ctx context.Context, quoteAsset string) ([]string, error) {
	info, err := s.exchangeInfo(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch exchange info: %w", err)
	}

	var symbols []string
	for i := range info.Symbols {
		if info.Symbols[i].QuoteAsset == quoteAsset {
			symbols = append(symbols, info.Symbols[i].Symbol)
		}
	}

	s.logger.Debug("symbols-selected",
		zap.String("quote-asset", quoteAsset),
		zap.Int("count", len(symbols)))

	return symbols, nil
}

// TopByField returns at most count symbols quoted in quoteAsset, sorted
// descending by the named 24-hour ticker field. Symbols whose field is
// missing or non-numeric sort last rather than failing the call; ties keep
// the exchange metadata order.
func (s *Selector) TopByField(ctx context.Context, count int, quoteAsset, field string) ([]string, error) {
	symbols, err := s.SelectByQuoteAsset(ctx, quoteAsset)
	if err != nil {
		return nil, err
	}

	if len(symbols) == 0 {
		return nil, nil
	}

	start := time.Now()
	tickers, err := s.client.Ticker24h(ctx, symbols)
	if err != nil {
		return nil, fmt.Errorf("fetch 24h tickers: %w", err)
	}
	RankingDurationSeconds.Observe(time.Since(start).Seconds())

	type ranked struct {
		symbol  string
		value   float64
		numeric bool
	}

	rows := make([]ranked, 0, len(tickers))
	for i := range tickers {
		value, ok := tickers[i].FieldFloat(field)
		if !ok {
			s.logger.Debug("ticker-field-not-numeric",
				zap.String("symbol", tickers[i].Symbol),
				zap.String("field", field))
		}
		rows = append(rows, ranked{symbol: tickers[i].Symbol, value: value, numeric: ok})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].numeric != rows[j].numeric {
			return rows[i].numeric
		}
		return rows[i].value > rows[j].value
	})

	if count > len(rows) {
		count = len(rows)
	}

	top := make([]string, 0, count)
	for _, row := range rows[:count] {
		top = append(top, row.symbol)
	}

	RankingsTotal.Inc()
	s.logger.Info("top-symbols-ranked",
		zap.String("quote-asset", quoteAsset),
		zap.String("field", field),
		zap.Strings("symbols", top))

	return top, nil
}

func (s *Selector) exchangeInfo(ctx context.Context) (*types.ExchangeInfo, error) {
	if s.cache != nil {
		if cached, found := s.cache.Get(exchangeInfoKey); found {
			if info, ok := cached.(*types.ExchangeInfo); ok {
				return info, nil
			}
		}
	}

	info, err := s.client.ExchangeInfo(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(exchangeInfoKey, info, exchangeInfoTTL)
	}

	return info, nil
}
