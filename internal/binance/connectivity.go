package binance

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Pinger is the slice of the client the connectivity check needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// EnsureReachable pings the exchange until it answers, sleeping backoff
// between attempts. The retry count is unbounded; cancelling ctx is the only
// way to give up, in which case ctx.Err() is returned. Intended for startup
// only.
func EnsureReachable(ctx context.Context, p Pinger, backoff time.Duration, logger *zap.Logger) error {
	for {
		err := p.Ping(ctx)
		if err == nil {
			logger.Info("exchange-reachable")
			return nil
		}

		logger.Warn("exchange-unreachable",
			zap.Error(err),
			zap.Duration("retry-in", backoff))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
	}
}
