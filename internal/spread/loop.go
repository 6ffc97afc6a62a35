package spread

import (
	"context"
	"fmt"
	"time"

	"github.com/spreadmon/spreadmon/pkg/types"
	"go.uber.org/zap"
)

// SnapshotSampler abstracts the sampler for the loop.
type SnapshotSampler interface {
	Sample(ctx context.Context, symbols []string) (types.SpreadSnapshot, error)
}

// Loop repeatedly samples the spread of a fixed symbol set and publishes the
// absolute movement between consecutive samples as gauge values.
//
// Failure policy is fail-fast: any sampling error terminates the loop. A
// partial or stale delta would misrepresent market conditions to a scraper,
// so an observable outage is preferred over a silently wrong metric. The
// enclosing process restarts if continuous operation is required.
type Loop struct {
	sampler  SnapshotSampler
	symbols  []string
	interval time.Duration
	metrics  *Metrics
	logger   *zap.Logger
}

// LoopConfig holds delta loop configuration.
type LoopConfig struct {
	Sampler  SnapshotSampler
	Symbols  []string
	Interval time.Duration
	Metrics  *Metrics
	Logger   *zap.Logger
}

// NewLoop creates a new delta loop.
func NewLoop(cfg *LoopConfig) *Loop {
	return &Loop{
		sampler:  cfg.Sampler,
		symbols:  cfg.Symbols,
		interval: cfg.Interval,
		metrics:  cfg.Metrics,
		logger:   cfg.Logger,
	}
}

// Run executes the loop until a sampling failure or ctx cancellation. Only
// one snapshot of history is retained: each iteration diffs against the
// previous sample and the result of the diff replaces it.
//
// The first iteration has nothing to diff against, so it stores its sample
// and publishes nothing.
func (l *Loop) Run(ctx context.Context) error {
	l.logger.Info("delta-loop-starting",
		zap.Strings("symbols", l.symbols),
		zap.Duration("interval", l.interval))

	prev, err := l.sample(ctx)
	if err != nil {
		return fmt.Errorf("initial sample: %w", err)
	}

	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	for {
		// The interval wait is the loop's only intentional suspension point;
		// it separates the two observations being differenced.
		select {
		case <-ctx.Done():
			l.logger.Info("delta-loop-stopping")
			return ctx.Err()
		case <-ticker.C:
		}

		curr, err := l.sample(ctx)
		if err != nil {
			return fmt.Errorf("sample: %w", err)
		}

		record := Diff(prev, curr)
		l.metrics.Publish(record)

		IterationsTotal.Inc()
		LastPublishTimestamp.SetToCurrentTime()

		l.logger.Info("delta-published", zap.Int("symbols", len(record)))

		prev = curr
	}
}

func (l *Loop) sample(ctx context.Context) (types.SpreadSnapshot, error) {
	start := time.Now()

	snapshot, err := l.sampler.Sample(ctx, l.symbols)
	if err != nil {
		SampleErrorsTotal.Inc()
		l.logger.Error("spread-sample-failed", zap.Error(err))
		return nil, err
	}

	SampleDurationSeconds.Observe(time.Since(start).Seconds())

	return snapshot, nil
}
