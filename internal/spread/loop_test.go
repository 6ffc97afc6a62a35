package spread

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/spreadmon/spreadmon/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// scriptedSampler returns its snapshots in order, then errors.
type scriptedSampler struct {
	snapshots []types.SpreadSnapshot
	err       error
	calls     int
}

func (s *scriptedSampler) Sample(ctx context.Context, symbols []string) (types.SpreadSnapshot, error) {
	s.calls++
	if s.calls > len(s.snapshots) {
		if s.err != nil {
			return nil, s.err
		}
		return nil, errors.New("script exhausted")
	}
	return s.snapshots[s.calls-1], nil
}

func newTestLoop(sampler SnapshotSampler, metrics *Metrics) *Loop {
	return NewLoop(&LoopConfig{
		Sampler:  sampler,
		Symbols:  []string{"ETHUSDT"},
		Interval: time.Millisecond,
		Metrics:  metrics,
		Logger:   zap.NewNop(),
	})
}

func TestLoop_PublishesDeltaThenDiesOnError(t *testing.T) {
	sampler := &scriptedSampler{
		snapshots: []types.SpreadSnapshot{
			{"ETHUSDT": {Ask: 100.0, Bid: 99.0}},
			{"ETHUSDT": {Ask: 100.5, Bid: 98.8}},
		},
		err: &types.TransportError{Endpoint: "/api/v3/ticker/price", Err: errors.New("timeout")},
	}

	metrics := NewMetrics(prometheus.NewRegistry())
	loop := newTestLoop(sampler, metrics)

	err := loop.Run(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsTransportError(err), "sampling failure must surface as fatal")
	assert.Equal(t, 3, sampler.calls)

	askDelta := testutil.ToFloat64(metrics.AbsoluteDelta.WithLabelValues("ETHUSDT", LabelAskPrice))
	bidDelta := testutil.ToFloat64(metrics.AbsoluteDelta.WithLabelValues("ETHUSDT", LabelBidPrice))
	assert.InDelta(t, 0.5, askDelta, 1e-9)
	assert.InDelta(t, 0.2, bidDelta, 1e-9)
}

func TestLoop_FirstSampleFailureIsFatal(t *testing.T) {
	sampler := &scriptedSampler{
		err: &types.APIError{Endpoint: "/api/v3/ticker/bookTicker", StatusCode: 429},
	}

	metrics := NewMetrics(prometheus.NewRegistry())
	loop := newTestLoop(sampler, metrics)

	err := loop.Run(context.Background())
	require.Error(t, err)
	assert.True(t, types.IsAPIError(err))
	assert.Equal(t, 1, sampler.calls, "no retry after the initial sample fails")
}

func TestLoop_ContextCancellation(t *testing.T) {
	// Endless identical snapshots: the loop only stops via ctx.
	snapshots := make([]types.SpreadSnapshot, 1000)
	for i := range snapshots {
		snapshots[i] = types.SpreadSnapshot{"ETHUSDT": {Ask: 1.0, Bid: 1.0}}
	}
	sampler := &scriptedSampler{snapshots: snapshots}

	metrics := NewMetrics(prometheus.NewRegistry())
	loop := newTestLoop(sampler, metrics)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := loop.Run(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMetrics_PublishOverwritesInPlace(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	record := types.DeltaRecord{
		"BTCUSDT": {Ask: 2.27, Bid: 0.82},
	}

	metrics.Publish(record)
	metrics.Publish(record) // identical republish is observably a no-op

	askDelta := testutil.ToFloat64(metrics.AbsoluteDelta.WithLabelValues("BTCUSDT", LabelAskPrice))
	assert.InDelta(t, 2.27, askDelta, 1e-9)

	// Exactly one series per (symbol, price_type) pair.
	count := testutil.CollectAndCount(metrics.AbsoluteDelta, "absolute_delta")
	assert.Equal(t, 2, count)

	// A later record overwrites rather than appends.
	metrics.Publish(types.DeltaRecord{"BTCUSDT": {Ask: 0.1, Bid: 0.0}})
	askDelta = testutil.ToFloat64(metrics.AbsoluteDelta.WithLabelValues("BTCUSDT", LabelAskPrice))
	assert.InDelta(t, 0.1, askDelta, 1e-9)
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.AbsoluteDelta, "absolute_delta"))
}
