package app

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spreadmon/spreadmon/internal/binance"
	"github.com/spreadmon/spreadmon/internal/spread"
	"go.uber.org/zap"
)

// Run executes the reference flow: connectivity check, one-shot reports,
// exporter listener, then the delta loop until a fatal sampling error or a
// termination signal. A fatal loop error is returned to the caller; the
// process does not restart itself.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer a.metaCache.Close()

	a.logger.Info("application-starting",
		zap.Strings("quote-assets", a.cfg.QuoteAssets),
		zap.Duration("sample-interval", a.cfg.SampleInterval),
		zap.String("exporter-port", a.cfg.ExporterPort))

	err := binance.EnsureReachable(ctx, a.client, a.cfg.RetryBackoff, a.logger)
	if err != nil {
		return fmt.Errorf("connectivity check: %w", err)
	}

	rankings, err := a.runRankings(ctx)
	if err != nil {
		return fmt.Errorf("ranking report: %w", err)
	}

	err = a.runNotionalReport(ctx, rankings[0])
	if err != nil {
		return fmt.Errorf("notional report: %w", err)
	}

	sampled := rankings[len(rankings)-1]
	err = a.runSpreadReport(ctx, sampled)
	if err != nil {
		return fmt.Errorf("spread report: %w", err)
	}

	if len(sampled) == 0 {
		return fmt.Errorf("no symbols to sample for quote asset %s", a.cfg.QuoteAssets[len(a.cfg.QuoteAssets)-1])
	}

	a.wg.Add(1)
	go a.serveHTTP()

	a.healthChecker.SetReady(true)
	a.logger.Info("application-ready", zap.String("metrics-addr", ":"+a.cfg.ExporterPort))

	loop := spread.NewLoop(&spread.LoopConfig{
		Sampler:  a.sampler,
		Symbols:  sampled,
		Interval: a.cfg.SampleInterval,
		Metrics:  a.deltaMetrics,
		Logger:   a.logger,
	})

	loopErr := loop.Run(ctx)

	a.shutdownHTTP()
	a.wg.Wait()

	if errors.Is(loopErr, context.Canceled) {
		a.logger.Info("shutdown-complete")
		return nil
	}

	a.logger.Error("delta-loop-fatal", zap.Error(loopErr))
	return fmt.Errorf("delta loop: %w", loopErr)
}

// runRankings produces one top-K ranking per configured quote asset and
// returns them in configuration order.
func (a *App) runRankings(ctx context.Context) ([][]string, error) {
	rankings := make([][]string, 0, len(a.cfg.QuoteAssets))

	for i, quoteAsset := range a.cfg.QuoteAssets {
		field := a.cfg.RankingFields[i]

		top, err := a.selector.TopByField(ctx, a.cfg.TopCount, quoteAsset, field)
		if err != nil {
			return nil, fmt.Errorf("rank %s by %s: %w", quoteAsset, field, err)
		}

		title := fmt.Sprintf("Top %d symbols for %s by %s", a.cfg.TopCount, quoteAsset, field)
		err = a.sink.Write(title, map[string]interface{}{
			"quoteAsset": quoteAsset,
			"field":      field,
			"symbols":    top,
		})
		if err != nil {
			return nil, err
		}

		rankings = append(rankings, top)
	}

	return rankings, nil
}

func (a *App) runNotionalReport(ctx context.Context, symbols []string) error {
	totals, err := a.aggregator.TotalNotional(ctx, symbols)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Total notional value of the top %d bids and asks for %v", a.cfg.OrderBookDepth, symbols)
	return a.sink.Write(title, totals)
}

func (a *App) runSpreadReport(ctx context.Context, symbols []string) error {
	snapshot, err := a.sampler.Sample(ctx, symbols)
	if err != nil {
		return err
	}

	title := fmt.Sprintf("Price spread for %v", symbols)
	return a.sink.Write(title, snapshot)
}

func (a *App) serveHTTP() {
	defer a.wg.Done()

	err := a.httpServer.Start()
	if err != nil {
		a.logger.Error("http-server-error", zap.Error(err))
	}
}

func (a *App) shutdownHTTP() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := a.httpServer.Shutdown(shutdownCtx)
	if err != nil {
		a.logger.Error("http-server-shutdown-error", zap.Error(err))
	}
}
