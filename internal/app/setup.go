package app

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spreadmon/spreadmon/internal/binance"
	"github.com/spreadmon/spreadmon/internal/notional"
	"github.com/spreadmon/spreadmon/internal/report"
	"github.com/spreadmon/spreadmon/internal/selector"
	"github.com/spreadmon/spreadmon/internal/spread"
	"github.com/spreadmon/spreadmon/pkg/cache"
	"github.com/spreadmon/spreadmon/pkg/config"
	"github.com/spreadmon/spreadmon/pkg/healthprobe"
	"github.com/spreadmon/spreadmon/pkg/httpserver"
	"go.uber.org/zap"
)

// New creates a new application instance. The spread-delta gauge and the
// HTTP server share the default prometheus registry, passed here by handle
// rather than reached for ambiently.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	client := setupClient(cfg, logger)

	metaCache, err := setupCache(logger)
	if err != nil {
		return nil, fmt.Errorf("setup cache: %w", err)
	}

	healthChecker := healthprobe.New()

	return &App{
		cfg:           cfg,
		logger:        logger,
		client:        client,
		metaCache:     metaCache,
		selector:      selector.New(client, metaCache, logger),
		aggregator:    notional.New(client, cfg.OrderBookDepth, logger),
		sampler:       spread.NewSampler(client, logger),
		deltaMetrics:  spread.NewMetrics(prometheus.DefaultRegisterer),
		sink:          report.NewConsoleSink(logger),
		healthChecker: healthChecker,
		httpServer: httpserver.New(&httpserver.Config{
			Port:          cfg.ExporterPort,
			Logger:        logger,
			HealthChecker: healthChecker,
			Gatherer:      prometheus.DefaultGatherer,
		}),
	}, nil
}

func setupClient(cfg *config.Config, logger *zap.Logger) *binance.Client {
	return binance.NewClient(&binance.Config{
		BaseURL:           cfg.BinanceBaseURL,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger,
	})
}

func setupCache(logger *zap.Logger) (cache.Cache, error) {
	return cache.NewRistrettoCache(&cache.RistrettoConfig{
		NumCounters: 100, // a handful of metadata keys, 10x headroom
		MaxCost:     10,
		BufferItems: 64,
		Logger:      logger,
	})
}
