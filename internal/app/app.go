package app

import (
	"sync"

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

// App wires the startup reports, the metrics exporter, and the delta loop.
type App struct {
	cfg           *config.Config
	logger        *zap.Logger
	client        *binance.Client
	metaCache     cache.Cache
	selector      *selector.Selector
	aggregator    *notional.Aggregator
	sampler       *spread.Sampler
	deltaMetrics  *spread.Metrics
	sink          report.Sink
	healthChecker *healthprobe.HealthChecker
	httpServer    *httpserver.Server
	wg            sync.WaitGroup
}
