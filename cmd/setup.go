package cmd

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spreadmon/spreadmon/internal/binance"
	"github.com/spreadmon/spreadmon/pkg/config"
	"go.uber.org/zap"
)

// setupClient builds the config, logger and Binance client shared by the
// one-shot report commands.
func setupClient() (*config.Config, *zap.Logger, *binance.Client, error) {
	// Missing .env is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("create logger: %w", err)
	}

	client := binance.NewClient(&binance.Config{
		BaseURL:           cfg.BinanceBaseURL,
		Timeout:           cfg.HTTPTimeout,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Logger:            logger,
	})

	return cfg, logger, client, nil
}
