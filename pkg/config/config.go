package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Application
	LogLevel     string
	ExporterPort string

	// Binance API
	BinanceBaseURL    string
	HTTPTimeout       time.Duration
	RequestsPerSecond float64

	// Symbol selection
	QuoteAssets   []string // quote assets to rank, in report order
	RankingFields []string // 24h ticker field per quote asset, aligned with QuoteAssets
	TopCount      int

	// Reports and sampling
	OrderBookDepth int
	SampleInterval time.Duration
	RetryBackoff   time.Duration
}

// LoadFromEnv loads configuration from environment variables with defaults.
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		// Application defaults
		LogLevel:     getEnvOrDefault("LOG_LEVEL", "info"),
		ExporterPort: getEnvOrDefault("EXPORTER_PORT", "8080"),

		// Binance API defaults
		BinanceBaseURL:    getEnvOrDefault("BINANCE_BASE_URL", "https://api.binance.com"),
		HTTPTimeout:       getDurationOrDefault("HTTP_TIMEOUT", 30*time.Second),
		RequestsPerSecond: getFloat64OrDefault("REQUESTS_PER_SECOND", 10.0),

		// Symbol selection defaults: the top BTC pairs by volume feed the
		// notional report, the top USDT pairs by trade count feed the
		// spread-delta loop.
		QuoteAssets:   getCSVOrDefault("QUOTE_ASSETS", []string{"BTC", "USDT"}),
		RankingFields: getCSVOrDefault("RANKING_FIELDS", []string{"volume", "count"}),
		TopCount:      getIntOrDefault("TOP_COUNT", 5),

		// Sampling defaults
		OrderBookDepth: getIntOrDefault("ORDER_BOOK_DEPTH", 200),
		SampleInterval: getDurationOrDefault("SAMPLE_INTERVAL", 10*time.Second),
		RetryBackoff:   getDurationOrDefault("RETRY_BACKOFF", 5*time.Second),
	}

	err := cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Validate checks that configuration values are valid.
func (c *Config) Validate() error {
	if c.ExporterPort == "" {
		return fmt.Errorf("EXPORTER_PORT cannot be empty")
	}

	if c.BinanceBaseURL == "" {
		return fmt.Errorf("BINANCE_BASE_URL cannot be empty")
	}

	if len(c.QuoteAssets) == 0 {
		return fmt.Errorf("QUOTE_ASSETS cannot be empty")
	}

	if len(c.RankingFields) != len(c.QuoteAssets) {
		return fmt.Errorf("RANKING_FIELDS must have one field per quote asset, got %d fields for %d assets",
			len(c.RankingFields), len(c.QuoteAssets))
	}

	if c.TopCount <= 0 {
		return fmt.Errorf("TOP_COUNT must be positive, got %d", c.TopCount)
	}

	if c.OrderBookDepth <= 0 || c.OrderBookDepth > 5000 {
		return fmt.Errorf("ORDER_BOOK_DEPTH must be between 1 and 5000, got %d", c.OrderBookDepth)
	}

	if c.SampleInterval <= 0 {
		return fmt.Errorf("SAMPLE_INTERVAL must be positive, got %v", c.SampleInterval)
	}

	if c.RetryBackoff <= 0 {
		return fmt.Errorf("RETRY_BACKOFF must be positive, got %v", c.RetryBackoff)
	}

	if c.RequestsPerSecond <= 0 {
		return fmt.Errorf("REQUESTS_PER_SECOND must be positive, got %f", c.RequestsPerSecond)
	}

	return nil
}

func getEnvOrDefault(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func getFloat64OrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	floatVal, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return defaultValue
	}

	return floatVal
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}

	return duration
}

func getCSVOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}

	if len(out) == 0 {
		return defaultValue
	}

	return out
}
