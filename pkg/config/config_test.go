package config

import (
	"testing"
	"time"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.ExporterPort != "8080" {
		t.Errorf("expected ExporterPort 8080, got %q", cfg.ExporterPort)
	}

	if cfg.SampleInterval != 10*time.Second {
		t.Errorf("expected SampleInterval 10s, got %v", cfg.SampleInterval)
	}

	if cfg.OrderBookDepth != 200 {
		t.Errorf("expected OrderBookDepth 200, got %d", cfg.OrderBookDepth)
	}

	if cfg.RetryBackoff != 5*time.Second {
		t.Errorf("expected RetryBackoff 5s, got %v", cfg.RetryBackoff)
	}

	if len(cfg.QuoteAssets) != 2 || cfg.QuoteAssets[0] != "BTC" || cfg.QuoteAssets[1] != "USDT" {
		t.Errorf("expected QuoteAssets [BTC USDT], got %v", cfg.QuoteAssets)
	}

	if len(cfg.RankingFields) != 2 || cfg.RankingFields[0] != "volume" || cfg.RankingFields[1] != "count" {
		t.Errorf("expected RankingFields [volume count], got %v", cfg.RankingFields)
	}
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("QUOTE_ASSETS", "ETH, BNB")
	t.Setenv("RANKING_FIELDS", "quoteVolume,volume")
	t.Setenv("TOP_COUNT", "10")
	t.Setenv("SAMPLE_INTERVAL", "30s")
	t.Setenv("EXPORTER_PORT", "9100")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(cfg.QuoteAssets) != 2 || cfg.QuoteAssets[1] != "BNB" {
		t.Errorf("expected trimmed csv [ETH BNB], got %v", cfg.QuoteAssets)
	}

	if cfg.TopCount != 10 {
		t.Errorf("expected TopCount 10, got %d", cfg.TopCount)
	}

	if cfg.SampleInterval != 30*time.Second {
		t.Errorf("expected SampleInterval 30s, got %v", cfg.SampleInterval)
	}

	if cfg.ExporterPort != "9100" {
		t.Errorf("expected ExporterPort 9100, got %q", cfg.ExporterPort)
	}
}

func TestLoadFromEnv_InvalidValueFallsBack(t *testing.T) {
	t.Setenv("TOP_COUNT", "not-a-number")
	t.Setenv("SAMPLE_INTERVAL", "soon")

	cfg, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.TopCount != 5 {
		t.Errorf("expected default TopCount 5, got %d", cfg.TopCount)
	}

	if cfg.SampleInterval != 10*time.Second {
		t.Errorf("expected default SampleInterval 10s, got %v", cfg.SampleInterval)
	}
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty_port", func(c *Config) { c.ExporterPort = "" }},
		{"empty_base_url", func(c *Config) { c.BinanceBaseURL = "" }},
		{"no_quote_assets", func(c *Config) { c.QuoteAssets = nil }},
		{"mismatched_fields", func(c *Config) { c.RankingFields = []string{"volume"} }},
		{"zero_top_count", func(c *Config) { c.TopCount = 0 }},
		{"depth_too_large", func(c *Config) { c.OrderBookDepth = 10000 }},
		{"zero_interval", func(c *Config) { c.SampleInterval = 0 }},
		{"zero_backoff", func(c *Config) { c.RetryBackoff = 0 }},
		{"zero_rate", func(c *Config) { c.RequestsPerSecond = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromEnv()
			if err != nil {
				t.Fatalf("load defaults: %v", err)
			}

			tt.mutate(cfg)

			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
