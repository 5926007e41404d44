package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing file should fall back to defaults: %v", err)
	}
	if cfg.Server.Listen != ":8080" {
		t.Errorf("expected default listen :8080, got %q", cfg.Server.Listen)
	}
	if cfg.Watchlist.Cron != "0 30 22 * * 1-5" {
		t.Errorf("unexpected default cron %q", cfg.Watchlist.Cron)
	}
	if cfg.Database.SQLitePath != "data/signalscout.db" {
		t.Errorf("unexpected default sqlite path %q", cfg.Database.SQLitePath)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
data_source:
  base_url: "https://bars.example.com"
  api_key: "k123"
watchlist:
  symbols: ["PETR4.SA", "VALE3.SA"]
  cron: "0 0 23 * * 1-5"
sentiment:
  static_score: 0.25
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Listen != ":9090" {
		t.Errorf("expected listen :9090, got %q", cfg.Server.Listen)
	}
	if cfg.DataSource.BaseURL != "https://bars.example.com" || cfg.DataSource.APIKey != "k123" {
		t.Errorf("unexpected data source: %+v", cfg.DataSource)
	}
	if len(cfg.Watchlist.Symbols) != 2 || cfg.Watchlist.Symbols[0] != "PETR4.SA" {
		t.Errorf("unexpected watchlist: %+v", cfg.Watchlist.Symbols)
	}
	if cfg.Sentiment.StaticScore != 0.25 {
		t.Errorf("expected static score 0.25, got %f", cfg.Sentiment.StaticScore)
	}
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
server:
  listen: ":9090"
`)
	t.Setenv("LISTEN_ADDR", ":7070")
	t.Setenv("DATA_API_KEY", "env-key")
	t.Setenv("SENTIMENT_SCORE", "-0.5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Listen != ":7070" {
		t.Errorf("env should override file, got %q", cfg.Server.Listen)
	}
	if cfg.DataSource.APIKey != "env-key" {
		t.Errorf("expected env api key, got %q", cfg.DataSource.APIKey)
	}
	if cfg.Sentiment.StaticScore != -0.5 {
		t.Errorf("expected env score -0.5, got %f", cfg.Sentiment.StaticScore)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg.Sentiment.StaticScore = 1.5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for out-of-range sentiment score")
	}
	cfg.Sentiment.StaticScore = 0

	cfg.Watchlist.Symbols = []string{"PETR4.SA", ""}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty watchlist symbol")
	}
	cfg.Watchlist.Symbols = nil

	cfg.Server.Listen = ""
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty listen address")
	}
}
