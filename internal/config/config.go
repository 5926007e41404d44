package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Server struct {
		Listen string `yaml:"listen"`
	} `yaml:"server"`
	DataSource struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"`
	} `yaml:"data_source"`
	Watchlist struct {
		Symbols []string `yaml:"symbols"`
		Cron    string   `yaml:"cron"`
	} `yaml:"watchlist"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Sentiment struct {
		StaticScore float64 `yaml:"static_score"`
	} `yaml:"sentiment"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.Listen = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("WATCHLIST_CRON"); v != "" {
		cfg.Watchlist.Cron = v
	}
	if v := os.Getenv("SENTIMENT_SCORE"); v != "" {
		var score float64
		if _, err := fmt.Sscanf(v, "%f", &score); err == nil {
			cfg.Sentiment.StaticScore = score
		}
	}

	// Defaults
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Watchlist.Cron == "" {
		cfg.Watchlist.Cron = "0 30 22 * * 1-5"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/signalscout.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are sane.
func (c *Config) Validate() error {
	if c.Server.Listen == "" {
		return fmt.Errorf("server.listen is required")
	}
	if c.Sentiment.StaticScore < -1 || c.Sentiment.StaticScore > 1 {
		return fmt.Errorf("sentiment.static_score must be in [-1, 1]")
	}
	for _, s := range c.Watchlist.Symbols {
		if s == "" {
			return fmt.Errorf("watchlist.symbols must not contain empty entries")
		}
	}
	return nil
}
