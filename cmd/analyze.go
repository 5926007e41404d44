package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"SignalScout/internal/analyzer"
	"SignalScout/internal/collector"
	"SignalScout/internal/config"
	"SignalScout/internal/sentiment"
)

var analyzeCMD = &cobra.Command{
	Use:   "analyze <ticker>",
	Short: "Score a single ticker and print the result as JSON",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		a := analyzer.New(newFetcher(cfg), newSentiment(cfg))
		result, err := a.Analyze(args[0])
		if err != nil {
			log.Fatalf("[FATAL] analyze %s: %v", args[0], err)
		}

		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			log.Fatalf("[FATAL] marshal result: %v", err)
		}
		fmt.Println(string(out))
	},
}

func mustLoadConfig() *config.Config {
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}
	return cfg
}

func newFetcher(cfg *config.Config) collector.Fetcher {
	if cfg.DataSource.BaseURL != "" {
		return collector.NewRESTFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	}
	return collector.NewYahooFetcher(cfg.Proxy)
}

func newSentiment(cfg *config.Config) sentiment.Provider {
	return sentiment.NewStatic(cfg.Sentiment.StaticScore)
}
