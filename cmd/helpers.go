package cmd

import (
	"fmt"

	"github.com/ziadkadry99/research-desk/internal/analysis"
	"github.com/ziadkadry99/research-desk/internal/config"
	"github.com/ziadkadry99/research-desk/internal/llm"
)

// services are the adapter-backed collaborators shared by the commands.
type services struct {
	client   *llm.Client
	searcher llm.Searcher
	analyzer *analysis.Analyzer
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `researchdesk init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newServices builds the proxy client, wrapping searches and abstract
// analyses in the cache when one is configured.
func newServices(cfg *config.Config) *services {
	client := llm.NewClient(llm.Config{
		BaseURL:           cfg.ProxyURL,
		Model:             cfg.Model,
		Timeout:           cfg.Timeout,
		MaxRetries:        cfg.MaxRetries,
		RequestsPerMinute: cfg.RequestsPerMinute,
	})

	var searcher llm.Searcher = client
	var analyst analysis.Analyst = client
	if cfg.Cache.Size > 0 {
		searcher = llm.NewCachedSearcher(client, cfg.Cache.Size, cfg.Cache.TTL)
		analyst = llm.NewCachedAnalyzer(client, cfg.Cache.Size, cfg.Cache.TTL)
	}

	return &services{
		client:   client,
		searcher: searcher,
		analyzer: analysis.New(searcher, analyst),
	}
}
