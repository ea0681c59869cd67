package app

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-digest/internal/auth"
	"github.com/DjordjeVuckovic/news-digest/internal/events"
	"github.com/DjordjeVuckovic/news-digest/internal/llm"
	"github.com/DjordjeVuckovic/news-digest/internal/prices"
	"github.com/DjordjeVuckovic/news-digest/internal/scheduler"
	"github.com/DjordjeVuckovic/news-digest/internal/search"
	"github.com/DjordjeVuckovic/news-digest/internal/storage/factory"
	"github.com/DjordjeVuckovic/news-digest/pkg/config/env"
)

const (
	defaultWorkers     = 4
	defaultSearchPages = 1
)

// Config gathers every component's configuration. Sections that are optional
// (Events, Storage.Mirror, Prices.Redis) are nil when not configured.
type Config struct {
	Storage   *factory.StorageConfig
	LLM       *llm.Config
	Auth      *auth.Config
	Search    *search.Config
	Scheduler *scheduler.Config
	Prices    *prices.Config
	Events    *events.Config

	ExtractorProfilePath string
	Workers              int
	SearchPages          int
}

func LoadConfig() (*Config, error) {
	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration from environment", "error", err)
		return nil, err
	}
	llmCfg, err := llm.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}
	authCfg, err := auth.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("auth config: %w", err)
	}
	searchCfg, err := search.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("search config: %w", err)
	}
	schedulerCfg, err := scheduler.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("scheduler config: %w", err)
	}
	pricesCfg, err := prices.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("prices config: %w", err)
	}
	workers, err := env.PositiveInt("INGEST_WORKERS", defaultWorkers)
	if err != nil {
		return nil, err
	}
	searchPages, err := env.PositiveInt("SEARCH_PAGES", defaultSearchPages)
	if err != nil {
		return nil, err
	}

	return &Config{
		Storage:              storageCfg,
		LLM:                  llmCfg,
		Auth:                 authCfg,
		Search:               searchCfg,
		Scheduler:            schedulerCfg,
		Prices:               pricesCfg,
		Events:               events.LoadConfig(),
		ExtractorProfilePath: env.String("EXTRACTOR_PROFILE_PATH", ""),
		Workers:              workers,
		SearchPages:          searchPages,
	}, nil
}
