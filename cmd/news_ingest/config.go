package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/news-digest/internal/app"
	"github.com/DjordjeVuckovic/news-digest/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type NewsIngestConfig struct {
	Keyword string
	Topic   string
	Pages   int
	// Reindex backfills the Elasticsearch mirror from the article store instead of ingesting.
	Reindex bool
	App     *app.Config
}

func (as *AppConfig) Load() (*NewsIngestConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/news_ingest/.env")
	if err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}

	appCfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("Failed to load application configuration", "error", err)
		return nil, err
	}

	cfg := &NewsIngestConfig{App: appCfg}
	flag.StringVar(&cfg.Keyword, "keyword", appCfg.Scheduler.Keyword, "Search keyword")
	flag.StringVar(&cfg.Topic, "topic", appCfg.Scheduler.Topic, "Relevance topic for the classifier")
	flag.IntVar(&cfg.Pages, "pages", appCfg.Scheduler.InitialPages, "Number of search result pages")
	flag.BoolVar(&cfg.Reindex, "reindex", false, "Backfill the Elasticsearch mirror from stored articles")
	flag.Parse()

	return cfg, nil
}
