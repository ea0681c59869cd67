package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/DjordjeVuckovic/news-digest/internal/app"
	"github.com/DjordjeVuckovic/news-digest/internal/ingest"
)

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg.App, nil)
	if err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	if cfg.Reindex {
		err = reindex(ctx, a)
	} else {
		err = ingestOnce(ctx, a, cfg)
	}
	if err != nil {
		slog.Error("news ingest failed", "error", err)
		a.Close()
		os.Exit(1)
	}
}

func ingestOnce(ctx context.Context, a *app.App, cfg *NewsIngestConfig) error {
	report, err := a.Pipeline.Run(ctx, ingest.RunOptions{
		Keyword: cfg.Keyword,
		Topic:   cfg.Topic,
		Pages:   cfg.Pages,
	})
	if err != nil {
		return err
	}

	slog.Info("Ingestion report",
		"keyword", report.Keyword,
		"candidates", report.Candidates(),
		"rejected", report.Count(ingest.StageRejected),
		"persisted", report.Count(ingest.StagePersisted),
		"duplicates", report.Count(ingest.StageDuplicate),
		"failed", report.Failed(),
		"duration", report.Duration)
	return nil
}

func reindex(ctx context.Context, a *app.App) error {
	if a.Mirror == nil {
		return errors.New("reindex requires ES_ADDRESSES to be configured and reachable")
	}

	articles, err := a.Stores.Articles.ListAll(ctx)
	if err != nil {
		return err
	}
	slog.Info("Backfilling Elasticsearch mirror", "articles", len(articles))

	if err := a.Mirror.Backfill(ctx, articles); err != nil {
		return err
	}

	indexed, err := a.Mirror.Count(ctx)
	if err != nil {
		return err
	}
	slog.Info("Backfill finished", "indexed", indexed)
	return nil
}
