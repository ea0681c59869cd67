package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-digest/internal/analysis"
	"github.com/DjordjeVuckovic/news-digest/internal/auth"
	"github.com/DjordjeVuckovic/news-digest/internal/events"
	"github.com/DjordjeVuckovic/news-digest/internal/extract"
	"github.com/DjordjeVuckovic/news-digest/internal/ingest"
	"github.com/DjordjeVuckovic/news-digest/internal/llm"
	"github.com/DjordjeVuckovic/news-digest/internal/news"
	"github.com/DjordjeVuckovic/news-digest/internal/prices"
	"github.com/DjordjeVuckovic/news-digest/internal/scheduler"
	"github.com/DjordjeVuckovic/news-digest/internal/search"
	"github.com/DjordjeVuckovic/news-digest/internal/storage/es"
	"github.com/DjordjeVuckovic/news-digest/internal/storage/factory"
)

// App owns every long-lived component. Nothing in the process is global:
// handlers and jobs receive what they need from here.
type App struct {
	Stores    *factory.Stores
	Auth      *auth.Service
	News      *news.Service
	Prices    *prices.Client
	Pipeline  *ingest.Pipeline
	Searcher  *ingest.Searcher
	Scheduler *scheduler.Scheduler
	// Mirror is nil unless an Elasticsearch mirror is configured.
	Mirror *es.Mirror

	closers []func()
}

// New builds the application. The LLM client may be nil, in which case it is
// built from cfg.LLM.
func New(ctx context.Context, cfg *Config, client llm.Client) (*App, error) {
	a := &App{}

	stores, err := factory.NewStores(ctx, cfg.Storage)
	if err != nil {
		return nil, err
	}
	a.Stores = stores
	a.closers = append(a.closers, stores.Close)

	if client == nil {
		client, err = llm.NewClient(cfg.LLM)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create llm client: %w", err)
		}
	}

	profile, err := extract.LoadProfileFile(cfg.ExtractorProfilePath)
	if err != nil {
		a.Close()
		return nil, err
	}

	var (
		classifier = analysis.NewClassifier(client)
		summarizer = analysis.NewSummarizer(client)
		keywords   = analysis.NewKeywordExtractor(client)
		searcher   = search.NewClient(cfg.Search)
		extractor  = extract.NewExtractor(*profile, extract.WithTimeout(cfg.Search.Timeout))
	)

	pipelineOpts := []ingest.Option{ingest.WithWorkers(cfg.Workers)}
	pipelineOpts = append(pipelineOpts, a.sinks(ctx, cfg)...)

	a.Pipeline = ingest.NewPipeline(searcher, classifier, extractor, summarizer, stores.Articles, pipelineOpts...)
	a.Searcher = ingest.NewSearcher(keywords, searcher, classifier, extractor, summarizer,
		ingest.WithSearchPages(cfg.SearchPages),
		ingest.WithSearchWorkers(cfg.Workers),
	)
	a.Scheduler = scheduler.New(*cfg.Scheduler, a.Pipeline, stores.Articles)

	a.Auth = auth.NewService(stores.Users, auth.NewTokens(*cfg.Auth))
	a.News = news.NewService(stores.Articles, stores.Upvotes, summarizer, a.Searcher)
	a.Prices = a.priceClient(ctx, cfg.Prices)

	return a, nil
}

// sinks connects the optional secondary outputs. A sink that cannot be reached
// at startup is logged and left out; ingestion does not depend on it.
func (a *App) sinks(ctx context.Context, cfg *Config) []ingest.Option {
	var opts []ingest.Option

	if cfg.Storage.Mirror != nil {
		mirror, err := es.NewMirror(ctx, *cfg.Storage.Mirror)
		if err != nil {
			slog.Warn("Elasticsearch mirror disabled", "error", err)
		} else {
			a.Mirror = mirror
			opts = append(opts, ingest.WithSink("elasticsearch", mirror.Index))
		}
	}

	if cfg.Events != nil {
		publisher, err := events.NewPublisher(cfg.Events)
		if err != nil {
			slog.Warn("NATS events disabled", "error", err)
		} else {
			a.closers = append(a.closers, publisher.Close)
			opts = append(opts, ingest.WithSink("nats", publisher.Publish))
		}
	}

	return opts
}

func (a *App) priceClient(ctx context.Context, cfg *prices.Config) *prices.Client {
	if cfg.Redis == nil {
		return prices.NewClient(cfg)
	}

	cache, err := prices.NewRedisCache(ctx, *cfg.Redis)
	if err != nil {
		slog.Warn("Price cache disabled, continuing without caching", "error", err)
		return prices.NewClient(cfg)
	}
	a.closers = append(a.closers, func() { _ = cache.Close() })
	return prices.NewClient(cfg, prices.WithCache(cache, cfg.CacheTTL))
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
