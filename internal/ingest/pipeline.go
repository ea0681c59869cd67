package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/collector"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/DjordjeVuckovic/news-digest/internal/metrics"
	"github.com/DjordjeVuckovic/news-digest/internal/search"
	"github.com/DjordjeVuckovic/news-digest/internal/storage"
)

const defaultPipelineName = "scheduled"

// Sink receives every newly persisted article. Sink errors are logged only.
type Sink func(ctx context.Context, article domain.Article) error

type namedSink struct {
	name string
	send Sink
}

type RunOptions struct {
	Keyword string
	Topic   string
	Pages   int
}

// Pipeline discovers, filters, extracts, summarizes and persists articles.
type Pipeline struct {
	name     string
	searcher search.Searcher
	analyzer analyzer
	store    storage.ArticleStore
	workers  int
	sinks    []namedSink
}

type Option func(*Pipeline)

func WithName(name string) Option {
	return func(p *Pipeline) {
		p.name = name
	}
}

func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		p.workers = n
	}
}

func WithSink(name string, s Sink) Option {
	return func(p *Pipeline) {
		p.sinks = append(p.sinks, namedSink{name: name, send: s})
	}
}

func NewPipeline(
	searcher search.Searcher,
	classifier Classifier,
	extractor Extractor,
	summarizer Summarizer,
	store storage.ArticleStore,
	opts ...Option,
) *Pipeline {
	p := &Pipeline{
		name:     defaultPipelineName,
		searcher: searcher,
		analyzer: analyzer{
			classifier: classifier,
			extractor:  extractor,
			summarizer: summarizer,
		},
		store:   store,
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run executes one ingestion pass. Per-article failures are recorded in the
// report and never fail the run; an error is returned only when the search
// fails or ctx is cancelled.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (report *Report, err error) {
	start := time.Now()
	report = newReport(p.name, opts)
	defer func() {
		report.Duration = time.Since(start)
		metrics.RecordRun(p.name, err, report.Duration)
	}()

	slog.Info("Pipeline run started", "pipeline", p.name, "keyword", opts.Keyword, "topic", opts.Topic, "pages", opts.Pages)

	results, err := collector.NewSnapshotCollector(p.searcher, opts.Keyword, opts.Pages).Collect(ctx)
	if err != nil {
		slog.Error("Error collecting snapshots", "pipeline", p.name, "error", err)
		return report, fmt.Errorf("collect snapshots: %w", err)
	}

	for o := range process(ctx, results, p.workers, func(ctx context.Context, snap domain.Snapshot) Outcome {
		return p.ingest(ctx, snap, opts.Topic)
	}) {
		report.add(o)
		metrics.RecordArticle(p.name, string(o.Stage))
		logOutcome(p.name, o)
	}

	if err := ctx.Err(); err != nil {
		slog.Info("Pipeline context cancelled", "pipeline", p.name)
		return report, err
	}

	slog.Info("Pipeline run completed",
		"pipeline", p.name,
		"duration", time.Since(start),
		"candidates", report.Candidates(),
		"persisted", report.Count(StagePersisted),
		"rejected", report.Count(StageRejected),
		"duplicates", report.Count(StageDuplicate),
		"failed", report.Failed(),
	)
	return report, nil
}

func (p *Pipeline) ingest(ctx context.Context, snap domain.Snapshot, topic string) Outcome {
	out := p.analyzer.analyze(ctx, snap, topic)
	if out.Stage != StageSummarized {
		return out
	}

	article := domain.NewArticle(snap.URL, *out.Page, *out.Summary)
	article.CreatedAt = time.Now()
	id, err := p.store.Save(ctx, article)
	if err != nil {
		var dup *apperr.DuplicateArticleError
		if errors.As(err, &dup) {
			out.Stage, out.Err = StageDuplicate, nil
			return out
		}
		out.Stage, out.Err = StagePersistFailed, err
		return out
	}

	article.ID = id
	out.Stage, out.Article = StagePersisted, &article
	p.notify(ctx, article)

	return out
}

func (p *Pipeline) notify(ctx context.Context, article domain.Article) {
	for _, s := range p.sinks {
		if err := s.send(ctx, article); err != nil {
			slog.Warn("Sink failed", "pipeline", p.name, "sink", s.name, "url", article.URL, "error", err)
		}
	}
}
