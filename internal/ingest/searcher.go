package ingest

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/collector"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/DjordjeVuckovic/news-digest/internal/metrics"
	"github.com/DjordjeVuckovic/news-digest/internal/search"
)

const (
	onDemandPipelineName = "on_demand"
	// FirstSearchResultID is the first ephemeral id handed out by a Searcher.
	FirstSearchResultID = 1_000_000
	defaultSearchPages  = 1
)

type KeywordExtractor interface {
	Keywords(ctx context.Context, prompt string) (string, error)
}

// Searcher answers free-text requests with freshly summarized articles
// without persisting anything.
type Searcher struct {
	keywords KeywordExtractor
	searcher search.Searcher
	analyzer analyzer
	pages    int
	workers  int
	// lastID is owned by the Searcher; ids are unique per process only.
	lastID atomic.Int64
}

type SearcherOption func(*Searcher)

func WithSearchPages(n int) SearcherOption {
	return func(s *Searcher) {
		s.pages = n
	}
}

func WithSearchWorkers(n int) SearcherOption {
	return func(s *Searcher) {
		s.workers = n
	}
}

func NewSearcher(
	keywords KeywordExtractor,
	searcher search.Searcher,
	classifier Classifier,
	extractor Extractor,
	summarizer Summarizer,
	opts ...SearcherOption,
) *Searcher {
	s := &Searcher{
		keywords: keywords,
		searcher: searcher,
		analyzer: analyzer{
			classifier: classifier,
			extractor:  extractor,
			summarizer: summarizer,
		},
		pages:   defaultSearchPages,
		workers: defaultWorkers,
	}
	s.lastID.Store(FirstSearchResultID - 1)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search derives keywords from prompt, uses them both as search query and as
// relevance topic, and returns the summarized survivors newest first.
func (s *Searcher) Search(ctx context.Context, prompt string) (results []domain.SearchResult, err error) {
	start := time.Now()
	defer func() {
		metrics.RecordRun(onDemandPipelineName, err, time.Since(start))
	}()

	keywords, err := s.keywords.Keywords(ctx, prompt)
	if err != nil {
		return nil, err
	}
	slog.Info("On-demand search", "prompt", prompt, "keywords", keywords)

	snapshots, err := collector.NewSnapshotCollector(s.searcher, keywords, s.pages).Collect(ctx)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", keywords, err)
	}

	results = []domain.SearchResult{}
	for o := range process(ctx, snapshots, s.workers, func(ctx context.Context, snap domain.Snapshot) Outcome {
		return s.analyzer.analyze(ctx, snap, keywords)
	}) {
		metrics.RecordArticle(onDemandPipelineName, string(o.Stage))
		logOutcome(onDemandPipelineName, o)
		if o.Stage != StageSummarized {
			continue
		}
		results = append(results, s.toResult(o))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		return domain.PublishedAfter(results[i].Published, results[j].Published)
	})
	return results, nil
}

func (s *Searcher) toResult(o Outcome) domain.SearchResult {
	a := domain.NewArticle(o.Snapshot.URL, *o.Page, *o.Summary)
	return domain.SearchResult{
		ID:        s.lastID.Add(1),
		URL:       a.URL,
		Title:     a.Title,
		Published: a.Published,
		Body:      a.Body,
		Summary:   a.Summary,
		Reason:    a.Reason,
	}
}
