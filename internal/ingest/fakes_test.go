package ingest

import (
	"context"
	"fmt"
	"sync"

	"github.com/DjordjeVuckovic/news-digest/internal/analysis"
	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
)

type fakeSearch struct {
	snapshots []domain.Snapshot
	err       error

	mu       sync.Mutex
	keywords []string
	pages    []int
}

func (f *fakeSearch) Search(_ context.Context, keyword string, pages int) ([]domain.Snapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keywords = append(f.keywords, keyword)
	f.pages = append(f.pages, pages)
	return f.snapshots, f.err
}

// fakeClassifier answers "high" unless the title is listed.
type fakeClassifier struct {
	answers map[string]string
	fail    map[string]bool

	mu     sync.Mutex
	topics []string
}

func (f *fakeClassifier) Classify(_ context.Context, title, topic string) (domain.Relevance, error) {
	f.mu.Lock()
	f.topics = append(f.topics, topic)
	f.mu.Unlock()

	if f.fail[title] {
		return domain.RelevanceUnknown, apperr.NewNetwork("llm unavailable")
	}
	if raw, ok := f.answers[title]; ok {
		return domain.ParseRelevance(raw), nil
	}
	return domain.RelevanceHigh, nil
}

// fakeExtractor builds a page from the url unless it is listed as broken.
type fakeExtractor struct {
	broken    map[string]bool
	published map[string]string
}

func (f *fakeExtractor) Extract(_ context.Context, url string) (*domain.Page, error) {
	if f.broken[url] {
		return nil, apperr.NewExtraction(url, "missing title")
	}
	return &domain.Page{
		Title:      "page " + url,
		Published:  f.published[url],
		Paragraphs: []string{"body of", url},
	}, nil
}

// fakeSummarizer runs the real parse step over canned model answers keyed by body.
type fakeSummarizer struct {
	raw map[string]string
}

func (f *fakeSummarizer) Summarize(_ context.Context, body string) (*domain.Summary, error) {
	if raw, ok := f.raw[body]; ok {
		return analysis.ParseSummary(raw)
	}
	return analysis.ParseSummary(fmt.Sprintf(`{"impact": "impact of %s", "cause": "cause"}`, body))
}

type fakeKeywords struct {
	keywords string
	err      error
}

func (f *fakeKeywords) Keywords(context.Context, string) (string, error) {
	return f.keywords, f.err
}

func snapshots(urls ...string) []domain.Snapshot {
	out := make([]domain.Snapshot, 0, len(urls))
	for _, u := range urls {
		out = append(out, domain.Snapshot{Title: "title " + u, URL: u})
	}
	return out
}
