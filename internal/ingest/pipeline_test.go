package ingest

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/DjordjeVuckovic/news-digest/internal/storage/in_mem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_Run_OneBadSummaryPersistsTheRest(t *testing.T) {
	urls := []string{"https://udn.com/1", "https://udn.com/2", "https://udn.com/3", "https://udn.com/4", "https://udn.com/5"}
	store := in_mem.NewArticleStore()
	summarizer := &fakeSummarizer{raw: map[string]string{
		"body of https://udn.com/3": "Sorry, I cannot summarize this article.",
	}}

	p := NewPipeline(&fakeSearch{snapshots: snapshots(urls...)}, &fakeClassifier{}, &fakeExtractor{}, summarizer, store)

	report, err := p.Run(t.Context(), RunOptions{Keyword: "價格", Topic: "民生用品的價格變化", Pages: 1})
	require.NoError(t, err)

	n, err := store.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.Equal(t, 4, report.Count(StagePersisted))
	assert.Equal(t, 1, report.Count(StageSummarizationFailed))
	assert.Equal(t, 5, report.Candidates())

	all, err := store.ListAll(t.Context())
	require.NoError(t, err)
	for _, a := range all {
		assert.NotEqual(t, "https://udn.com/3", a.URL)
		assert.Equal(t, "impact of "+a.Body, a.Summary)
		assert.Equal(t, "cause", a.Reason)
	}
}

func TestPipeline_Run_TerminalStages(t *testing.T) {
	store := in_mem.NewArticleStore()
	_, err := store.Save(t.Context(), domain.Article{URL: "https://udn.com/dup", Title: "already there"})
	require.NoError(t, err)

	search := &fakeSearch{snapshots: snapshots(
		"https://udn.com/ok",
		"https://udn.com/medium",
		"https://udn.com/case",
		"https://udn.com/broken",
		"https://udn.com/dup",
		"https://udn.com/offline",
	)}
	classifier := &fakeClassifier{
		answers: map[string]string{
			"title https://udn.com/medium": "medium",
			"title https://udn.com/case":   "High",
		},
		fail: map[string]bool{"title https://udn.com/offline": true},
	}
	extractor := &fakeExtractor{broken: map[string]bool{"https://udn.com/broken": true}}

	p := NewPipeline(search, classifier, extractor, &fakeSummarizer{}, store, WithWorkers(2))

	report, err := p.Run(t.Context(), RunOptions{Keyword: "價格", Topic: "topic", Pages: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count(StagePersisted))
	assert.Equal(t, 2, report.Count(StageRejected))
	assert.Equal(t, 1, report.Count(StageExtractionFailed))
	assert.Equal(t, 1, report.Count(StageDuplicate))
	assert.Equal(t, 1, report.Count(StageClassificationFailed))
	assert.Equal(t, 2, report.Failed())

	n, err := store.Count(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	for _, topic := range classifier.topics {
		assert.Equal(t, "topic", topic)
	}
}

func TestPipeline_Run_SearchFailureFailsRun(t *testing.T) {
	search := &fakeSearch{err: errors.New("udn down")}
	p := NewPipeline(search, &fakeClassifier{}, &fakeExtractor{}, &fakeSummarizer{}, in_mem.NewArticleStore())

	_, err := p.Run(t.Context(), RunOptions{Keyword: "價格", Topic: "t", Pages: 9})

	assert.ErrorContains(t, err, "udn down")
	assert.Equal(t, []int{9}, search.pages)
}

func TestPipeline_Run_EmptySearch(t *testing.T) {
	p := NewPipeline(&fakeSearch{}, &fakeClassifier{}, &fakeExtractor{}, &fakeSummarizer{}, in_mem.NewArticleStore())

	report, err := p.Run(t.Context(), RunOptions{Keyword: "價格", Topic: "t", Pages: 1})
	require.NoError(t, err)
	assert.Zero(t, report.Candidates())
}

func TestPipeline_Run_SinksSeePersistedArticlesOnly(t *testing.T) {
	var (
		mu   sync.Mutex
		seen []domain.Article
	)
	recording := func(_ context.Context, a domain.Article) error {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, a)
		return nil
	}
	failing := func(context.Context, domain.Article) error {
		return errors.New("mirror offline")
	}

	extractor := &fakeExtractor{broken: map[string]bool{"https://udn.com/2": true}}
	p := NewPipeline(
		&fakeSearch{snapshots: snapshots("https://udn.com/1", "https://udn.com/2")},
		&fakeClassifier{}, extractor, &fakeSummarizer{}, in_mem.NewArticleStore(),
		WithSink("failing", failing),
		WithSink("recording", recording),
	)

	report, err := p.Run(t.Context(), RunOptions{Keyword: "價格", Topic: "t", Pages: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count(StagePersisted))
	require.Len(t, seen, 1)
	assert.Equal(t, "https://udn.com/1", seen[0].URL)
	assert.NotZero(t, seen[0].ID)
}

func TestPipeline_Run_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	p := NewPipeline(&fakeSearch{snapshots: snapshots("https://udn.com/1")}, &fakeClassifier{}, &fakeExtractor{}, &fakeSummarizer{}, in_mem.NewArticleStore())

	_, err := p.Run(ctx, RunOptions{Keyword: "價格", Topic: "t", Pages: 1})
	assert.ErrorIs(t, err, context.Canceled)
}
