package ingest

import (
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcher_Search(t *testing.T) {
	search := &fakeSearch{snapshots: snapshots(
		"https://udn.com/old",
		"https://udn.com/broken",
		"https://udn.com/new",
		"https://udn.com/low",
		"https://udn.com/mid",
	)}
	classifier := &fakeClassifier{answers: map[string]string{"title https://udn.com/low": "low"}}
	extractor := &fakeExtractor{
		broken: map[string]bool{"https://udn.com/broken": true},
		published: map[string]string{
			"https://udn.com/old": "2024-01-01 08:00",
			"https://udn.com/new": "2024-01-03 08:00",
			"https://udn.com/mid": "2024-01-02 08:00",
		},
	}

	s := NewSearcher(&fakeKeywords{keywords: "雞蛋 價格"}, search, classifier, extractor, &fakeSummarizer{})

	results, err := s.Search(t.Context(), "我想知道雞蛋價格")
	require.NoError(t, err)

	assert.Equal(t, []string{"雞蛋 價格"}, search.keywords)
	assert.Equal(t, []int{1}, search.pages)
	for _, topic := range classifier.topics {
		assert.Equal(t, "雞蛋 價格", topic)
	}

	require.Len(t, results, 3)
	assert.Equal(t, "https://udn.com/new", results[0].URL)
	assert.Equal(t, "https://udn.com/mid", results[1].URL)
	assert.Equal(t, "https://udn.com/old", results[2].URL)

	ids := map[int64]bool{}
	for _, r := range results {
		assert.GreaterOrEqual(t, r.ID, int64(FirstSearchResultID))
		assert.NotEmpty(t, r.Summary)
		ids[r.ID] = true
	}
	assert.Len(t, ids, 3)
}

func TestSearcher_IDsKeepIncreasingAcrossCalls(t *testing.T) {
	s := NewSearcher(
		&fakeKeywords{keywords: "價格"},
		&fakeSearch{snapshots: snapshots("https://udn.com/1", "https://udn.com/2")},
		&fakeClassifier{}, &fakeExtractor{}, &fakeSummarizer{},
		WithSearchPages(2), WithSearchWorkers(1),
	)

	first, err := s.Search(t.Context(), "prices")
	require.NoError(t, err)
	second, err := s.Search(t.Context(), "prices")
	require.NoError(t, err)

	seen := map[int64]bool{}
	for _, r := range append(first, second...) {
		assert.False(t, seen[r.ID], "id %d reused", r.ID)
		seen[r.ID] = true
	}
	assert.Len(t, seen, 4)
}

func TestSearcher_NothingRelevantIsEmptyNotNil(t *testing.T) {
	s := NewSearcher(
		&fakeKeywords{keywords: "價格"},
		&fakeSearch{snapshots: snapshots("https://udn.com/1")},
		&fakeClassifier{answers: map[string]string{"title https://udn.com/1": "low"}},
		&fakeExtractor{}, &fakeSummarizer{},
	)

	results, err := s.Search(t.Context(), "prices")
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestSearcher_KeywordFailure(t *testing.T) {
	search := &fakeSearch{}
	s := NewSearcher(&fakeKeywords{err: apperr.NewValidation("no keywords")}, search, &fakeClassifier{}, &fakeExtractor{}, &fakeSummarizer{})

	_, err := s.Search(t.Context(), "???")

	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
	assert.Empty(t, search.keywords)
}

func TestSearcher_SearchFailure(t *testing.T) {
	s := NewSearcher(&fakeKeywords{keywords: "價格"}, &fakeSearch{err: apperr.NewNetwork("udn down")}, &fakeClassifier{}, &fakeExtractor{}, &fakeSummarizer{})

	_, err := s.Search(t.Context(), "prices")

	var ne *apperr.NetworkError
	assert.True(t, errors.As(err, &ne))
}
