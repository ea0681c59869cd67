package es

import (
	"testing"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	estesting "github.com/DjordjeVuckovic/news-digest/pkg/testing"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDocument(t *testing.T) {
	id := uuid.New()
	doc := toDocument(domain.Article{
		ID:        id,
		URL:       "https://udn.com/1",
		Title:     "t",
		Published: "2024-01-02 10:30",
		Body:      "body",
		Summary:   "impact",
		Reason:    "cause",
	})

	assert.Equal(t, id.String(), doc.ID)
	assert.Equal(t, "body", doc.Content)
	require.NotNil(t, doc.PublishedAt)
	assert.Equal(t, time.Date(2024, 1, 2, 10, 30, 0, 0, time.UTC), *doc.PublishedAt)

	assert.Nil(t, toDocument(domain.Article{Published: "unknown"}).PublishedAt)
}

func TestMirror_IndexAndBackfill(t *testing.T) {
	ctx := t.Context()
	container := estesting.NewESContainer(ctx, t)

	mirror, err := NewMirror(ctx, ClientConfig{
		Addresses: []string{container.Address},
		IndexName: "news_digest_test",
	})
	if err != nil {
		t.Skipf("elasticsearch not reachable over plain http: %v", err)
	}

	require.NoError(t, mirror.Index(ctx, domain.Article{ID: uuid.New(), URL: "https://udn.com/1", Title: "a", Published: "2024-01-01"}))
	require.NoError(t, mirror.Backfill(ctx, []domain.Article{
		{ID: uuid.New(), URL: "https://udn.com/2", Title: "b", Published: "2024-01-02"},
		{ID: uuid.New(), URL: "https://udn.com/3", Title: "c", Published: "unknown"},
	}))

	n, err := mirror.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	// A second mirror on the same index must not try to recreate it.
	_, err = NewMirror(ctx, ClientConfig{Addresses: []string{container.Address}, IndexName: "news_digest_test"})
	assert.NoError(t, err)
}

func TestMirror_IndexRequiresID(t *testing.T) {
	m := &Mirror{indexName: "x"}
	assert.Error(t, m.Index(t.Context(), domain.Article{URL: "https://udn.com/1"}))
}
