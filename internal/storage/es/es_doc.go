package es

import (
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
)

// Document is the mirrored shape of an ingested article.
type Document struct {
	ID          string     `json:"id"`
	URL         string     `json:"url"`
	Title       string     `json:"title"`
	Published   string     `json:"published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	Content     string     `json:"content"`
	Summary     string     `json:"summary"`
	Reason      string     `json:"reason"`
	CreatedAt   time.Time  `json:"created_at"`
	IndexedAt   time.Time  `json:"indexed_at"`
}

func toDocument(a domain.Article) Document {
	doc := Document{
		ID:        a.ID.String(),
		URL:       a.URL,
		Title:     a.Title,
		Published: a.Published,
		Content:   a.Body,
		Summary:   a.Summary,
		Reason:    a.Reason,
		CreatedAt: a.CreatedAt,
		IndexedAt: time.Now(),
	}
	if t, ok := domain.ParsePublished(a.Published); ok {
		doc.PublishedAt = &t
	}
	return doc
}
