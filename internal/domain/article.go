package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Article is a persisted, summarized news article. URL is the natural key.
type Article struct {
	ID        uuid.UUID `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Published string    `json:"time"`
	Body      string    `json:"content"`
	Summary   string    `json:"summary"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"createdAt"`
}

// Snapshot is a lightweight search hit prior to full extraction.
type Snapshot struct {
	Title string `json:"title"`
	URL   string `json:"titleLink"`
}

// Page is the structured content extracted from an article page.
type Page struct {
	Title      string
	Published  string
	Paragraphs []string
}

func (p Page) Body() string {
	return strings.Join(p.Paragraphs, " ")
}

// Summary is the two-field digest produced for an article body.
type Summary struct {
	Impact string `json:"summary"`
	Cause  string `json:"reason"`
}

// NewArticle assembles the record persisted by the ingestion pipeline.
func NewArticle(url string, page Page, summary Summary) Article {
	return Article{
		URL:       url,
		Title:     page.Title,
		Published: page.Published,
		Body:      page.Body(),
		Summary:   summary.Impact,
		Reason:    summary.Cause,
	}
}

// ArticleView is an Article as served over the API, with upvote state for the caller.
type ArticleView struct {
	Article
	Upvotes   int  `json:"upvotes"`
	IsUpvoted bool `json:"is_upvoted"`
}

// SearchResult is a transient, non-persisted article produced by an on-demand search.
// ID is process-local and only meaningful to the client that received it.
type SearchResult struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Title     string `json:"title"`
	Published string `json:"time"`
	Body      string `json:"content"`
	Summary   string `json:"summary,omitempty"`
	Reason    string `json:"reason,omitempty"`
}
