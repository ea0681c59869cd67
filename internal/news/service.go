package news

import (
	"context"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/DjordjeVuckovic/news-digest/internal/storage"
	"github.com/google/uuid"
)

type Summarizer interface {
	Summarize(ctx context.Context, body string) (*domain.Summary, error)
}

type Searcher interface {
	Search(ctx context.Context, prompt string) ([]domain.SearchResult, error)
}

// Service backs the news endpoints.
type Service struct {
	articles   storage.ArticleStore
	upvotes    storage.UpvoteStore
	summarizer Summarizer
	searcher   Searcher
}

func NewService(articles storage.ArticleStore, upvotes storage.UpvoteStore, summarizer Summarizer, searcher Searcher) *Service {
	return &Service{
		articles:   articles,
		upvotes:    upvotes,
		summarizer: summarizer,
		searcher:   searcher,
	}
}

// List returns every stored article with its upvote count. With uuid.Nil as
// viewer, IsUpvoted is always false.
func (s *Service) List(ctx context.Context, viewer uuid.UUID) ([]domain.ArticleView, error) {
	articles, err := s.articles.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	stats, err := s.upvotes.Stats(ctx, viewer)
	if err != nil {
		return nil, fmt.Errorf("upvote stats: %w", err)
	}

	views := make([]domain.ArticleView, 0, len(articles))
	for _, a := range articles {
		st := stats[a.ID]
		views = append(views, domain.ArticleView{
			Article:   a,
			Upvotes:   st.Count,
			IsUpvoted: viewer != uuid.Nil && st.IsUpvoted,
		})
	}
	return views, nil
}

func (s *Service) ToggleUpvote(ctx context.Context, articleID, userID uuid.UUID) (domain.ToggleResult, error) {
	exists, err := s.articles.ExistsByID(ctx, articleID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, apperr.NewNotFound(fmt.Sprintf("article %s not found", articleID))
	}
	return s.upvotes.Toggle(ctx, articleID, userID)
}

func (s *Service) Summarize(ctx context.Context, content string) (*domain.Summary, error) {
	if strings.TrimSpace(content) == "" {
		return nil, apperr.NewValidation("content is required")
	}
	return s.summarizer.Summarize(ctx, content)
}

func (s *Service) Search(ctx context.Context, prompt string) ([]domain.SearchResult, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, apperr.NewValidation("prompt is required")
	}
	return s.searcher.Search(ctx, prompt)
}
