package in_mem

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/google/uuid"
)

type ArticleStore struct {
	storageLock sync.RWMutex
	byID        map[uuid.UUID]domain.Article
	byURL       map[string]uuid.UUID
}

func NewArticleStore() *ArticleStore {
	return &ArticleStore{
		byID:  make(map[uuid.UUID]domain.Article),
		byURL: make(map[string]uuid.UUID),
	}
}

func (s *ArticleStore) Save(_ context.Context, article domain.Article) (uuid.UUID, error) {
	s.storageLock.Lock()
	defer s.storageLock.Unlock()

	if _, exists := s.byURL[article.URL]; exists {
		return uuid.Nil, apperr.NewDuplicateArticle(article.URL, nil)
	}

	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}

	s.byID[article.ID] = article
	s.byURL[article.URL] = article.ID
	slog.Debug("Saving article to in-memory storage", "title", article.Title, "id", article.ID)

	return article.ID, nil
}

func (s *ArticleStore) ListAll(_ context.Context) ([]domain.Article, error) {
	s.storageLock.RLock()
	articles := make([]domain.Article, 0, len(s.byID))
	for _, a := range s.byID {
		articles = append(articles, a)
	}
	s.storageLock.RUnlock()

	sort.SliceStable(articles, func(i, j int) bool {
		if articles[i].Published == articles[j].Published {
			return articles[i].CreatedAt.After(articles[j].CreatedAt)
		}
		return domain.PublishedAfter(articles[i].Published, articles[j].Published)
	})
	return articles, nil
}

func (s *ArticleStore) ExistsByID(_ context.Context, id uuid.UUID) (bool, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	_, ok := s.byID[id]
	return ok, nil
}

func (s *ArticleStore) Count(_ context.Context) (int, error) {
	s.storageLock.RLock()
	defer s.storageLock.RUnlock()

	return len(s.byID), nil
}
