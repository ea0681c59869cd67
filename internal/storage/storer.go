package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/google/uuid"
)

// ArticleStore keeps ingested articles. URL is the natural key.
type ArticleStore interface {
	// Save assigns ID and CreatedAt when they are zero. A second article with the
	// same URL fails with *apperr.DuplicateArticleError and leaves the store unchanged.
	Save(ctx context.Context, article domain.Article) (uuid.UUID, error)
	// ListAll returns every article, newest published first.
	ListAll(ctx context.Context) ([]domain.Article, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Count(ctx context.Context) (int, error)
}

type UserStore interface {
	// Create fails with *apperr.ConflictError when the username is taken.
	Create(ctx context.Context, user domain.User) (uuid.UUID, error)
	// FindByUsername fails with *apperr.NotFoundError for unknown users.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type UpvoteStore interface {
	// Toggle removes the (article, user) upvote when present and adds it otherwise.
	// It is not isolated: two concurrent toggles of the same pair race and the last
	// write wins.
	Toggle(ctx context.Context, articleID, userID uuid.UUID) (domain.ToggleResult, error)
	// Stats returns upvote counts per article and whether userID upvoted each.
	// Articles without upvotes are absent. uuid.Nil never counts as having upvoted.
	Stats(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]domain.UpvoteStats, error)
}

// ArticleIndexer mirrors saved articles into a secondary index.
type ArticleIndexer interface {
	Index(ctx context.Context, article domain.Article) error
}

type Type string

const (
	PG    Type = "pg"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storer type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
