package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ArticleStore struct {
	db *pgxpool.Pool
}

func NewArticleStore(pool *ConnectionPool) *ArticleStore {
	return &ArticleStore{db: pool.conn}
}

func (s *ArticleStore) Save(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now()
	}

	var publishedAt *time.Time
	if t, ok := domain.ParsePublished(article.Published); ok {
		publishedAt = &t
	}

	cmd := `
        INSERT INTO articles (id, url, title, published, published_at, content, summary, reason, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id;
    `
	var id uuid.UUID
	err := s.db.QueryRow(
		ctx,
		cmd,
		article.ID,
		article.URL,
		article.Title,
		article.Published,
		publishedAt,
		article.Body,
		article.Summary,
		article.Reason,
		article.CreatedAt,
	).Scan(&id)
	if err != nil {
		if uniqueViolationOn(err, "articles_url_key") {
			return uuid.Nil, apperr.NewDuplicateArticle(article.URL, err)
		}
		return uuid.Nil, fmt.Errorf("failed to insert article: %w", err)
	}

	return id, nil
}

func (s *ArticleStore) ListAll(ctx context.Context) ([]domain.Article, error) {
	query := `
        SELECT id, url, title, published, content, summary, reason, created_at
        FROM articles
        ORDER BY published_at DESC NULLS LAST, published COLLATE "C" DESC, created_at DESC;
    `
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	articles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Article, error) {
		var a domain.Article
		err := row.Scan(&a.ID, &a.URL, &a.Title, &a.Published, &a.Body, &a.Summary, &a.Reason, &a.CreatedAt)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleStore) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM articles WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check article %s: %w", id, err)
	}
	return exists, nil
}

func (s *ArticleStore) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM articles`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return n, nil
}
