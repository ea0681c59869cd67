package pg

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UpvoteStore struct {
	db *pgxpool.Pool
}

func NewUpvoteStore(pool *ConnectionPool) *UpvoteStore {
	return &UpvoteStore{db: pool.conn}
}

// Toggle deletes first and inserts only when nothing was deleted. The two
// statements are not isolated from a concurrent toggle of the same pair.
func (s *UpvoteStore) Toggle(ctx context.Context, articleID, userID uuid.UUID) (domain.ToggleResult, error) {
	tag, err := s.db.Exec(ctx,
		`DELETE FROM user_article_upvotes WHERE user_id = $1 AND article_id = $2`,
		userID, articleID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to remove upvote: %w", err)
	}
	if tag.RowsAffected() > 0 {
		return domain.UpvoteRemoved, nil
	}

	_, err = s.db.Exec(ctx,
		`INSERT INTO user_article_upvotes (user_id, article_id) VALUES ($1, $2)
         ON CONFLICT (user_id, article_id) DO NOTHING`,
		userID, articleID,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to add upvote: %w", err)
	}
	return domain.UpvoteAdded, nil
}

func (s *UpvoteStore) Stats(ctx context.Context, userID uuid.UUID) (map[uuid.UUID]domain.UpvoteStats, error) {
	query := `
        SELECT article_id, count(*), coalesce(bool_or(user_id = $1), false)
        FROM user_article_upvotes
        GROUP BY article_id;
    `
	rows, err := s.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query upvote stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[uuid.UUID]domain.UpvoteStats)
	for rows.Next() {
		var (
			articleID uuid.UUID
			st        domain.UpvoteStats
		)
		if err := rows.Scan(&articleID, &st.Count, &st.IsUpvoted); err != nil {
			return nil, fmt.Errorf("failed to scan upvote stats: %w", err)
		}
		stats[articleID] = st
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read upvote stats: %w", err)
	}
	return stats, nil
}
