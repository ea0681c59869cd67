package in_mem

import (
	"context"
	"sync"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/google/uuid"
)

type upvoteKey struct {
	articleID uuid.UUID
	userID    uuid.UUID
}

type UpvoteStore struct {
	mu      sync.Mutex
	upvotes map[upvoteKey]struct{}
}

func NewUpvoteStore() *UpvoteStore {
	return &UpvoteStore{upvotes: make(map[upvoteKey]struct{})}
}

func (s *UpvoteStore) Toggle(_ context.Context, articleID, userID uuid.UUID) (domain.ToggleResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := upvoteKey{articleID: articleID, userID: userID}
	if _, ok := s.upvotes[key]; ok {
		delete(s.upvotes, key)
		return domain.UpvoteRemoved, nil
	}
	s.upvotes[key] = struct{}{}
	return domain.UpvoteAdded, nil
}

func (s *UpvoteStore) Stats(_ context.Context, userID uuid.UUID) (map[uuid.UUID]domain.UpvoteStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := make(map[uuid.UUID]domain.UpvoteStats)
	for key := range s.upvotes {
		st := stats[key.articleID]
		st.Count++
		if userID != uuid.Nil && key.userID == userID {
			st.IsUpvoted = true
		}
		stats[key.articleID] = st
	}
	return stats, nil
}
