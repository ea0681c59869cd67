package in_mem

import (
	"context"
	"sync"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/google/uuid"
)

type UserStore struct {
	mu     sync.RWMutex
	byName map[string]domain.User
}

func NewUserStore() *UserStore {
	return &UserStore{byName: make(map[string]domain.User)}
}

func (s *UserStore) Create(_ context.Context, user domain.User) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byName[user.Username]; taken {
		return uuid.Nil, apperr.NewConflict("username already registered", nil)
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	s.byName[user.Username] = user
	return user.ID, nil
}

func (s *UserStore) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.byName[username]
	if !ok {
		return nil, apperr.NewNotFound("user not found")
	}
	return &user, nil
}
