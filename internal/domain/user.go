package domain

import (
	"time"

	"github.com/google/uuid"
)

// User holds only the hashed credential; plaintext never leaves registration/login.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ToggleResult int

const (
	UpvoteAdded ToggleResult = iota + 1
	UpvoteRemoved
)

func (r ToggleResult) Message() string {
	switch r {
	case UpvoteAdded:
		return "Article upvoted"
	case UpvoteRemoved:
		return "Upvote removed"
	default:
		return "unknown"
	}
}

type UpvoteStats struct {
	Count     int
	IsUpvoted bool
}
