package llm

import (
	"context"
)

// Prompt is a single-turn request: a system instruction and the user content.
type Prompt struct {
	System string
	User   string
}

// Client is a text-generation capability: prompt in, text out.
// Implementations return *apperr.NetworkError for transport or upstream failures.
type Client interface {
	Complete(ctx context.Context, p Prompt) (string, error)
}
