package analysis

import (
	"context"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/llm"
)

// KeywordExtractor turns a free-text request into search keywords.
type KeywordExtractor struct {
	client llm.Client
}

func NewKeywordExtractor(client llm.Client) *KeywordExtractor {
	return &KeywordExtractor{client: client}
}

func (k *KeywordExtractor) Keywords(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", apperr.NewValidation("prompt is required")
	}

	raw, err := k.client.Complete(ctx, llm.Prompt{
		System: keywordsPrompt,
		User:   prompt,
	})
	if err != nil {
		return "", fmt.Errorf("extract keywords: %w", err)
	}

	keywords := strings.Join(strings.Fields(raw), " ")
	if keywords == "" {
		return "", apperr.NewValidation("no keywords could be extracted from prompt")
	}
	return keywords, nil
}
