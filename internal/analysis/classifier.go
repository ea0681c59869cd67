package analysis

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/DjordjeVuckovic/news-digest/internal/llm"
)

// Classifier rates headline relevance against a topic.
type Classifier struct {
	client llm.Client
}

func NewClassifier(client llm.Client) *Classifier {
	return &Classifier{client: client}
}

// Classify fails closed: any answer other than the exact class names maps to RelevanceUnknown.
func (c *Classifier) Classify(ctx context.Context, title, topic string) (domain.Relevance, error) {
	raw, err := c.client.Complete(ctx, llm.Prompt{
		System: relevancePrompt(topic),
		User:   title,
	})
	if err != nil {
		return domain.RelevanceUnknown, fmt.Errorf("classify %q: %w", title, err)
	}

	relevance := domain.ParseRelevance(raw)
	if !relevance.Advances() {
		slog.Info("Headline not relevant",
			"title", title,
			"topic", topic,
			"relevance", relevance,
			"raw", raw,
		)
	}

	return relevance, nil
}
