package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/DjordjeVuckovic/news-digest/internal/llm"
)

type Summarizer struct {
	client llm.Client
}

func NewSummarizer(client llm.Client) *Summarizer {
	return &Summarizer{client: client}
}

func (s *Summarizer) Summarize(ctx context.Context, body string) (*domain.Summary, error) {
	if strings.TrimSpace(body) == "" {
		return nil, apperr.NewValidation("content is required")
	}

	raw, err := s.client.Complete(ctx, llm.Prompt{
		System: summaryPrompt,
		User:   body,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize: %w", err)
	}

	return ParseSummary(raw)
}

// rawSummary accepts both the English keys we ask for and the keys the
// Chinese-language prompt historically produced.
type rawSummary struct {
	Impact   string `json:"impact"`
	Cause    string `json:"cause"`
	ImpactZh string `json:"影響"`
	CauseZh  string `json:"原因"`
}

// ParseSummary converts a model answer into a Summary or a *apperr.SummarizationError.
func ParseSummary(raw string) (*domain.Summary, error) {
	text := stripCodeFence(raw)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, apperr.NewSummarization("summary is not a json object", raw)
	}

	var parsed rawSummary
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, apperr.NewSummarizationWrap("invalid summary json", raw, err)
	}

	summary := &domain.Summary{
		Impact: firstNonEmpty(parsed.Impact, parsed.ImpactZh),
		Cause:  firstNonEmpty(parsed.Cause, parsed.CauseZh),
	}
	if summary.Impact == "" {
		return nil, apperr.NewSummarization("summary is missing impact", raw)
	}
	if summary.Cause == "" {
		return nil, apperr.NewSummarization("summary is missing cause", raw)
	}

	return summary, nil
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSuffix(strings.TrimSpace(s), "```")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
