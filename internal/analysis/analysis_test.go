package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/DjordjeVuckovic/news-digest/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	answer string
	err    error
	last   llm.Prompt
}

func (s *stubClient) Complete(_ context.Context, p llm.Prompt) (string, error) {
	s.last = p
	return s.answer, s.err
}

func TestClassifier_OnlyExactHighAdvances(t *testing.T) {
	cases := map[string]domain.Relevance{
		"high":    domain.RelevanceHigh,
		"High":    domain.RelevanceUnknown,
		"medium":  domain.RelevanceMedium,
		"low":     domain.RelevanceLow,
		"":        domain.RelevanceUnknown,
		"garbage": domain.RelevanceUnknown,
	}

	for answer, want := range cases {
		client := &stubClient{answer: answer}
		got, err := NewClassifier(client).Classify(t.Context(), "egg prices rise", "necessities prices")

		require.NoError(t, err)
		assert.Equal(t, want, got, answer)
		assert.Equal(t, want == domain.RelevanceHigh, got.Advances(), answer)
	}
}

func TestClassifier_PromptCarriesTopicAndTitle(t *testing.T) {
	client := &stubClient{answer: "low"}
	_, err := NewClassifier(client).Classify(t.Context(), "egg prices rise", "necessities prices")
	require.NoError(t, err)

	assert.Contains(t, client.last.System, "necessities prices")
	assert.Equal(t, "egg prices rise", client.last.User)
}

func TestClassifier_NetworkErrorPropagates(t *testing.T) {
	client := &stubClient{err: apperr.NewNetwork("down")}
	got, err := NewClassifier(client).Classify(t.Context(), "t", "topic")

	var ne *apperr.NetworkError
	assert.True(t, errors.As(err, &ne))
	assert.Equal(t, domain.RelevanceUnknown, got)
}

func TestParseSummary(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want domain.Summary
	}{
		{"plain", `{"impact": "prices up", "cause": "typhoon"}`, domain.Summary{Impact: "prices up", Cause: "typhoon"}},
		{"fenced", "```json\n{\"impact\": \"a\", \"cause\": \"b\"}\n```", domain.Summary{Impact: "a", Cause: "b"}},
		{"chatty", `Sure! {"impact": "a", "cause": "b"} Hope it helps.`, domain.Summary{Impact: "a", Cause: "b"}},
		{"chinese keys", `{"影響": "菜價上漲", "原因": "颱風"}`, domain.Summary{Impact: "菜價上漲", Cause: "颱風"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSummary(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestParseSummary_Malformed(t *testing.T) {
	for _, raw := range []string{
		"not json at all",
		"{'impact': 'single quotes'}",
		`{"impact": "unterminated}`,
		`{"other": "field"}`,
		`{"impact": "only"}`,
		`{"cause": "only"}`,
		`{"影響": "菜價上漲"}`,
		`{"impact": "a", "cause": "  "}`,
		"",
	} {
		_, err := ParseSummary(raw)

		var se *apperr.SummarizationError
		require.True(t, errors.As(err, &se), raw)
		assert.Equal(t, raw, se.Raw)
	}
}

func TestSummarizer_Summarize(t *testing.T) {
	client := &stubClient{answer: `{"impact": "a", "cause": "b"}`}

	got, err := NewSummarizer(client).Summarize(t.Context(), "body text")
	require.NoError(t, err)

	assert.Equal(t, &domain.Summary{Impact: "a", Cause: "b"}, got)
	assert.Equal(t, "body text", client.last.User)
}

func TestSummarizer_EmptyBody(t *testing.T) {
	_, err := NewSummarizer(&stubClient{}).Summarize(t.Context(), "  ")

	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestKeywordExtractor_NormalizesWhitespace(t *testing.T) {
	client := &stubClient{answer: "  雞蛋   價格\n"}

	got, err := NewKeywordExtractor(client).Keywords(t.Context(), "我想看雞蛋價格的新聞")
	require.NoError(t, err)

	assert.Equal(t, "雞蛋 價格", got)
}

func TestKeywordExtractor_EmptyAnswer(t *testing.T) {
	_, err := NewKeywordExtractor(&stubClient{answer: " \n"}).Keywords(t.Context(), "anything")

	var ve *apperr.ValidationError
	assert.True(t, errors.As(err, &ve))
}
