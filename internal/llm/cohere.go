package llm

import (
	"context"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

// CohereClient implements Client with the Cohere chat endpoint.
type CohereClient struct {
	client *cohereclient.Client
	model  string
}

func NewCohereClient(apiKey, model string, timeout time.Duration) *CohereClient {
	httpClient := &http.Client{Timeout: timeout}
	return &CohereClient{
		client: cohereclient.NewClient(
			cohereclient.WithToken(apiKey),
			cohereclient.WithHTTPClient(httpClient),
		),
		model: model,
	}
}

func (c *CohereClient) Complete(ctx context.Context, p Prompt) (string, error) {
	if p.User == "" {
		return "", apperr.NewValidation("missing prompt content")
	}

	preamble := p.System
	model := c.model
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message:  p.User,
		Preamble: &preamble,
		Model:    &model,
	})
	if err != nil {
		return "", apperr.NewNetworkWrap("cohere chat failed", err)
	}
	if resp == nil {
		return "", apperr.NewNetwork("cohere chat returned empty response")
	}

	return resp.Text, nil
}
