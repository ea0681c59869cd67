package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
)

type OpenAIOption func(client *OpenAIClient)

// OpenAIClient talks to any OpenAI-compatible chat completions endpoint.
type OpenAIClient struct {
	base   url.URL
	apiKey string
	model  string
	http   *http.Client
}

func NewOpenAIClient(baseUrl, apiKey string, opts ...OpenAIOption) (*OpenAIClient, error) {
	base, err := url.Parse(baseUrl)
	if err != nil {
		return nil, err
	}

	client := &OpenAIClient{
		base:   *base,
		apiKey: apiKey,
		model:  defaultOpenAIModel,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithModel(model string) OpenAIOption {
	return func(client *OpenAIClient) {
		client.model = model
	}
}

func WithTimeout(d time.Duration) OpenAIOption {
	return func(client *OpenAIClient) {
		client.http.Timeout = d
	}
}

func WithHttpClient(httpClient *http.Client) OpenAIOption {
	return func(client *OpenAIClient) {
		client.http = httpClient
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (oc *OpenAIClient) Complete(ctx context.Context, p Prompt) (string, error) {
	if p.User == "" {
		return "", apperr.NewValidation("missing prompt content")
	}

	req := chatRequest{
		Model: oc.model,
		Messages: []chatMessage{
			{Role: "system", Content: p.System},
			{Role: "user", Content: p.User},
		},
	}

	var resp chatResponse
	if err := oc.do(ctx, http.MethodPost, "/chat/completions", req, &resp); err != nil {
		return "", apperr.NewNetworkWrap("chat completion failed", err)
	}

	if len(resp.Choices) == 0 {
		return "", apperr.NewNetwork("chat completion returned no choices")
	}

	slog.Debug("Chat completion received", "model", oc.model, "length", len(resp.Choices[0].Message.Content))
	return resp.Choices[0].Message.Content, nil
}

func (oc *OpenAIClient) do(ctx context.Context, method, path string, reqData, respData any) error {
	reqDataBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := oc.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, method, reqURL.String(), bytes.NewReader(reqDataBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Authorization", "Bearer "+oc.apiKey)

	resp, err := oc.http.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}
