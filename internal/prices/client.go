package prices

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
)

const maxBodySize = 10 << 20

// Client is a read-only proxy to the necessities price index.
type Client struct {
	base  string
	http  *http.Client
	cache Cache
	ttl   time.Duration
}

type Option func(*Client)

func WithCache(cache Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.ttl = ttl
	}
}

func NewClient(cfg *Config, opts ...Option) *Client {
	c := &Client{
		base: cfg.BaseURL,
		http: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Necessities returns the upstream JSON untouched. Empty filters are omitted.
func (c *Client) Necessities(ctx context.Context, category, commodity string) (json.RawMessage, error) {
	category, commodity = strings.TrimSpace(category), strings.TrimSpace(commodity)
	key := "prices:necessities:" + category + "|" + commodity

	if c.cache != nil {
		cached, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			slog.Warn("Price cache read failed", "key", key, "error", err)
		} else if ok {
			return cached, nil
		}
	}

	body, err := c.fetch(ctx, category, commodity)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if err := c.cache.Set(ctx, key, body, c.ttl); err != nil {
			slog.Warn("Price cache write failed", "key", key, "error", err)
		}
	}
	return body, nil
}

func (c *Client) fetch(ctx context.Context, category, commodity string) (json.RawMessage, error) {
	u, err := url.Parse(c.base)
	if err != nil {
		return nil, fmt.Errorf("invalid price api url: %w", err)
	}
	q := u.Query()
	if category != "" {
		q.Set("CategoryName", category)
	}
	if commodity != "" {
		q.Set("Name", commodity)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.NewNetworkWrap("price api request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.NewNetwork(fmt.Sprintf("price api returned status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, apperr.NewNetworkWrap("read price api response", err)
	}
	if !json.Valid(body) {
		return nil, apperr.NewNetwork("price api returned invalid json")
	}
	return body, nil
}
