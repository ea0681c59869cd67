package search

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
)

// Searcher is what the ingestion side needs from a news search source.
type Searcher interface {
	Search(ctx context.Context, keyword string, pages int) ([]domain.Snapshot, error)
}

// Client queries the udn.com keyword search API.
type Client struct {
	base     string
	maxPages int
	http     *http.Client
}

type Option func(*Client)

func WithHttpClient(c *http.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

func NewClient(cfg *Config, opts ...Option) *Client {
	c := &Client{
		base:     strings.TrimRight(cfg.BaseURL, "/"),
		maxPages: cfg.MaxPages,
		http:     &http.Client{Timeout: cfg.Timeout},
	}
	if c.maxPages < 1 {
		c.maxPages = DefaultMaxPages
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type pageResponse struct {
	Lists []struct {
		Title     string `json:"title"`
		TitleLink string `json:"titleLink"`
	} `json:"lists"`
}

// Search walks result pages 1..pages in order and stops at the first empty page.
// A failing page is logged and skipped; only when every requested page fails is
// a *apperr.NetworkError returned.
func (c *Client) Search(ctx context.Context, keyword string, pages int) ([]domain.Snapshot, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, apperr.NewValidation("search keyword is required")
	}
	pages = min(max(pages, 1), c.maxPages)

	var (
		snapshots []domain.Snapshot
		failed    int
		succeeded int
		lastErr   error
	)
	for page := 1; page <= pages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		found, err := c.fetchPage(ctx, keyword, page)
		if err != nil {
			slog.Warn("Search page failed", "keyword", keyword, "page", page, "error", err)
			failed++
			lastErr = err
			continue
		}
		succeeded++
		if len(found) == 0 {
			slog.Debug("Search returned an empty page, stopping", "keyword", keyword, "page", page)
			break
		}
		snapshots = append(snapshots, found...)
	}

	if succeeded == 0 {
		return nil, apperr.NewNetworkWrap(fmt.Sprintf("search %q: all %d pages failed", keyword, failed), lastErr)
	}

	slog.Info("Search completed", "keyword", keyword, "pages", pages, "snapshots", len(snapshots), "failedPages", failed)
	return snapshots, nil
}

func (c *Client) fetchPage(ctx context.Context, keyword string, page int) ([]domain.Snapshot, error) {
	q := url.Values{
		"page":      {strconv.Itoa(page)},
		"id":        {"search:" + keyword},
		"channelId": {"2"},
		"type":      {"searchword"},
	}
	endpoint := c.base + "/api/more?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.NewNetworkWrap("search request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.NewNetwork(fmt.Sprintf("search returned status %d", resp.StatusCode))
	}

	var body pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperr.NewNetworkWrap("decode search response", err)
	}

	snapshots := make([]domain.Snapshot, 0, len(body.Lists))
	for _, item := range body.Lists {
		title := strings.TrimSpace(item.Title)
		link := strings.TrimSpace(item.TitleLink)
		if title == "" || link == "" {
			continue
		}
		snapshots = append(snapshots, domain.Snapshot{Title: title, URL: c.resolve(link)})
	}
	return snapshots, nil
}

// resolve turns site-relative links into absolute ones.
func (c *Client) resolve(link string) string {
	if strings.HasPrefix(link, "http://") || strings.HasPrefix(link, "https://") {
		return link
	}
	return c.base + "/" + strings.TrimLeft(link, "/")
}
