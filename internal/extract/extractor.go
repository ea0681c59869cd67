package extract

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/apperr"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/PuerkitoBio/goquery"
)

const defaultTimeout = 30 * time.Second

// Extractor fetches an article page and pulls title, time and body out of it.
type Extractor struct {
	profile Profile
	http    *http.Client
}

type Option func(*Extractor)

func WithTimeout(d time.Duration) Option {
	return func(e *Extractor) {
		e.http.Timeout = d
	}
}

func WithHttpClient(c *http.Client) Option {
	return func(e *Extractor) {
		e.http = c
	}
}

func NewExtractor(profile Profile, opts ...Option) *Extractor {
	e := &Extractor{
		profile: profile,
		http:    &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Extractor) Extract(ctx context.Context, url string) (*domain.Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.NewExtraction(url, err.Error())
	}
	req.Header.Set("Accept", "text/html")

	resp, err := e.http.Do(req)
	if err != nil {
		return nil, apperr.NewNetworkWrap(fmt.Sprintf("fetch %s", url), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, apperr.NewNetwork(fmt.Sprintf("fetch %s: status %d", url, resp.StatusCode))
	}

	return e.Parse(url, resp.Body)
}

// Parse reads an article document. A missing title, time or content container
// is reported as *apperr.ExtractionError naming the selector.
func (e *Extractor) Parse(url string, r io.Reader) (*domain.Page, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, apperr.NewExtraction(url, fmt.Sprintf("parse html: %v", err))
	}

	title := doc.Find(e.profile.Title).First()
	if title.Length() == 0 {
		return nil, apperr.NewExtraction(url, fmt.Sprintf("missing title %q", e.profile.Title))
	}
	published := doc.Find(e.profile.Time).First()
	if published.Length() == 0 {
		return nil, apperr.NewExtraction(url, fmt.Sprintf("missing time %q", e.profile.Time))
	}
	content := doc.Find(e.profile.Content).First()
	if content.Length() == 0 {
		return nil, apperr.NewExtraction(url, fmt.Sprintf("missing content %q", e.profile.Content))
	}

	page := &domain.Page{
		Title:     strings.TrimSpace(title.Text()),
		Published: strings.TrimSpace(published.Text()),
	}
	content.Find(e.profile.Paragraph).Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if e.keep(text) {
			page.Paragraphs = append(page.Paragraphs, text)
		}
	})

	slog.Debug("Article extracted", "url", url, "title", page.Title, "paragraphs", len(page.Paragraphs))
	return page, nil
}

func (e *Extractor) keep(text string) bool {
	if text == "" {
		return !e.profile.DropEmpty
	}
	for _, marker := range e.profile.ExcludeMarkers {
		if marker != "" && strings.Contains(text, marker) {
			return false
		}
	}
	return true
}
