package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/DjordjeVuckovic/news-digest/pkg/config/env"
	"github.com/nats-io/nats.go"
)

const (
	DefaultSubject = "news.digest.ingested"
	messageSource  = "news-digest"
	messageVersion = "1.0"
)

type Config struct {
	URL     string
	Subject string
}

// LoadConfig returns nil when NATS_URL is not set.
func LoadConfig() *Config {
	url := env.String("NATS_URL", "")
	if url == "" {
		return nil
	}
	return &Config{
		URL:     url,
		Subject: env.String("NATS_SUBJECT", DefaultSubject),
	}
}

// ArticleMessage is the payload published for every newly persisted article.
type ArticleMessage struct {
	Article   domain.Article `json:"article"`
	Timestamp time.Time      `json:"timestamp"`
	Source    string         `json:"source"`
	Version   string         `json:"version"`
}

func NewArticleMessage(a domain.Article) ArticleMessage {
	return ArticleMessage{
		Article:   a,
		Timestamp: time.Now().UTC(),
		Source:    messageSource,
		Version:   messageVersion,
	}
}

type Publisher struct {
	conn    *nats.Conn
	subject string
}

func NewPublisher(cfg *Config) (*Publisher, error) {
	nc, err := nats.Connect(cfg.URL,
		nats.Name(messageSource),
		nats.ReconnectWait(2*time.Second),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to nats: %w", err)
	}

	subject := cfg.Subject
	if subject == "" {
		subject = DefaultSubject
	}
	return &Publisher{conn: nc, subject: subject}, nil
}

// Publish is fire-and-forget; ctx only short-circuits a cancelled caller.
func (p *Publisher) Publish(ctx context.Context, a domain.Article) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(NewArticleMessage(a))
	if err != nil {
		return fmt.Errorf("marshal article message: %w", err)
	}
	if err := p.conn.Publish(p.subject, data); err != nil {
		return fmt.Errorf("publish to %s: %w", p.subject, err)
	}

	slog.Debug("Published article event", "subject", p.subject, "url", a.URL)
	return nil
}

func (p *Publisher) Close() {
	if p.conn != nil {
		if err := p.conn.Drain(); err != nil {
			slog.Warn("Failed to drain nats connection", "error", err)
			p.conn.Close()
		}
	}
}
