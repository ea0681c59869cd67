package scheduler

import (
	"time"

	"github.com/DjordjeVuckovic/news-digest/pkg/config/env"
)

const (
	DefaultKeyword      = "價格"
	DefaultTopic        = "民生用品的價格變化"
	DefaultInterval     = 100 * time.Minute
	DefaultPages        = 1
	DefaultInitialPages = 9
)

type Config struct {
	Enabled      bool
	Interval     time.Duration
	Keyword      string
	Topic        string
	Pages        int
	InitialPages int
}

func LoadConfig() (*Config, error) {
	interval, err := env.Duration("INGEST_INTERVAL", DefaultInterval)
	if err != nil {
		return nil, err
	}
	pages, err := env.PositiveInt("INGEST_PAGES", DefaultPages)
	if err != nil {
		return nil, err
	}
	initialPages, err := env.PositiveInt("INGEST_INITIAL_PAGES", DefaultInitialPages)
	if err != nil {
		return nil, err
	}

	return &Config{
		Enabled:      env.Bool("SCHEDULER_ENABLED", true),
		Interval:     interval,
		Keyword:      env.String("INGEST_KEYWORD", DefaultKeyword),
		Topic:        env.String("INGEST_TOPIC", DefaultTopic),
		Pages:        pages,
		InitialPages: initialPages,
	}, nil
}
