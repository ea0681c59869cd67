package search

import (
	"time"

	"github.com/DjordjeVuckovic/news-digest/pkg/config/env"
)

const (
	DefaultBaseURL  = "https://udn.com"
	DefaultMaxPages = 9
	DefaultTimeout  = 30 * time.Second
)

type Config struct {
	BaseURL  string
	MaxPages int
	Timeout  time.Duration
}

func LoadConfig() (*Config, error) {
	maxPages, err := env.PositiveInt("SEARCH_MAX_PAGES", DefaultMaxPages)
	if err != nil {
		return nil, err
	}
	timeout, err := env.Duration("HTTP_TIMEOUT", DefaultTimeout)
	if err != nil {
		return nil, err
	}

	return &Config{
		BaseURL:  env.String("SEARCH_BASE_URL", DefaultBaseURL),
		MaxPages: maxPages,
		Timeout:  timeout,
	}, nil
}
