package auth

import (
	"errors"
	"time"

	"github.com/DjordjeVuckovic/news-digest/pkg/config/env"
)

const DefaultTokenTTL = 30 * time.Minute

type Config struct {
	Secret   string
	TokenTTL time.Duration
}

func LoadConfig() (*Config, error) {
	secret := env.String("JWT_SECRET", "")
	if secret == "" {
		return nil, errors.New("JWT_SECRET environment variable not set")
	}
	ttl, err := env.Duration("TOKEN_TTL", DefaultTokenTTL)
	if err != nil {
		return nil, err
	}
	return &Config{Secret: secret, TokenTTL: ttl}, nil
}
