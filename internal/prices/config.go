package prices

import (
	"time"

	"github.com/DjordjeVuckovic/news-digest/pkg/config/env"
)

const (
	DefaultBaseURL  = "https://opendata.ey.gov.tw/api/ConsumerProtection/NecessitiesPrice"
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = time.Hour
)

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
	// Redis is nil when REDIS_ADDR is not set; responses are then not cached.
	Redis *RedisConfig
}

func LoadConfig() (*Config, error) {
	timeout, err := env.Duration("HTTP_TIMEOUT", DefaultTimeout)
	if err != nil {
		return nil, err
	}
	ttl, err := env.Duration("PRICES_CACHE_TTL", DefaultCacheTTL)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BaseURL:  env.String("PRICES_BASE_URL", DefaultBaseURL),
		Timeout:  timeout,
		CacheTTL: ttl,
	}

	if addr := env.String("REDIS_ADDR", ""); addr != "" {
		db, err := env.Int("REDIS_DB", 0)
		if err != nil {
			return nil, err
		}
		cfg.Redis = &RedisConfig{
			Addr:     addr,
			Password: env.String("REDIS_PASSWORD", ""),
			DB:       db,
		}
	}
	return cfg, nil
}
