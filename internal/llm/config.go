package llm

import (
	"errors"
	"fmt"
	"os"
	"time"
)

type Provider string

const (
	ProviderOpenAI Provider = "openai"
	ProviderCohere Provider = "cohere"
)

const (
	defaultOpenAIModel   = "gpt-3.5-turbo"
	defaultOpenAIBaseURL = "https://api.openai.com/v1"
	defaultCohereModel   = "command-r"
	defaultTimeout       = 60 * time.Second
)

type Config struct {
	Provider Provider
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

func LoadConfigFromEnv() (*Config, error) {
	provider := Provider(os.Getenv("LLM_PROVIDER"))
	if provider == "" {
		provider = ProviderOpenAI
	}
	if provider != ProviderOpenAI && provider != ProviderCohere {
		return nil, fmt.Errorf("invalid LLM_PROVIDER %q, expected one of %v", provider, []Provider{ProviderOpenAI, ProviderCohere})
	}

	apiKey := os.Getenv("LLM_API_KEY")
	if apiKey == "" {
		return nil, errors.New("LLM_API_KEY environment variable not set")
	}

	timeout := defaultTimeout
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT: %w", err)
		}
		timeout = d
	}

	cfg := &Config{
		Provider: provider,
		APIKey:   apiKey,
		Model:    os.Getenv("LLM_MODEL"),
		BaseURL:  os.Getenv("LLM_BASE_URL"),
		Timeout:  timeout,
	}

	if cfg.Model == "" {
		cfg.Model = defaultOpenAIModel
		if provider == ProviderCohere {
			cfg.Model = defaultCohereModel
		}
	}
	if cfg.BaseURL == "" && provider == ProviderOpenAI {
		cfg.BaseURL = defaultOpenAIBaseURL
	}

	return cfg, nil
}

// NewClient builds the configured provider.
func NewClient(cfg *Config) (Client, error) {
	switch cfg.Provider {
	case ProviderOpenAI:
		return NewOpenAIClient(cfg.BaseURL, cfg.APIKey,
			WithModel(cfg.Model),
			WithTimeout(cfg.Timeout),
		)
	case ProviderCohere:
		return NewCohereClient(cfg.APIKey, cfg.Model, cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
