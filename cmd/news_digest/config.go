package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/DjordjeVuckovic/news-digest/internal/api/server"
	"github.com/DjordjeVuckovic/news-digest/internal/app"
	"github.com/DjordjeVuckovic/news-digest/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type NewsDigestConfig struct {
	Server *server.Config
	App    *app.Config
}

func (as *AppConfig) Load() (*NewsDigestConfig, error) {
	err := env.LoadDotEnv(as.ENV, "cmd/news_digest/.env")
	if err != nil {
		slog.Info("Failed to .env load environment variables, continuing with existing environment variables", "error", err)
	}

	setLogLevel(os.Getenv("LOG_LEVEL"))

	serverCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server configuration", "error", err)
		return nil, err
	}

	appCfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("Failed to load application configuration", "error", err)
		return nil, err
	}

	return &NewsDigestConfig{
		Server: serverCfg,
		App:    appCfg,
	}, nil
}

func setLogLevel(level string) {
	switch strings.ToLower(level) {
	case "debug":
		slog.SetLogLoggerLevel(slog.LevelDebug)
	case "warn":
		slog.SetLogLoggerLevel(slog.LevelWarn)
	case "error":
		slog.SetLogLoggerLevel(slog.LevelError)
	default:
		slog.SetLogLoggerLevel(slog.LevelInfo)
	}
}
