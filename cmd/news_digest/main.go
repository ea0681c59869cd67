// Package main News Digest API
// @title News Digest API
// @version 1.0
// @description Scheduled news ingestion with LLM relevance filtering and summaries, per-user upvotes and a necessities price proxy
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	_ "github.com/DjordjeVuckovic/news-digest/docs"
	"github.com/DjordjeVuckovic/news-digest/internal/api/router"
	"github.com/DjordjeVuckovic/news-digest/internal/api/server"
	"github.com/DjordjeVuckovic/news-digest/internal/app"
	"github.com/labstack/echo/v4"
)

const schedulerStopTimeout = 30 * time.Second

func main() {
	cfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	a, err := app.New(context.Background(), cfg.App, nil)
	if err != nil {
		slog.Error("Failed to build application", "error", err)
		os.Exit(1)
	}
	defer a.Close()

	s := server.New(cfg.Server, a.Stores.Health).
		SetupMiddlewares("/health", "/metrics").
		SetupErrorHandler().
		SetupHealthChecks("/health").
		SetupMetrics("/metrics").
		SetupOpenApi("/swagger/*")

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "News Digest API is running")
	})

	router.NewUserRouter(s.Echo, a.Auth).Bind()
	router.NewNewsRouter(s.Echo, a.News, a.Auth).Bind()
	router.NewPriceRouter(s.Echo, a.Prices).Bind()

	if cfg.App.Scheduler.Enabled {
		if err := a.Scheduler.Start(s.Context()); err != nil {
			slog.Error("Failed to start scheduler", "error", err)
			os.Exit(1)
		}
	} else {
		slog.Info("Scheduler disabled")
	}

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
	}()

	err = s.Start()

	if cfg.App.Scheduler.Enabled {
		ctx, cancel := context.WithTimeout(context.Background(), schedulerStopTimeout)
		if stopErr := a.Scheduler.Stop(ctx); stopErr != nil {
			slog.Warn("Scheduler did not stop cleanly", "error", stopErr)
		}
		cancel()
	}

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		a.Close()
		os.Exit(1)
	}
}
