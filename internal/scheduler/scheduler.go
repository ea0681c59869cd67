package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/DjordjeVuckovic/news-digest/internal/ingest"
	"github.com/robfig/cron/v3"
)

type Runner interface {
	Run(ctx context.Context, opts ingest.RunOptions) (*ingest.Report, error)
}

type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Scheduler runs the ingestion pipeline at a fixed interval, plus one
// bootstrap run at start when the article store is empty.
type Scheduler struct {
	cfg     Config
	runner  Runner
	store   Counter
	cron    *cron.Cron
	running atomic.Bool
	wg      sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

func New(cfg Config, runner Runner, store Counter) *Scheduler {
	logger := slogLogger{log: slog.Default().With("component", "scheduler")}
	return &Scheduler{
		cfg:    cfg,
		runner: runner,
		store:  store,
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.ctx, s.cancel = context.WithCancel(ctx)

	spec := fmt.Sprintf("@every %s", s.cfg.Interval)
	if _, err := s.cron.AddFunc(spec, func() { s.RunOnce(false) }); err != nil {
		s.cancel()
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	s.cron.Start()
	slog.Info("Scheduler started", "schedule", spec, "keyword", s.cfg.Keyword)

	n, err := s.store.Count(ctx)
	if err != nil {
		slog.Error("Failed to count articles, skipping bootstrap run", "error", err)
		return nil
	}
	if n == 0 {
		slog.Info("Article store is empty, starting bootstrap run", "pages", s.cfg.InitialPages)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.RunOnce(true)
		}()
	}
	return nil
}

// RunOnce runs the pipeline unless a run is already in progress, and reports
// whether it ran. The bootstrap run samples InitialPages result pages.
func (s *Scheduler) RunOnce(bootstrap bool) bool {
	if !s.running.CompareAndSwap(false, true) {
		slog.Info("Ingestion already running, skipping", "bootstrap", bootstrap)
		return false
	}
	defer s.running.Store(false)

	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}

	pages := s.cfg.Pages
	if bootstrap {
		pages = s.cfg.InitialPages
	}

	report, err := s.runner.Run(ctx, ingest.RunOptions{
		Keyword: s.cfg.Keyword,
		Topic:   s.cfg.Topic,
		Pages:   pages,
	})
	if err != nil {
		slog.Error("Scheduled ingestion failed", "bootstrap", bootstrap, "error", err)
		return true
	}
	slog.Info("Scheduled ingestion finished",
		"bootstrap", bootstrap,
		"persisted", report.Count(ingest.StagePersisted),
		"duration", report.Duration)
	return true
}

// Stop cancels in-flight runs and waits for them until ctx expires.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.cancel != nil {
		s.cancel()
	}
	cronDone := s.cron.Stop()

	done := make(chan struct{})
	go func() {
		<-cronDone.Done()
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Scheduler stopped")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("scheduler stop: %w", ctx.Err())
	}
}
