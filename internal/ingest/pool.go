package ingest

import (
	"context"
	"log/slog"
	"sync"

	"github.com/DjordjeVuckovic/news-digest/internal/collector"
	"github.com/DjordjeVuckovic/news-digest/internal/domain"
)

const defaultWorkers = 4

// process fans snapshots out to workers and closes the returned channel once
// every worker is done. Completion order is unspecified.
func process(
	ctx context.Context,
	in <-chan collector.Result[domain.Snapshot],
	workers int,
	fn func(ctx context.Context, snap domain.Snapshot) Outcome,
) <-chan Outcome {
	if workers < 1 {
		workers = defaultWorkers
	}

	out := make(chan Outcome)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for res := range in {
				if res.Err != nil {
					slog.Error("Error collecting snapshot", "error", res.Err)
					continue
				}
				select {
				case out <- fn(ctx, res.Result):
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
