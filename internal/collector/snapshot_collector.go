package collector

import (
	"context"
	"log/slog"

	"github.com/DjordjeVuckovic/news-digest/internal/domain"
	"github.com/DjordjeVuckovic/news-digest/internal/search"
)

// SnapshotCollector streams search hits for a keyword.
type SnapshotCollector struct {
	searcher search.Searcher
	keyword  string
	pages    int
}

func NewSnapshotCollector(s search.Searcher, keyword string, pages int) *SnapshotCollector {
	return &SnapshotCollector{
		searcher: s,
		keyword:  keyword,
		pages:    pages,
	}
}

// Collect fails up front when the search itself fails. Duplicate links within
// one search are emitted once.
func (sc *SnapshotCollector) Collect(ctx context.Context) (<-chan Result[domain.Snapshot], error) {
	snapshots, err := sc.searcher.Search(ctx, sc.keyword, sc.pages)
	if err != nil {
		return nil, err
	}

	out := make(chan Result[domain.Snapshot])
	go func() {
		defer close(out)

		seen := make(map[string]struct{}, len(snapshots))
		for _, s := range snapshots {
			if _, dup := seen[s.URL]; dup {
				slog.Debug("Skipping repeated search hit", "url", s.URL)
				continue
			}
			seen[s.URL] = struct{}{}

			select {
			case <-ctx.Done():
				slog.Info("Collector context cancelled, stopping collection", "keyword", sc.keyword)
				return
			case out <- Result[domain.Snapshot]{Result: s}:
			}
		}
	}()

	return out, nil
}
