package factory

import (
	"context"
	"fmt"

	"github.com/DjordjeVuckovic/news-digest/internal/storage"
	"github.com/DjordjeVuckovic/news-digest/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/news-digest/internal/storage/pg"
	"github.com/DjordjeVuckovic/news-digest/pkg/server"
)

// Stores bundles the stores of one backend with its lifecycle.
type Stores struct {
	Articles storage.ArticleStore
	Users    storage.UserStore
	Upvotes  storage.UpvoteStore
	Health   server.HealthChecker
	Close    func()
}

func NewStores(ctx context.Context, cfg *StorageConfig) (*Stores, error) {
	switch cfg.Type {
	case storage.PG:
		if cfg.Pg == nil {
			return nil, fmt.Errorf("missing PostgreSQL configuration")
		}
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}
		return &Stores{
			Articles: pg.NewArticleStore(pool),
			Users:    pg.NewUserStore(pool),
			Upvotes:  pg.NewUpvoteStore(pool),
			Health:   pg.NewHealthChecker(pool),
			Close:    pool.Close,
		}, nil

	case storage.InMem:
		return &Stores{
			Articles: in_mem.NewArticleStore(),
			Users:    in_mem.NewUserStore(),
			Upvotes:  in_mem.NewUpvoteStore(),
			Health:   server.NewOkHealthChecker(),
			Close:    func() {},
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
