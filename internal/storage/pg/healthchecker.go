package pg

import (
	"context"
	"log/slog"
)

// HealthChecker reports the database as healthy while the pool answers pings.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{
		pool: pool,
	}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}
	if err := hc.pool.Ping(ctx); err != nil {
		slog.Warn("Database health check failed", "error", err)
		return false
	}
	return true
}
