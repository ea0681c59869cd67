package server

import "context"

// HealthChecker backs the /health endpoint.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker is used by backends without an external dependency.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(context.Context) bool {
	return true
}
