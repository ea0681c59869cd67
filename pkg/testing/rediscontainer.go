package testing

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

type RedisContainer struct {
	Container testcontainers.Container
	Addr      string
}

// NewRedisContainer starts a throwaway redis server, skipping under -short or
// without a container runtime.
func NewRedisContainer(ctx context.Context, tb testing.TB) *RedisContainer {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping redis integration test in short mode")
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForLog("Ready to accept connections").WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		tb.Skipf("redis container unavailable: %v", err)
	}
	tb.Cleanup(func() {
		if err := testcontainers.TerminateContainer(container); err != nil {
			tb.Logf("failed to terminate redis container: %v", err)
		}
	})

	addr, err := container.Endpoint(ctx, "")
	if err != nil {
		tb.Fatalf("failed to get redis endpoint: %v", err)
	}

	return &RedisContainer{
		Container: container,
		Addr:      addr,
	}
}
