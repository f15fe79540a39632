package themestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupRedis starts a Redis container and returns its URL.
func setupRedis(tb testing.TB) string {
	tb.Helper()
	if testing.Short() {
		tb.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0.5",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		tb.Skipf("redis container unavailable: %v", err)
	}
	tb.Cleanup(func() { _ = container.Terminate(ctx) })

	port, err := container.MappedPort(ctx, "6379")
	require.NoError(tb, err)
	host, err := container.Host(ctx)
	require.NoError(tb, err)

	return "redis://" + host + ":" + port.Port()
}

func TestRedis(t *testing.T) {
	url := setupRedis(t)

	s, closeFn, err := Open(context.Background(), Options{Kind: KindRedis, RedisURL: url}, nil)
	require.NoError(t, err)
	defer closeFn() //nolint:errcheck

	exerciseStore(t, s)
}
