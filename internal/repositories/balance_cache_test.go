package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestBalanceCacheRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping redis container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "redis:7.0-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer redisC.Terminate(ctx)

	host, err := redisC.Host(ctx)
	require.NoError(t, err)
	port, err := redisC.MappedPort(ctx, "6379")
	require.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", host, port.Port()),
	})
	defer rdb.Close()

	require.NoError(t, rdb.Ping(ctx).Err())

	repo := NewBalanceCacheRepository(rdb, "main", 2*time.Second)

	t.Run("miss then hit", func(t *testing.T) {
		_, key, err := repo.Get(ctx, 1, 100, 200)
		require.ErrorIs(t, err, ErrCacheMiss)
		assert.Equal(t, "main:balance:1:0:100:200", key)

		require.NoError(t, repo.Set(ctx, key, -20))

		balance, _, err := repo.Get(ctx, 1, 100, 200)
		require.NoError(t, err)
		assert.Equal(t, int64(-20), balance)
	})

	t.Run("invalidate bumps version", func(t *testing.T) {
		require.NoError(t, repo.Invalidate(ctx, 1, 2))

		_, key, err := repo.Get(ctx, 1, 100, 200)
		assert.ErrorIs(t, err, ErrCacheMiss)
		assert.Equal(t, "main:balance:1:1:100:200", key)
	})

	t.Run("instances do not share entries", func(t *testing.T) {
		other := NewBalanceCacheRepository(rdb, "test", 2*time.Second)
		_, _, err := other.Get(ctx, 3, 100, 200)
		require.ErrorIs(t, err, ErrCacheMiss)

		_, key, _ := repo.Get(ctx, 3, 100, 200)
		require.NoError(t, repo.Set(ctx, key, 7))

		_, _, err = other.Get(ctx, 3, 100, 200)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("entries expire", func(t *testing.T) {
		_, key, _ := repo.Get(ctx, 4, 0, 10)
		require.NoError(t, repo.Set(ctx, key, 5))

		time.Sleep(3 * time.Second)

		_, _, err := repo.Get(ctx, 4, 0, 10)
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("invalidate nothing", func(t *testing.T) {
		assert.NoError(t, repo.Invalidate(ctx))
	})
}
