package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-transfer-ledger/internal/logger"
)

// ErrCacheMiss is returned when no cached balance exists for the current version.
var ErrCacheMiss = errors.New("balance not found in cache")

// BalanceCacheRepository caches computed balances in Redis.
//
// Every user has a version counter. Cached entries embed the version they were
// computed under, and a recorded transfer bumps the version of both parties,
// so entries computed before the transfer are never read again.
type BalanceCacheRepository struct {
	client *redis.Client
	prefix string
	exp    time.Duration
}

// NewBalanceCacheRepository creates a cache whose keys are namespaced by prefix.
func NewBalanceCacheRepository(client *redis.Client, prefix string, expiration time.Duration) *BalanceCacheRepository {
	return &BalanceCacheRepository{
		client: client,
		prefix: prefix,
		exp:    expiration,
	}
}

func (r *BalanceCacheRepository) versionKey(user int64) string {
	return fmt.Sprintf("%s:balance_version:%d", r.prefix, user)
}

func (r *BalanceCacheRepository) version(ctx context.Context, user int64) (int64, error) {
	v, err := r.client.Get(ctx, r.versionKey(user)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

// Get returns the cached balance of user over [start, end) and the key under
// which a freshly computed balance should be stored. On ErrCacheMiss the key is
// set; on any other error it is empty and nothing should be cached.
func (r *BalanceCacheRepository) Get(ctx context.Context, user, start, end int64) (int64, string, error) {
	ver, err := r.version(ctx, user)
	if err != nil {
		logger.Log.Debugw("balance cache version", "user", user, "error", err)
		return 0, "", err
	}

	key := fmt.Sprintf("%s:balance:%d:%d:%d:%d", r.prefix, user, ver, start, end)
	balance, err := r.client.Get(ctx, key).Int64()

	logger.Log.Debugw("balance cache get", "key", key, "result", balance, "error", err)

	if errors.Is(err, redis.Nil) {
		return 0, key, ErrCacheMiss
	}
	if err != nil {
		return 0, "", err
	}
	return balance, key, nil
}

// Set stores a balance under a key obtained from Get.
func (r *BalanceCacheRepository) Set(ctx context.Context, key string, balance int64) error {
	err := r.client.Set(ctx, key, balance, r.exp).Err()

	logger.Log.Debugw("balance cache set", "key", key, "balance", balance, "error", err)

	return err
}

// Invalidate bumps the version counter of every given user in one MULTI/EXEC.
func (r *BalanceCacheRepository) Invalidate(ctx context.Context, users ...int64) error {
	if len(users) == 0 {
		return nil
	}

	pipe := r.client.TxPipeline()
	for _, u := range users {
		pipe.Incr(ctx, r.versionKey(u))
	}
	_, err := pipe.Exec(ctx)

	logger.Log.Debugw("balance cache invalidate", "users", users, "error", err)

	return err
}
