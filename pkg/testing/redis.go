package testing

import (
	"context"
	"net"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/require"
)

// GetRedisClientAndCtx connects to the redis of the test environment
// (FITCOACH_TEST_REDIS_HOST, FITCOACH_TEST_REDIS_PASS) and flushes the selected db
// when the test ends.
func GetRedisClientAndCtx(t *testing.T, db int) (context.Context, *redis.Client) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	redisHost := os.Getenv("FITCOACH_TEST_REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}
	t.Logf("using redis host: [%s]", redisHost)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(redisHost, "6379"),
		Password: os.Getenv("FITCOACH_TEST_REDIS_PASS"),
		DB:       db,
	})

	pingRes, err := rdb.Ping(ctx).Result()
	require.NoError(t, err)
	t.Logf("redis ping res: %s", pingRes)

	t.Cleanup(func() {
		if err := rdb.FlushDB(context.Background()).Err(); err != nil {
			t.Logf("flush redis db %d: %s", db, err)
		}
		if err := rdb.Close(); err != nil {
			t.Logf("close redis client: %s", err)
		}
	})

	return ctx, rdb
}
