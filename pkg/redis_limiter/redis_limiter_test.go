package redis_limiter

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestNewRedisLimiter_MinimumWindow(t *testing.T) {
	rl := NewRedisLimiter(unreachableClient(t), 5, "rl:", time.Millisecond, quietLogger())
	assert.Equal(t, time.Second, rl.window)
	assert.Equal(t, 5, rl.GetMaxRequests())
}

func TestAllow_FixedWindow(t *testing.T) {
	mr, client := newMiniredis(t)
	rl := NewRedisLimiter(client, 2, "rl:", time.Minute, quietLogger())
	ctx := context.Background()

	allowed, remaining, err := rl.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 1, remaining)
	assert.Equal(t, time.Minute, mr.TTL("rl:10.0.0.1"))

	allowed, remaining, err = rl.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, remaining, err = rl.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 0, remaining)

	allowed, _, err = rl.Allow(ctx, "10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed, "keys are counted separately")

	mr.FastForward(time.Minute)
	allowed, remaining, err = rl.Allow(ctx, "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed, "a new window starts after expiry")
	assert.Equal(t, 1, remaining)
}

func TestAllow_WindowNotExtendedByLaterRequests(t *testing.T) {
	mr, client := newMiniredis(t)
	rl := NewRedisLimiter(client, 10, "rl:", time.Minute, quietLogger())
	ctx := context.Background()

	_, _, err := rl.Allow(ctx, "k")
	require.NoError(t, err)
	mr.FastForward(40 * time.Second)
	_, _, err = rl.Allow(ctx, "k")
	require.NoError(t, err)

	assert.Equal(t, 20*time.Second, mr.TTL("rl:k"))
}

func TestAllow_ReportsConnectionErrors(t *testing.T) {
	rl := NewRedisLimiter(unreachableClient(t), 5, "rl:", time.Minute, quietLogger())

	allowed, remaining, err := rl.Allow(context.Background(), "10.0.0.1")
	require.Error(t, err)
	assert.False(t, allowed)
	assert.Zero(t, remaining)
}
