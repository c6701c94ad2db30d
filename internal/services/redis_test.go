package services

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*RedisService, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	svc := NewRedisService(mr.Addr(), testLogger())
	t.Cleanup(func() { _ = svc.Close() })
	return svc, mr
}

func TestRedisService_SetGet(t *testing.T) {
	svc, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, svc.Ping(ctx))
	require.NoError(t, svc.Set(ctx, "stats:roster", `[{"id":"2544"}]`, time.Minute))

	val, err := svc.Get(ctx, "stats:roster")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"2544"}]`, val)
}

func TestRedisService_GetMissing(t *testing.T) {
	svc, _ := newTestCache(t)

	val, err := svc.Get(context.Background(), "stats:nope")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestRedisService_Del(t *testing.T) {
	svc, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "k1", "v1", 0))
	require.NoError(t, svc.Set(ctx, "k2", "v2", 0))
	require.NoError(t, svc.Del(ctx, "k1", "k2"))

	val, err := svc.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestRedisService_Expiration(t *testing.T) {
	svc, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "ttl-key", "v", time.Minute))
	mr.FastForward(2 * time.Minute)

	val, err := svc.Get(ctx, "ttl-key")
	require.NoError(t, err)
	assert.Empty(t, val)
}

func TestRedisService_PingFailure(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	svc := NewRedisService(mr.Addr(), testLogger())
	mr.Close()

	assert.Error(t, svc.Ping(context.Background()))
}
