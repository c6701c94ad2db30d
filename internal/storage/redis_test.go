package storage

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/courtside/pkg/chat"
	"github.com/jwebster45206/courtside/pkg/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelError, // Reduce noise in tests
	}))
}

func newTestStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store := NewRedisStore(mr.Addr(), 24*time.Hour, testLogger())
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisStore_SaveLoad(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	s := session.New()
	s.LastPlayer = "LeBron James"
	s.LastSeason = "2019-20"
	s.Append(chat.ChatRoleUser, "LeBron James points 2020")
	s.Append(chat.ChatRoleAgent, "LeBron James averaged 25.3 PPG in the 2019-20 season.")

	require.NoError(t, store.SaveSession(ctx, s))

	loaded, err := store.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, s.ID, loaded.ID)
	assert.Equal(t, "LeBron James", loaded.LastPlayer)
	assert.Equal(t, "2019-20", loaded.LastSeason)
	require.Len(t, loaded.ChatHistory, 2)
	assert.Equal(t, chat.ChatRoleAgent, loaded.ChatHistory[1].Role)
}

func TestRedisStore_LoadMissing(t *testing.T) {
	store, _ := newTestStore(t)

	loaded, err := store.LoadSession(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	s := session.New()
	require.NoError(t, store.SaveSession(ctx, s))
	require.NoError(t, store.DeleteSession(ctx, s.ID))

	loaded, err := store.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisStore_SaveRefreshesUpdatedAt(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	s := session.New()
	before := s.UpdatedAt
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, store.SaveSession(ctx, s))
	assert.True(t, s.UpdatedAt.After(before))
}

func TestRedisStore_TTLExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	store := NewRedisStore(mr.Addr(), time.Hour, testLogger())
	t.Cleanup(func() { _ = store.Close() })
	ctx := context.Background()

	s := session.New()
	require.NoError(t, store.SaveSession(ctx, s))
	mr.FastForward(2 * time.Hour)

	loaded, err := store.LoadSession(ctx, s.ID)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}
