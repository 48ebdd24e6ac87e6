package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuard(t *testing.T) (*ReplayGuard, *miniredis.Miniredis) {
	t.Helper()
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewReplayGuard(client), s
}

func TestReplayGuard_NewPayload(t *testing.T) {
	guard, s := newTestGuard(t)

	ok, err := guard.CheckAndSet(context.Background(), "GABC", "digest-1", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok, "new payload should return true")
	assert.True(t, s.Exists("wallet:relay:GABC:digest-1"))
}

func TestReplayGuard_Replay(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	ok, err := guard.CheckAndSet(ctx, "GABC", "digest-2", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = guard.CheckAndSet(ctx, "GABC", "digest-2", 10*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "replayed payload should return false")
}

func TestReplayGuard_DifferentAccounts(t *testing.T) {
	guard, _ := newTestGuard(t)
	ctx := context.Background()

	ok1, err := guard.CheckAndSet(ctx, "GAAA", "digest-3", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok1)

	ok2, err := guard.CheckAndSet(ctx, "GBBB", "digest-3", 10*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok2, "same payload for a different account should be accepted")
}

func TestReplayGuard_Expired(t *testing.T) {
	guard, s := newTestGuard(t)
	ctx := context.Background()

	ok, err := guard.CheckAndSet(ctx, "GABC", "digest-4", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	s.FastForward(2 * time.Second)

	ok, err = guard.CheckAndSet(ctx, "GABC", "digest-4", time.Second)
	require.NoError(t, err)
	assert.True(t, ok, "expired payload should be accepted again")
}
