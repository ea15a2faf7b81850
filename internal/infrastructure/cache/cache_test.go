package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"vinai-server/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreWindow(t *testing.T) {
	s := NewMemoryStore()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }
	ctx := context.Background()

	ok, err := s.SetIfAbsent(ctx, "a", time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, _ = s.SetIfAbsent(ctx, "a", time.Second)
	assert.False(t, ok)

	ok, _ = s.SetIfAbsent(ctx, "b", time.Second)
	assert.True(t, ok)

	now = now.Add(time.Second)
	ok, _ = s.SetIfAbsent(ctx, "a", time.Second)
	assert.True(t, ok)
}

func TestMemoryStoreSweepsExpired(t *testing.T) {
	s := NewMemoryStore()
	now := time.Now()
	s.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < sweepThreshold; i++ {
		_, _ = s.SetIfAbsent(ctx, time.Duration(i).String(), time.Millisecond)
	}
	now = now.Add(time.Second)
	_, _ = s.SetIfAbsent(ctx, "nuevo", time.Second)
	assert.Len(t, s.entries, 1)
}

func TestNewFallsBackToMemory(t *testing.T) {
	s := New(config.RedisConfig{Enabled: false})
	_, ok := s.(*MemoryStore)
	assert.True(t, ok)

	s = New(config.RedisConfig{Enabled: true, Addr: "127.0.0.1:1"})
	_, ok = s.(*MemoryStore)
	assert.True(t, ok)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis integration tests")
	}
	s, err := NewRedisStore(config.RedisConfig{Addr: addr})
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	key := "test:" + time.Now().Format(time.RFC3339Nano)
	ok, err := s.SetIfAbsent(ctx, key, time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.SetIfAbsent(ctx, key, time.Second)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, s.Ping(ctx))
}
