package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/campus-connect/internal/cache"
	"github.com/oggyb/campus-connect/internal/config"
)

func newCache(t *testing.T) (*cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := &config.Config{}
	cfg.Redis.Addr = mr.Addr()
	c := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestLikeCountOnlyAdjustsWarmKeys(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t)

	// cold key stays cold
	require.NoError(t, c.AdjustLikeCount(ctx, "u1", 1))
	_, ok, err := c.GetLikeCount(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.UpdateLikeCount(ctx, "u1", 4))
	require.NoError(t, c.AdjustLikeCount(ctx, "u1", -1))

	n, ok, err := c.GetLikeCount(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(3), n)
}

func TestPresenceGoesStaleAfterTTL(t *testing.T) {
	ctx := context.Background()
	c, mr := newCache(t)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, c.TouchPresence(ctx, "u1", now, time.Minute))
	require.NoError(t, c.TouchPresence(ctx, "u2", now, time.Hour))

	seen, ok, err := c.LastSeen(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, now, seen)

	mr.FastForward(2 * time.Minute)

	_, ok, err = c.LastSeen(ctx, "u1")
	require.NoError(t, err)
	assert.False(t, ok)

	online, err := c.OnlineAmong(ctx, []string{"u1", "u2", "u3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"u2"}, online)

	require.NoError(t, c.EvictPresence(ctx, "u2"))
	online, err = c.OnlineAmong(ctx, []string{"u2"})
	require.NoError(t, err)
	assert.Empty(t, online)
}

func TestPublishSubscribe(t *testing.T) {
	ctx := context.Background()
	c, _ := newCache(t)

	ch := c.ChannelForMatch("m1")
	sub, err := c.Subscribe(ctx, ch)
	require.NoError(t, err)
	defer sub.Close()

	require.NoError(t, c.Publish(ctx, ch, []byte(`{"id":1}`)))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, `{"id":1}`, msg.Payload)
	case <-time.After(2 * time.Second):
		t.Fatal("message not delivered")
	}
}
