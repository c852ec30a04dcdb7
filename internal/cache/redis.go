package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/oggyb/campus-connect/internal/config"
)

const likeCountTTL = time.Hour

type RedisCache struct {
	Client *redis.Client
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	return &RedisCache{Client: redis.NewClient(opts)}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return c.Client.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.Client.Get(ctx, key).Result()
}

func (c *RedisCache) Del(ctx context.Context, keys ...string) error {
	return c.Client.Del(ctx, keys...).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// --- like counters ---

// KeyForLikeCount generates Redis key for a user's like count
func (c *RedisCache) KeyForLikeCount(userID string) string {
	return fmt.Sprintf("likes:count:%s", userID)
}

// AdjustLikeCount moves a cached counter by delta. A missing key is left
// missing so the next read recomputes it from the database.
func (c *RedisCache) AdjustLikeCount(ctx context.Context, userID string, delta int64) error {
	key := c.KeyForLikeCount(userID)
	n, err := c.Client.Exists(ctx, key).Result()
	if err != nil || n == 0 {
		return err
	}
	if err := c.Client.IncrBy(ctx, key, delta).Err(); err != nil {
		return err
	}
	// Always refresh TTL when updating
	return c.Client.Expire(ctx, key, likeCountTTL).Err()
}

func (c *RedisCache) UpdateLikeCount(ctx context.Context, userID string, count int64) error {
	return c.Client.Set(ctx, c.KeyForLikeCount(userID), count, likeCountTTL).Err()
}

// GetLikeCount returns the cached count and whether it was present.
func (c *RedisCache) GetLikeCount(ctx context.Context, userID string) (int64, bool, error) {
	key := c.KeyForLikeCount(userID)
	val, err := c.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil || n < 0 {
		return 0, false, nil
	}
	// refresh TTL on access
	_ = c.Client.Expire(ctx, key, likeCountTTL).Err()
	return n, true, nil
}

// --- presence ---

func (c *RedisCache) KeyForPresence(userID string) string {
	return fmt.Sprintf("presence:%s", userID)
}

// TouchPresence marks the user online until ttl passes without another touch.
func (c *RedisCache) TouchPresence(ctx context.Context, userID string, at time.Time, ttl time.Duration) error {
	return c.Client.Set(ctx, c.KeyForPresence(userID), at.UnixMilli(), ttl).Err()
}

// LastSeen returns the last heartbeat time, or ok = false once it went stale.
func (c *RedisCache) LastSeen(ctx context.Context, userID string) (time.Time, bool, error) {
	val, err := c.Client.Get(ctx, c.KeyForPresence(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return time.Time{}, false, nil
	} else if err != nil {
		return time.Time{}, false, err
	}
	ms, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, nil
	}
	return time.UnixMilli(ms).UTC(), true, nil
}

// OnlineAmong returns the subset of ids with a live presence key.
func (c *RedisCache) OnlineAmong(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = c.KeyForPresence(id)
	}
	vals, err := c.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	var online []string
	for i, v := range vals {
		if v != nil {
			online = append(online, ids[i])
		}
	}
	return online, nil
}

func (c *RedisCache) EvictPresence(ctx context.Context, userID string) error {
	return c.Client.Del(ctx, c.KeyForPresence(userID)).Err()
}

// --- realtime fan-out ---

// ChannelForMatch is the pub/sub channel carrying new messages of a match.
func (c *RedisCache) ChannelForMatch(matchID string) string {
	return fmt.Sprintf("match:%s:messages", matchID)
}

func (c *RedisCache) Publish(ctx context.Context, channel string, payload []byte) error {
	return c.Client.Publish(ctx, channel, payload).Err()
}

// Subscribe opens a subscription and waits for Redis to confirm it, so no
// message published after Subscribe returns is missed.
func (c *RedisCache) Subscribe(ctx context.Context, channel string) (*redis.PubSub, error) {
	sub := c.Client.Subscribe(ctx, channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}
	return sub, nil
}
