// Package presence tracks who is online through expiring Redis keys.
package presence

import (
	"context"
	"time"

	"github.com/oggyb/campus-connect/internal/app"
)

// Service is best effort: presence is allowed to vanish with Redis.
type Service struct {
	appCtx *app.AppContext
	ttl    time.Duration
}

func NewService(appCtx *app.AppContext) *Service {
	ttl := appCtx.Config.Presence.TTL
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Service{appCtx: appCtx, ttl: ttl}
}

// Heartbeat marks the user online and returns when that lapses.
func (s *Service) Heartbeat(ctx context.Context, userID string) (time.Time, error) {
	now := s.appCtx.Now()
	if err := s.appCtx.RedisCache.TouchPresence(ctx, userID, now, s.ttl); err != nil {
		return time.Time{}, err
	}
	return now.Add(s.ttl), nil
}

func (s *Service) IsOnline(ctx context.Context, userID string) (bool, error) {
	_, ok, err := s.appCtx.RedisCache.LastSeen(ctx, userID)
	return ok, err
}

// OnlineUsers filters ids down to those with a live heartbeat.
func (s *Service) OnlineUsers(ctx context.Context, ids []string) ([]string, error) {
	return s.appCtx.RedisCache.OnlineAmong(ctx, ids)
}

// Evict drops the user's presence right away, e.g. on ban.
func (s *Service) Evict(ctx context.Context, userID string) {
	if err := s.appCtx.RedisCache.EvictPresence(ctx, userID); err != nil {
		s.appCtx.Logger.Warn("presence eviction failed", "user_id", userID, "err", err)
	}
}
