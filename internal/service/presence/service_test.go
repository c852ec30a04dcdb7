package presence_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/campus-connect/internal/auth"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
	"github.com/oggyb/campus-connect/internal/service/presence"
	"github.com/oggyb/campus-connect/internal/testutil"
)

func TestHeartbeat_GoesStaleAfterTTL(t *testing.T) {
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	svc := presence.NewService(env.App)
	ctx := context.Background()

	until, err := svc.Heartbeat(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, env.Clock.Now().Add(5*time.Minute), until)

	online, err := svc.IsOnline(ctx, "a")
	require.NoError(t, err)
	assert.True(t, online)

	env.Redis.FastForward(5*time.Minute + time.Second)
	online, err = svc.IsOnline(ctx, "a")
	require.NoError(t, err)
	assert.False(t, online)
}

func TestOnlineUsers_AndEvict(t *testing.T) {
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	svc := presence.NewService(env.App)
	srv := presence.NewServer(env.App, svc)

	_, err := srv.Heartbeat(auth.WithUser(context.Background(), "a"), &pb.HeartbeatRequest{})
	require.NoError(t, err)
	_, err = srv.Heartbeat(auth.WithUser(context.Background(), "c"), &pb.HeartbeatRequest{})
	require.NoError(t, err)

	resp, err := srv.Online(auth.WithUser(context.Background(), "b"), &pb.OnlineRequest{UserIds: []string{"a", "b", "c"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, resp.GetOnline())

	svc.Evict(context.Background(), "a")
	online, err := svc.OnlineUsers(context.Background(), []string{"a", "c"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, online)
}
