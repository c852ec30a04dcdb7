package messaging_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/campus-connect/internal/auth"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
	"github.com/oggyb/campus-connect/internal/repository"
	"github.com/oggyb/campus-connect/internal/service/dice"
	"github.com/oggyb/campus-connect/internal/service/messaging"
	"github.com/oggyb/campus-connect/internal/testutil"
)

type recordingMarker struct {
	mu    sync.Mutex
	pairs [][2]string
}

func (r *recordingMarker) ExpireLapsed(context.Context, string, string) (bool, error) {
	return false, nil
}

func (r *recordingMarker) MarkChatted(_ context.Context, a, b string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pairs = append(r.pairs, [2]string{a, b})
	return true, nil
}

func setupService(t *testing.T) (*testutil.Env, *messaging.Service, *recordingMarker, *db.Match) {
	t.Helper()
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	testutil.Profiles(t, env.DB, "a", "b", "c")

	m, _, err := repository.NewMatchRepository(env.DB).CreateCanonical(context.Background(), "b", "a", db.OriginLike)
	require.NoError(t, err)

	marker := &recordingMarker{}
	return env, messaging.NewService(env.App, marker), marker, m
}

func TestSend_AppendsInOrder(t *testing.T) {
	env, svc, marker, m := setupService(t)
	ctx := context.Background()

	for _, body := range []string{"hi", "hey", "how are you"} {
		_, err := svc.Send(ctx, m.ID, "a", body)
		require.NoError(t, err)
	}
	env.Clock.Advance(time.Second)
	reply, err := svc.Send(ctx, m.ID, "b", "good")
	require.NoError(t, err)
	assert.Equal(t, "a", reply.ReceiverID)

	msgs, err := svc.List(ctx, m.ID, "b")
	require.NoError(t, err)
	require.Len(t, msgs, 4)
	var bodies []string
	for _, msg := range msgs {
		bodies = append(bodies, msg.Body)
	}
	assert.Equal(t, []string{"hi", "hey", "how are you", "good"}, bodies)
	assert.Len(t, marker.pairs, 4)
	assert.Equal(t, [2]string{"a", "b"}, marker.pairs[0])
}

func TestSend_RefusedWhenBlockedEitherWay(t *testing.T) {
	for _, block := range []db.Block{{BlockerID: "a", BlockedID: "b"}, {BlockerID: "b", BlockedID: "a"}} {
		t.Run(block.BlockerID+"_blocks_"+block.BlockedID, func(t *testing.T) {
			env, svc, marker, m := setupService(t)
			require.NoError(t, env.DB.Create(&block).Error)

			_, err := svc.Send(context.Background(), m.ID, "a", "hello")
			assert.ErrorIs(t, err, svcErr.ErrBlocked)
			assert.Equal(t, svcErr.KindForbidden, svcErr.KindOf(err))
			assert.Empty(t, marker.pairs)
		})
	}
}

func TestSend_Preconditions(t *testing.T) {
	env, svc, _, m := setupService(t)
	ctx := context.Background()

	_, err := svc.Send(ctx, "missing", "a", "hello")
	assert.ErrorIs(t, err, svcErr.ErrMatchNotFound)

	_, err = svc.Send(ctx, m.ID, "c", "hello")
	assert.ErrorIs(t, err, svcErr.ErrForbidden)

	_, err = svc.Send(ctx, m.ID, "a", "   ")
	assert.Equal(t, svcErr.KindInvalidArgument, svcErr.KindOf(err))

	require.NoError(t, env.DB.Create(&db.Ban{ID: "ban-b", UserID: "b", Reason: "spam"}).Error)
	_, err = svc.Send(ctx, m.ID, "a", "hello")
	assert.ErrorIs(t, err, svcErr.ErrBanned)
}

func TestList_OnlyParticipants(t *testing.T) {
	_, svc, _, m := setupService(t)
	_, err := svc.List(context.Background(), m.ID, "c")
	assert.ErrorIs(t, err, svcErr.ErrForbidden)
}

func TestSend_MarksDiceMatchChatted(t *testing.T) {
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	testutil.Profiles(t, env.DB, "a", "b")
	ctx := context.Background()

	diceSvc := dice.NewService(env.App, dice.WithRoller(func() int { return 3 }))
	_, _, err := diceSvc.Roll(ctx, "a")
	require.NoError(t, err)
	_, _, err = diceSvc.Roll(ctx, "b")
	require.NoError(t, err)
	dm, err := diceSvc.Select(ctx, "a", "b")
	require.NoError(t, err)

	svc := messaging.NewService(env.App, diceSvc)
	_, err = svc.Send(ctx, dm.MatchID, "b", "nice roll")
	require.NoError(t, err)

	env.Clock.Advance(30 * time.Hour)
	n, err := diceSvc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	msgs, err := svc.List(ctx, dm.MatchID, "a")
	require.NoError(t, err)
	assert.Len(t, msgs, 1)
}

func TestSend_AfterDiceWindowExpiresMatch(t *testing.T) {
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	testutil.Profiles(t, env.DB, "a", "b")
	ctx := context.Background()

	diceSvc := dice.NewService(env.App, dice.WithRoller(func() int { return 3 }))
	_, _, err := diceSvc.Roll(ctx, "a")
	require.NoError(t, err)
	_, _, err = diceSvc.Roll(ctx, "b")
	require.NoError(t, err)
	dm, err := diceSvc.Select(ctx, "a", "b")
	require.NoError(t, err)

	env.Clock.Advance(25 * time.Hour)
	svc := messaging.NewService(env.App, diceSvc)
	_, err = svc.Send(ctx, dm.MatchID, "b", "still there?")
	assert.ErrorIs(t, err, svcErr.ErrMatchNotFound)

	exists, err := repository.NewMatchRepository(env.DB).Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, exists)

	var stored db.DiceMatch
	require.NoError(t, env.DB.First(&stored, "id = ?", dm.ID).Error)
	assert.False(t, stored.Active)

	n, err := diceSvc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSubscribe_ReceivesNewMessages(t *testing.T) {
	env, svc, _, m := setupService(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan *pb.Message, 1)
	errc := make(chan error, 1)
	go func() {
		errc <- svc.Subscribe(ctx, m.ID, "b", func(msg *pb.Message) error {
			got <- msg
			return nil
		})
	}()

	channel := env.App.RedisCache.ChannelForMatch(m.ID)
	require.Eventually(t, func() bool {
		return env.Redis.PubSubNumSub(channel)[channel] > 0
	}, time.Second, 10*time.Millisecond)

	sent, err := svc.Send(context.Background(), m.ID, "a", "ping")
	require.NoError(t, err)

	select {
	case msg := <-got:
		assert.Equal(t, sent.ID, msg.GetId())
		assert.Equal(t, "ping", msg.GetBody())
		assert.Equal(t, m.ID, msg.GetMatchId())
	case <-time.After(2 * time.Second):
		t.Fatal("no realtime message")
	}

	cancel()
	select {
	case err := <-errc:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not end")
	}
}

func TestSubscribe_RejectsOutsiders(t *testing.T) {
	_, svc, _, m := setupService(t)
	err := svc.Subscribe(context.Background(), m.ID, "c", func(*pb.Message) error { return nil })
	assert.ErrorIs(t, err, svcErr.ErrForbidden)
}

func TestServer_SendMessageValidation(t *testing.T) {
	env, svc, _, m := setupService(t)
	srv := messaging.NewServer(env.App, svc)
	ctx := auth.WithUser(context.Background(), "a")

	_, err := srv.SendMessage(ctx, &pb.SendMessageRequest{MatchId: m.ID, Body: ""})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := srv.SendMessage(ctx, &pb.SendMessageRequest{MatchId: m.ID, Body: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "b", resp.GetMessage().GetReceiverId())

	require.NoError(t, env.DB.Create(&db.Block{BlockerID: "b", BlockedID: "a"}).Error)
	_, err = srv.SendMessage(ctx, &pb.SendMessageRequest{MatchId: m.ID, Body: "hello?"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.Equal(t, "BLOCKED", svcErr.Reason(err))

	list, err := srv.ListMessages(ctx, &pb.MatchRequest{MatchId: m.ID})
	require.NoError(t, err)
	assert.Len(t, list.GetMessages(), 1)
}
