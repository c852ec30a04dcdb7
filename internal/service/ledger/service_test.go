package ledger_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/auth"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
	"github.com/oggyb/campus-connect/internal/repository"
	"github.com/oggyb/campus-connect/internal/service/ledger"
	"github.com/oggyb/campus-connect/internal/testutil"
)

// setupService builds a ledger Service over a fresh SQLite DB and miniredis,
// with users a, b and c.
func setupService(t *testing.T) (*testutil.Env, *ledger.Service) {
	t.Helper()
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	testutil.Profiles(t, env.DB, "a", "b", "c")
	return env, ledger.NewService(env.App)
}

func countMatches(t *testing.T, env *testutil.Env) int64 {
	t.Helper()
	var n int64
	require.NoError(t, env.DB.Model(&db.Match{}).Count(&n).Error)
	return n
}

func TestLike_MutualCreatesOneMatch(t *testing.T) {
	env, svc := setupService(t)
	ctx := context.Background()

	res, err := svc.Like(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, res.Matched)

	res, err = svc.Like(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.NotEmpty(t, res.MatchID)

	var m db.Match
	require.NoError(t, env.DB.First(&m).Error)
	assert.Equal(t, "a", m.UserA)
	assert.Equal(t, "b", m.UserB)
	assert.Equal(t, db.OriginLike, m.Origin)
	assert.Equal(t, int64(1), countMatches(t, env))
}

func TestLike_ToggleUnlikes(t *testing.T) {
	env, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Like(ctx, "a", "b")
	require.NoError(t, err)
	res, err := svc.Like(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, res.Unliked)

	res, err = svc.Like(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, res.Matched)
	assert.Zero(t, countMatches(t, env))
}

func TestLike_ConcurrentReciprocalLikes(t *testing.T) {
	env, svc := setupService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		var wg sync.WaitGroup
		for _, pair := range [][2]string{{"a", "b"}, {"b", "a"}} {
			wg.Add(1)
			go func(actor, target string) {
				defer wg.Done()
				_, err := svc.Like(ctx, actor, target)
				assert.NoError(t, err)
			}(pair[0], pair[1])
		}
		wg.Wait()

		assert.Equal(t, int64(1), countMatches(t, env))
		require.NoError(t, env.DB.Exec("DELETE FROM matches").Error)
		require.NoError(t, env.DB.Exec("DELETE FROM likes").Error)
	}
}

func TestLike_RejectsSelfAndUnknown(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Like(ctx, "a", "a")
	assert.Equal(t, svcErr.KindInvalidArgument, svcErr.KindOf(err))

	_, err = svc.Like(ctx, "a", "ghost")
	assert.ErrorIs(t, err, svcErr.ErrUserNotFound)
}

func TestLike_AfterBlockAndRemoveFriendStartsFresh(t *testing.T) {
	env, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Like(ctx, "a", "b")
	require.NoError(t, err)
	_, err = svc.Like(ctx, "b", "a")
	require.NoError(t, err)
	require.NoError(t, svc.Block(ctx, "a", "b"))
	require.NoError(t, svc.RemoveFriend(ctx, "a", "b"))

	res, err := svc.Like(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, res.Unliked)
	assert.False(t, res.Matched)
	assert.Zero(t, countMatches(t, env))

	liked, err := repository.NewLikeRepository(env.DB).HasLiked(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestFriendRequest_Lifecycle(t *testing.T) {
	env, svc := setupService(t)
	ctx := context.Background()

	fr, err := svc.SendFriendRequest(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, db.FriendRequestPending, fr.Status)

	_, err = svc.SendFriendRequest(ctx, "a", "b")
	assert.ErrorIs(t, err, svcErr.ErrAlreadyRequested)

	_, err = svc.AcceptFriendRequest(ctx, "a", fr.ID)
	assert.ErrorIs(t, err, svcErr.ErrForbidden)

	res, err := svc.AcceptFriendRequest(ctx, "b", fr.ID)
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.False(t, res.AlreadyMatched)

	again, err := svc.AcceptFriendRequest(ctx, "b", fr.ID)
	require.NoError(t, err)
	assert.True(t, again.AlreadyMatched)
	assert.Equal(t, res.MatchID, again.MatchID)
	assert.Equal(t, int64(1), countMatches(t, env))

	_, err = svc.SendFriendRequest(ctx, "b", "a")
	assert.ErrorIs(t, err, svcErr.ErrAlreadyFriends)
}

func TestFriendRequest_AcceptLosesToConcurrentReject(t *testing.T) {
	env, svc := setupService(t)
	ctx := context.Background()

	fr, err := svc.SendFriendRequest(ctx, "a", "b")
	require.NoError(t, err)

	// a reject commits between the accept's read and its status update
	require.NoError(t, env.DB.Callback().Update().Before("gorm:update").Register("test:reject_first", func(tx *gorm.DB) {
		if tx.Statement.Table != "friend_requests" {
			return
		}
		tx.Session(&gorm.Session{NewDB: true}).
			Exec("UPDATE friend_requests SET status = ? WHERE id = ?", db.FriendRequestRejected, fr.ID)
	}))

	_, err = svc.AcceptFriendRequest(ctx, "b", fr.ID)
	assert.ErrorIs(t, err, svcErr.ErrRequestClosed)
	assert.Zero(t, countMatches(t, env))
}

func TestFriendRequest_AcceptWhenAlreadyMatchedByLikes(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	fr, err := svc.SendFriendRequest(ctx, "a", "b")
	require.NoError(t, err)

	_, err = svc.Like(ctx, "a", "b")
	require.NoError(t, err)
	liked, err := svc.Like(ctx, "b", "a")
	require.NoError(t, err)
	require.True(t, liked.Matched)

	res, err := svc.AcceptFriendRequest(ctx, "b", fr.ID)
	require.NoError(t, err)
	assert.True(t, res.AlreadyMatched)
	assert.Equal(t, liked.MatchID, res.MatchID)
}

func TestFriendRequest_RejectAndResend(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	fr, err := svc.SendFriendRequest(ctx, "a", "b")
	require.NoError(t, err)
	require.NoError(t, svc.RejectFriendRequest(ctx, "b", fr.ID))
	require.NoError(t, svc.RejectFriendRequest(ctx, "b", fr.ID))

	_, err = svc.AcceptFriendRequest(ctx, "b", fr.ID)
	assert.ErrorIs(t, err, svcErr.ErrRequestClosed)

	reopened, err := svc.SendFriendRequest(ctx, "a", "b")
	require.NoError(t, err)
	assert.Equal(t, fr.ID, reopened.ID)
	assert.Equal(t, db.FriendRequestPending, reopened.Status)

	incoming, err := svc.ListFriendRequests(ctx, "b", false)
	require.NoError(t, err)
	require.Len(t, incoming, 1)
	outgoing, err := svc.ListFriendRequests(ctx, "a", true)
	require.NoError(t, err)
	require.Len(t, outgoing, 1)
}

func TestFriendRequest_Blocked(t *testing.T) {
	env, svc := setupService(t)
	require.NoError(t, env.DB.Create(&db.Block{BlockerID: "b", BlockedID: "a"}).Error)

	_, err := svc.SendFriendRequest(context.Background(), "a", "b")
	assert.ErrorIs(t, err, svcErr.ErrBlocked)
}

func TestFriendRequest_UnknownRequest(t *testing.T) {
	_, svc := setupService(t)
	_, err := svc.AcceptFriendRequest(context.Background(), "b", "missing")
	assert.ErrorIs(t, err, svcErr.ErrRequestNotFound)
}

func TestRemoveFriend_ResetsPairToStrangers(t *testing.T) {
	env, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Like(ctx, "a", "b")
	require.NoError(t, err)
	_, err = svc.Like(ctx, "b", "a")
	require.NoError(t, err)
	_, err = svc.SendFriendRequest(ctx, "c", "a")
	require.NoError(t, err)
	_, err = repository.NewMessageRepository(env.DB).Create(ctx, "a", "b", "hi")
	require.NoError(t, err)

	require.NoError(t, svc.RemoveFriend(ctx, "a", "b"))
	require.NoError(t, svc.RemoveFriend(ctx, "a", "b"))

	assert.Zero(t, countMatches(t, env))
	msgs, err := repository.NewMessageRepository(env.DB).ListByPair(ctx, "a", "b")
	require.NoError(t, err)
	assert.Empty(t, msgs)

	// unrelated request survives
	incoming, err := svc.ListFriendRequests(ctx, "a", false)
	require.NoError(t, err)
	assert.Len(t, incoming, 1)

	// a fresh like behaves as a first contact
	res, err := svc.Like(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, res.Unliked)
	assert.False(t, res.Matched)
}

func TestBlock_DeletesLikesKeepsMatch(t *testing.T) {
	env, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Like(ctx, "a", "b")
	require.NoError(t, err)
	_, err = svc.Like(ctx, "b", "a")
	require.NoError(t, err)

	require.NoError(t, svc.Block(ctx, "a", "b"))

	var likes int64
	require.NoError(t, env.DB.Model(&db.Like{}).Count(&likes).Error)
	assert.Zero(t, likes)
	assert.Equal(t, int64(1), countMatches(t, env))

	blocked, err := svc.ListBlocked(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, blocked)

	require.NoError(t, svc.Unblock(ctx, "a", "b"))
	require.NoError(t, env.DB.Model(&db.Like{}).Count(&likes).Error)
	assert.Zero(t, likes)
}

func TestCountLikedYou_CacheFirst(t *testing.T) {
	env, svc := setupService(t)
	ctx := context.Background()

	_, err := svc.Like(ctx, "b", "a")
	require.NoError(t, err)

	n, err := svc.CountLikedYou(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.True(t, env.Redis.Exists("likes:count:a"))

	// rows written behind the service's back are not seen until the key goes
	require.NoError(t, env.DB.Create(&db.Like{LikerID: "c", LikedID: "a"}).Error)
	n, err = svc.CountLikedYou(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// likes through the service move the cached counter
	_, err = svc.Like(ctx, "b", "a")
	require.NoError(t, err)
	n, err = svc.CountLikedYou(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	env.Redis.Del("likes:count:a")
	n, err = svc.CountLikedYou(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestServer_ListLikedYouPaginates(t *testing.T) {
	env, svc := setupService(t)
	srv := ledger.NewServer(env.App, svc)

	var ids []string
	for i := 0; i < 25; i++ {
		id := string(rune('A'+i)) + "-liker"
		ids = append(ids, id)
	}
	testutil.Profiles(t, env.DB, ids...)
	for _, id := range ids {
		_, err := svc.Like(context.Background(), id, "a")
		require.NoError(t, err)
		env.Clock.Advance(time.Second)
	}

	ctx := auth.WithUser(context.Background(), "a")
	first, err := srv.ListLikedYou(ctx, &pb.ListLikedYouRequest{})
	require.NoError(t, err)
	require.Len(t, first.Likers, 20)
	require.NotNil(t, first.NextPaginationToken)
	assert.Equal(t, ids[24], first.GetLikers()[0].GetUserId())

	second, err := srv.ListLikedYou(ctx, &pb.ListLikedYouRequest{PaginationToken: first.NextPaginationToken})
	require.NoError(t, err)
	require.Len(t, second.Likers, 5)
	assert.Nil(t, second.NextPaginationToken)
	assert.Equal(t, ids[0], second.GetLikers()[4].GetUserId())

	bad := "%%%"
	_, err = srv.ListLikedYou(ctx, &pb.ListLikedYouRequest{PaginationToken: &bad})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_RequiresCallerAndValidTarget(t *testing.T) {
	env, svc := setupService(t)
	srv := ledger.NewServer(env.App, svc)

	_, err := srv.Like(context.Background(), &pb.TargetRequest{TargetUserId: "b"})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))

	_, err = srv.Like(auth.WithUser(context.Background(), "a"), &pb.TargetRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := srv.Like(auth.WithUser(context.Background(), "a"), &pb.TargetRequest{TargetUserId: "b"})
	require.NoError(t, err)
	assert.False(t, resp.GetMatched())

	_, err = srv.SendFriendRequest(auth.WithUser(context.Background(), "a"), &pb.TargetRequest{TargetUserId: "a"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestServer_ListMatchesShowsCounterpart(t *testing.T) {
	env, svc := setupService(t)
	srv := ledger.NewServer(env.App, svc)
	ctx := context.Background()

	_, err := svc.Like(ctx, "c", "b")
	require.NoError(t, err)
	_, err = svc.Like(ctx, "b", "c")
	require.NoError(t, err)

	resp, err := srv.ListMatches(auth.WithUser(ctx, "c"), &pb.ListMatchesRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Matches, 1)
	assert.Equal(t, "b", resp.GetMatches()[0].GetUserId())
	assert.Equal(t, "like", resp.GetMatches()[0].GetOrigin())
}
