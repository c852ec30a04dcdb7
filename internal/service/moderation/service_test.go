package moderation_test

import (
	"context"
	"errors"
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
	"github.com/oggyb/campus-connect/internal/service/moderation"
	"github.com/oggyb/campus-connect/internal/service/presence"
	"github.com/oggyb/campus-connect/internal/testutil"
)

const operatorPassword = "correct horse"

type fakeRevoker struct {
	revoked []string
	err     error
}

func (f *fakeRevoker) Revoke(_ context.Context, id string) error {
	f.revoked = append(f.revoked, id)
	return f.err
}

func setup(t *testing.T) (*testutil.Env, *moderation.Service, *fakeRevoker) {
	t.Helper()
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	hash, err := auth.HashOperatorPassword(operatorPassword)
	require.NoError(t, err)
	env.App.Config.Auth.OperatorPasswordHash = hash

	testutil.Profiles(t, env.DB, "a", "b", "c")
	revoker := &fakeRevoker{}
	return env, moderation.NewService(env.App, revoker), revoker
}

func TestWarn_EscalatesToAutoBan(t *testing.T) {
	env, svc, _ := setup(t)
	ctx := context.Background()

	for i := 1; i <= 2; i++ {
		res, err := svc.Warn(ctx, "a", "spam")
		require.NoError(t, err)
		assert.Equal(t, int64(i), res.Count)
		assert.Empty(t, res.Message)
	}

	last, err := svc.Warn(ctx, "a", "spam")
	require.NoError(t, err)
	assert.False(t, last.AutoBanned)
	assert.Contains(t, last.Message, "3 warnings")

	_, err = svc.Warn(ctx, "a", "spam")
	require.NoError(t, err)

	last, err = svc.Warn(ctx, "a", "spam")
	require.NoError(t, err)
	assert.Equal(t, int64(5), last.Count)
	assert.True(t, last.AutoBanned)

	ban, err := repository.NewModerationRepository(env.DB).FindBan(ctx, "a")
	require.NoError(t, err)
	require.NotNil(t, ban)
	assert.True(t, ban.Permanent)
	assert.Equal(t, "a@institution.domain", ban.Email)
	assert.Equal(t, "system", ban.BannedBy)

	last, err = svc.Warn(ctx, "a", "spam")
	require.NoError(t, err)
	assert.Equal(t, int64(6), last.Count)
	assert.False(t, last.AutoBanned, "only the warning that creates the ban reports it")
}

func TestWarn_CountsResolvedWarnings(t *testing.T) {
	env, svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Warn(ctx, "b", "rude")
	require.NoError(t, err)
	ws, err := svc.ListWarnings(ctx, "b")
	require.NoError(t, err)
	require.Len(t, ws, 1)

	_, err = repository.NewModerationRepository(env.DB).ResolveWarning(ctx, "b", ws[0].ID)
	require.NoError(t, err)

	res, err := svc.Warn(ctx, "b", "rude again")
	require.NoError(t, err)
	assert.Equal(t, int64(2), res.Count)
}

func TestWarn_UnknownUser(t *testing.T) {
	_, svc, _ := setup(t)
	_, err := svc.Warn(context.Background(), "ghost", "spam")
	assert.ErrorIs(t, err, svcErr.ErrUserNotFound)
}

func TestBanAndUnban(t *testing.T) {
	env, svc, _ := setup(t)
	ctx := context.Background()
	presenceSvc := presence.NewService(env.App)

	_, err := presenceSvc.Heartbeat(ctx, "b")
	require.NoError(t, err)

	require.NoError(t, svc.Ban(ctx, "b", "harassment", "ops", false))
	assert.ErrorIs(t, svc.Ban(ctx, "b", "again", "ops", true), svcErr.ErrAlreadyBanned)

	online, err := presenceSvc.IsOnline(ctx, "b")
	require.NoError(t, err)
	assert.False(t, online, "ban evicts presence")

	repo := repository.NewModerationRepository(env.DB)
	blacklisted, err := repo.IsEmailBlacklisted(ctx, "b@institution.domain")
	require.NoError(t, err)
	assert.False(t, blacklisted, "temporary ban keeps the email usable")

	require.NoError(t, svc.Unban(ctx, "b"))
	assert.ErrorIs(t, svc.Unban(ctx, "b"), svcErr.ErrNotBanned)

	require.NoError(t, svc.Ban(ctx, "b", "harassment", "ops", true))
	blacklisted, err = repo.IsEmailBlacklisted(ctx, "b@institution.domain")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func seedGraph(t *testing.T, env *testutil.Env) {
	t.Helper()
	ctx := context.Background()
	likes := repository.NewLikeRepository(env.DB)
	_, err := likes.Create(ctx, "a", "b")
	require.NoError(t, err)
	_, err = likes.Create(ctx, "c", "a")
	require.NoError(t, err)
	_, _, err = repository.NewMatchRepository(env.DB).CreateCanonical(ctx, "a", "b", db.OriginLike)
	require.NoError(t, err)
	_, err = repository.NewMessageRepository(env.DB).Create(ctx, "a", "b", "hello")
	require.NoError(t, err)
	_, err = repository.NewBlockRepository(env.DB).Create(ctx, "c", "a")
	require.NoError(t, err)
	_, err = repository.NewFriendRequestRepository(env.DB).Create(ctx, "a", "c")
	require.NoError(t, err)
	_, err = repository.NewModerationRepository(env.DB).CreateWarning(ctx, "a", "spam")
	require.NoError(t, err)
}

func TestDeleteUser_PurgesGraphAndBlacklists(t *testing.T) {
	env, svc, revoker := setup(t)
	ctx := context.Background()
	ext := "ext-a"
	require.NoError(t, env.DB.Model(&db.Profile{}).Where("id = ?", "a").Update("external_id", ext).Error)
	seedGraph(t, env)
	require.NoError(t, env.App.RedisCache.UpdateLikeCount(ctx, "b", 1))

	res, err := svc.DeleteUser(ctx, "a", operatorPassword, "ops")
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	assert.True(t, res.IdentityRevoked)
	assert.Equal(t, []string{ext}, revoker.revoked)

	for _, model := range []any{&db.Like{}, &db.Match{}, &db.Message{}, &db.Block{}, &db.FriendRequest{}, &db.Warning{}} {
		var n int64
		require.NoError(t, env.DB.Model(model).Count(&n).Error)
		assert.Zero(t, n, "%T rows left", model)
	}
	var profiles int64
	require.NoError(t, env.DB.Model(&db.Profile{}).Where("id = ?", "a").Count(&profiles).Error)
	assert.Zero(t, profiles)

	blacklisted, err := repository.NewModerationRepository(env.DB).IsEmailBlacklisted(ctx, "a@institution.domain")
	require.NoError(t, err)
	assert.True(t, blacklisted)

	assert.False(t, env.Redis.Exists(env.App.RedisCache.KeyForLikeCount("b")))

	_, err = svc.DeleteUser(ctx, "a", operatorPassword, "ops")
	assert.ErrorIs(t, err, svcErr.ErrUserNotFound)
}

func TestDeleteUser_WrongPasswordKeepsEverything(t *testing.T) {
	env, svc, revoker := setup(t)
	seedGraph(t, env)

	_, err := svc.DeleteUser(context.Background(), "a", "nope", "ops")
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", svcErr.Reason(svcErr.Map(err)))
	assert.Empty(t, revoker.revoked)

	var likes int64
	require.NoError(t, env.DB.Model(&db.Like{}).Count(&likes).Error)
	assert.Equal(t, int64(2), likes)
}

func TestDeleteUser_RevocationFailureStillDeletes(t *testing.T) {
	env, svc, revoker := setup(t)
	revoker.err = errors.New("provider down")
	require.NoError(t, env.DB.Model(&db.Profile{}).Where("id = ?", "b").Update("external_id", "ext-b").Error)

	res, err := svc.DeleteUser(context.Background(), "b", operatorPassword, "ops")
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	assert.False(t, res.IdentityRevoked)
}

func TestDeleteUser_WithoutExternalIdentitySkipsRevoke(t *testing.T) {
	_, svc, revoker := setup(t)

	res, err := svc.DeleteUser(context.Background(), "c", operatorPassword, "ops")
	require.NoError(t, err)
	assert.True(t, res.Deleted)
	assert.False(t, res.IdentityRevoked)
	assert.Empty(t, revoker.revoked)
}

func TestServer_RequiresOperator(t *testing.T) {
	env, svc, _ := setup(t)
	srv := moderation.NewServer(env.App, svc)

	_, err := srv.Warn(auth.WithUser(context.Background(), "b"), &pb.WarnRequest{UserId: "a", Reason: "spam"})
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	opCtx := auth.WithOperator(context.Background(), "ops")
	_, err = srv.Warn(opCtx, &pb.WarnRequest{UserId: "a", Reason: "   "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	resp, err := srv.Warn(opCtx, &pb.WarnRequest{UserId: "a", Reason: "spam"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.GetWarningCount())

	_, err = srv.Ban(opCtx, &pb.BanRequest{UserId: "a", Reason: "spam"})
	require.NoError(t, err)
	ban, err := repository.NewModerationRepository(env.DB).FindBan(context.Background(), "a")
	require.NoError(t, err)
	assert.Equal(t, "ops", ban.BannedBy)

	_, err = srv.Unban(opCtx, &pb.UserRequest{UserId: "c"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	list, err := srv.ListWarnings(opCtx, &pb.UserRequest{UserId: "a"})
	require.NoError(t, err)
	assert.Len(t, list.GetWarnings(), 1)
}
