package identity_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/campus-connect/internal/auth"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
	"github.com/oggyb/campus-connect/internal/service/identity"
	"github.com/oggyb/campus-connect/internal/testutil"
)

var start = time.Date(2025, 9, 1, 9, 0, 0, 0, time.UTC)

type fakeRevoker struct {
	revoked []string
	err     error
}

func (f *fakeRevoker) Revoke(_ context.Context, id string) error {
	f.revoked = append(f.revoked, id)
	return f.err
}

func setup(t *testing.T) (*testutil.Env, *identity.Service) {
	t.Helper()
	env := testutil.NewEnv(t, start)
	return env, identity.NewService(env.App)
}

func TestResolve_CreatesProfileFromEmail(t *testing.T) {
	env, svc := setup(t)
	ctx := context.Background()

	p, err := svc.Resolve(ctx, "ext-1", "23EG105J13@institution.domain", "Asha")
	require.NoError(t, err)
	assert.Equal(t, "23eg105j13@institution.domain", p.Email)
	assert.Equal(t, "Asha", p.Name)
	assert.Equal(t, "EG", p.Department)
	assert.Equal(t, 3, p.Year)
	assert.True(t, p.Verified)
	require.NotNil(t, p.ExternalID)
	assert.Equal(t, "ext-1", *p.ExternalID)

	again, err := svc.Resolve(ctx, "ext-1", "23eg105j13@institution.domain", "")
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)

	var count int64
	require.NoError(t, env.DB.Model(&db.Profile{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestResolve_DefaultsNameToLocalPart(t *testing.T) {
	_, svc := setup(t)
	p, err := svc.Resolve(context.Background(), "ext-1", "24eg301b02@institution.domain", "  ")
	require.NoError(t, err)
	assert.Equal(t, "24eg301b02", p.Name)
}

func TestResolve_LinksLegacyProfile(t *testing.T) {
	env, svc := setup(t)
	require.NoError(t, env.DB.Create(&db.Profile{ID: "legacy", Email: "22eg105a01@institution.domain", Name: "Old"}).Error)

	p, err := svc.Resolve(context.Background(), "ext-9", "22eg105a01@institution.domain", "New")
	require.NoError(t, err)
	assert.Equal(t, "legacy", p.ID)
	assert.Equal(t, "Old", p.Name)

	var stored db.Profile
	require.NoError(t, env.DB.First(&stored, "id = ?", "legacy").Error)
	require.NotNil(t, stored.ExternalID)
	assert.Equal(t, "ext-9", *stored.ExternalID)
	assert.True(t, stored.Verified)
}

func TestResolve_EmailLinkedElsewhere(t *testing.T) {
	_, svc := setup(t)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, "ext-1", "23eg105j13@institution.domain", "")
	require.NoError(t, err)

	_, err = svc.Resolve(ctx, "ext-2", "23eg105j13@institution.domain", "")
	assert.ErrorIs(t, err, svcErr.ErrIdentityConflict)
}

func TestResolve_RejectsMalformedEmail(t *testing.T) {
	env, svc := setup(t)
	_, err := svc.Resolve(context.Background(), "ext-1", "someone@gmail.com", "")
	assert.ErrorIs(t, err, svcErr.ErrInvalidFormat)
	assert.Equal(t, svcErr.KindInvalidFormat, svcErr.KindOf(err))

	var count int64
	require.NoError(t, env.DB.Model(&db.Profile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestResolve_RefusesBannedProfile(t *testing.T) {
	env, svc := setup(t)
	ctx := context.Background()

	p, err := svc.Resolve(ctx, "ext-1", "23eg105j13@institution.domain", "")
	require.NoError(t, err)
	require.NoError(t, env.DB.Create(&db.Ban{ID: "b1", UserID: p.ID, Reason: "spam"}).Error)

	_, err = svc.Resolve(ctx, "ext-1", "23eg105j13@institution.domain", "")
	assert.ErrorIs(t, err, svcErr.ErrBanned)
}

func TestLogin_BlacklistedEmailRevokesIdentity(t *testing.T) {
	env, svc := setup(t)
	require.NoError(t, env.DB.Create(&db.Ban{
		ID: "b1", UserID: "deleted-user", Email: "23eg105j13@institution.domain", Permanent: true,
	}).Error)

	revoker := &fakeRevoker{err: errors.New("provider down")}
	srv := identity.NewServer(env.App, svc, revoker)

	ctx := auth.WithClaims(context.Background(), &auth.Claims{
		Email:            "23eg105j13@institution.domain",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "ext-new"},
	})
	_, err := srv.Login(ctx, &pb.LoginRequest{})
	require.Error(t, err)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.Equal(t, "EMAIL_BLACKLISTED", svcErr.Reason(err))
	assert.Equal(t, []string{"ext-new"}, revoker.revoked)

	var count int64
	require.NoError(t, env.DB.Model(&db.Profile{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestLogin_UsesTokenNameWhenNoneGiven(t *testing.T) {
	env, svc := setup(t)
	srv := identity.NewServer(env.App, svc, &fakeRevoker{})

	ctx := auth.WithClaims(context.Background(), &auth.Claims{
		Email:            "23eg105j13@institution.domain",
		UserMetadata:     auth.UserMetadata{FullName: "Asha Rao"},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "ext-1"},
	})
	resp, err := srv.Login(ctx, &pb.LoginRequest{})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", resp.GetProfile().GetName())

	me, err := srv.Me(auth.WithUser(context.Background(), resp.GetProfile().GetId()), &pb.MeRequest{})
	require.NoError(t, err)
	assert.Equal(t, resp.GetProfile().GetId(), me.GetProfile().GetId())
}

func TestLogin_WithoutClaims(t *testing.T) {
	env, svc := setup(t)
	_, err := identity.NewServer(env.App, svc, &fakeRevoker{}).Login(context.Background(), &pb.LoginRequest{})
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestAcknowledgeWarning(t *testing.T) {
	env, svc := setup(t)
	ctx := context.Background()
	testutil.Profiles(t, env.DB, "u1", "u2")
	require.NoError(t, env.DB.Create(&db.Warning{ID: "w1", UserID: "u1", Reason: "rude"}).Error)

	assert.ErrorIs(t, svc.AcknowledgeWarning(ctx, "u2", "w1"), svcErr.ErrNotFound)
	require.NoError(t, svc.AcknowledgeWarning(ctx, "u1", "w1"))

	ws, err := svc.Warnings(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, ws, 1)
	assert.True(t, ws[0].Resolved)
}
