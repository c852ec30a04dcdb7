package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/oggyb/campus-connect/internal/auth"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
	"github.com/oggyb/campus-connect/internal/testutil"
)

func setup(t *testing.T) (*testutil.Env, *auth.Verifier) {
	t.Helper()
	env := testutil.NewEnv(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	env.App.Config.Auth.JWTSecret = "test-secret"
	env.App.Config.Auth.JWTIssuer = "campus-test"
	env.App.Config.Auth.OperatorToken = "op-token"
	return env, auth.NewVerifier(env.App.Config)
}

func call(t *testing.T, i *auth.Interceptor, ctx context.Context, method string) (context.Context, error) {
	t.Helper()
	var seen context.Context
	_, err := i.Unary()(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, func(ctx context.Context, _ any) (any, error) {
		seen = ctx
		return nil, nil
	})
	return seen, err
}

func TestVerifier_RoundTrip(t *testing.T) {
	_, v := setup(t)

	token, err := v.Sign("ext-1", "23eg105j13@institution.domain", "Asha", time.Hour)
	require.NoError(t, err)

	claims, err := v.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "ext-1", claims.Subject)
	assert.Equal(t, "23eg105j13@institution.domain", claims.Email)
	assert.Equal(t, "Asha", claims.UserMetadata.FullName)
}

func TestVerifier_RejectsExpiredAndForeignTokens(t *testing.T) {
	env, v := setup(t)

	expired, err := v.Sign("ext-1", "a@institution.domain", "", -time.Minute)
	require.NoError(t, err)
	_, err = v.Verify(expired)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	env.App.Config.Auth.JWTSecret = "other-secret"
	foreign, err := auth.NewVerifier(env.App.Config).Sign("ext-1", "a@institution.domain", "", time.Hour)
	require.NoError(t, err)
	_, err = v.Verify(foreign)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestInterceptor_ResolvesLinkedProfile(t *testing.T) {
	env, v := setup(t)
	ext := "ext-7"
	require.NoError(t, env.DB.Create(&db.Profile{ID: "p7", ExternalID: &ext, Email: "p7@institution.domain"}).Error)

	token, err := v.Sign(ext, "p7@institution.domain", "", time.Hour)
	require.NoError(t, err)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))

	seen, err := call(t, auth.NewInterceptor(env.App), ctx, pb.LedgerService_Like_FullMethodName)
	require.NoError(t, err)
	id, ok := auth.UserID(seen)
	assert.True(t, ok)
	assert.Equal(t, "p7", id)
}

func TestInterceptor_RefusesBannedProfile(t *testing.T) {
	env, v := setup(t)
	ext := "ext-8"
	require.NoError(t, env.DB.Create(&db.Profile{ID: "p8", ExternalID: &ext, Email: "p8@institution.domain"}).Error)
	require.NoError(t, env.DB.Create(&db.Ban{ID: "ban-8", UserID: "p8", Reason: "spam", BannedBy: "ops"}).Error)

	token, err := v.Sign(ext, "p8@institution.domain", "", time.Hour)
	require.NoError(t, err)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))

	_, err = call(t, auth.NewInterceptor(env.App), ctx, pb.LedgerService_Like_FullMethodName)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))
	assert.Equal(t, "BANNED", svcErr.Reason(err))
}

func TestInterceptor_LoginNeedsOnlyToken(t *testing.T) {
	env, v := setup(t)
	token, err := v.Sign("ext-new", "new@institution.domain", "", time.Hour)
	require.NoError(t, err)
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", "Bearer "+token))

	i := auth.NewInterceptor(env.App)

	seen, err := call(t, i, ctx, pb.IdentityService_Login_FullMethodName)
	require.NoError(t, err)
	claims, ok := auth.ClaimsFrom(seen)
	require.True(t, ok)
	assert.Equal(t, "ext-new", claims.Subject)

	_, err = call(t, i, ctx, pb.IdentityService_Me_FullMethodName)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_MissingToken(t *testing.T) {
	env, _ := setup(t)
	_, err := call(t, auth.NewInterceptor(env.App), context.Background(), pb.DiceService_Roll_FullMethodName)
	assert.Equal(t, codes.Unauthenticated, status.Code(err))
}

func TestInterceptor_OperatorToken(t *testing.T) {
	env, _ := setup(t)
	i := auth.NewInterceptor(env.App)
	method := pb.ModerationService_Warn_FullMethodName

	_, err := call(t, i, metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-operator-token", "nope")), method)
	assert.Equal(t, codes.PermissionDenied, status.Code(err))

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs("x-operator-token", "op-token", "x-operator-name", "dean"))
	seen, err := call(t, i, ctx, method)
	require.NoError(t, err)
	name, ok := auth.Operator(seen)
	assert.True(t, ok)
	assert.Equal(t, "dean", name)
}

func TestInterceptor_HealthIsOpen(t *testing.T) {
	env, _ := setup(t)
	_, err := call(t, auth.NewInterceptor(env.App), context.Background(), "/grpc.health.v1.Health/Check")
	assert.NoError(t, err)
}

func TestCheckOperatorPassword(t *testing.T) {
	hash, err := auth.HashOperatorPassword("s3cret")
	require.NoError(t, err)

	assert.NoError(t, auth.CheckOperatorPassword(hash, "s3cret"))
	assert.ErrorIs(t, auth.CheckOperatorPassword(hash, "wrong"), svcErr.ErrForbidden)
	assert.ErrorIs(t, auth.CheckOperatorPassword("", "s3cret"), svcErr.ErrForbidden)
}
