package auth

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/app"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
	"github.com/oggyb/campus-connect/internal/repository"
)

const (
	headerAuthorization = "authorization"
	headerOperatorToken = "x-operator-token"
	headerOperatorName  = "x-operator-name"
)

// Interceptor authenticates every RPC before it reaches a service:
//   - grpc.health / grpc.reflection: open.
//   - ModerationService: operator token.
//   - IdentityService/Login: provider access token only.
//   - everything else: provider access token resolved to a linked profile
//     that is not banned.
type Interceptor struct {
	appCtx     *app.AppContext
	verifier   *Verifier
	profiles   *repository.ProfileRepository
	moderation *repository.ModerationRepository
}

func NewInterceptor(appCtx *app.AppContext) *Interceptor {
	return &Interceptor{
		appCtx:     appCtx,
		verifier:   NewVerifier(appCtx.Config),
		profiles:   repository.NewProfileRepository(appCtx.DB),
		moderation: repository.NewModerationRepository(appCtx.DB),
	}
}

func (i *Interceptor) Unary() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		ctx, err := i.authenticate(ctx, info.FullMethod)
		if err != nil {
			return nil, err
		}
		return handler(ctx, req)
	}
}

func (i *Interceptor) Stream() grpc.StreamServerInterceptor {
	return func(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		ctx, err := i.authenticate(ss.Context(), info.FullMethod)
		if err != nil {
			return err
		}
		return handler(srv, &authedStream{ServerStream: ss, ctx: ctx})
	}
}

func (i *Interceptor) authenticate(ctx context.Context, fullMethod string) (context.Context, error) {
	if strings.HasPrefix(fullMethod, "/grpc.health.") || strings.HasPrefix(fullMethod, "/grpc.reflection.") {
		return ctx, nil
	}

	md, _ := metadata.FromIncomingContext(ctx)

	if strings.HasPrefix(fullMethod, "/"+pb.ModerationService_ServiceDesc.ServiceName+"/") {
		if !CheckOperatorToken(i.appCtx.Config.Auth.OperatorToken, first(md, headerOperatorToken)) {
			i.appCtx.Logger.Warn("operator call rejected", "method", fullMethod)
			return nil, status.Error(codes.PermissionDenied, "operator credential required")
		}
		name := first(md, headerOperatorName)
		if name == "" {
			name = "operator"
		}
		return WithOperator(ctx, name), nil
	}

	raw := strings.TrimSpace(first(md, headerAuthorization))
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if raw == "" {
		return nil, svcErr.Unauthenticated("missing access token")
	}
	claims, err := i.verifier.Verify(raw)
	if err != nil {
		i.appCtx.Logger.Debug("token rejected", "method", fullMethod, "err", err)
		return nil, svcErr.Unauthenticated("invalid access token")
	}
	ctx = WithClaims(ctx, claims)

	if fullMethod == pb.IdentityService_Login_FullMethodName {
		return ctx, nil
	}

	profile, err := i.profiles.FindByExternalID(ctx, claims.Subject)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.Unauthenticated("no profile for this identity, call Login first")
	}
	if err != nil {
		i.appCtx.Logger.Error("profile lookup failed", "err", err)
		return nil, svcErr.Map(err)
	}
	banned, err := i.moderation.IsBanned(ctx, profile.ID)
	if err != nil {
		i.appCtx.Logger.Error("ban lookup failed", "err", err)
		return nil, svcErr.Map(err)
	}
	if banned {
		return nil, svcErr.Map(svcErr.ErrBanned)
	}
	return WithUser(ctx, profile.ID), nil
}

func first(md metadata.MD, key string) string {
	if vals := md.Get(key); len(vals) > 0 {
		return vals[0]
	}
	return ""
}

type authedStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *authedStream) Context() context.Context { return s.ctx }
