package identity

import (
	"context"
	"errors"

	"github.com/getsentry/sentry-go"

	"github.com/oggyb/campus-connect/internal/api"
	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/auth"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	idp "github.com/oggyb/campus-connect/internal/identity"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

// Server exposes Service as pb.IdentityServiceServer.
type Server struct {
	appCtx  *app.AppContext
	svc     *Service
	revoker idp.Revoker

	pb.UnimplementedIdentityServiceServer
}

func NewServer(appCtx *app.AppContext, svc *Service, revoker idp.Revoker) *Server {
	return &Server{appCtx: appCtx, svc: svc, revoker: revoker}
}

// Login resolves the caller's verified identity to a profile. A blacklisted
// email also gets its external identity revoked, best effort.
func (s *Server) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	claims, ok := auth.ClaimsFrom(ctx)
	if !ok {
		return nil, svcErr.Unauthenticated("access token required")
	}
	s.appCtx.Logger.Debug("Login called", "external_id", claims.Subject)

	name := req.GetDisplayName()
	if name == "" {
		name = claims.UserMetadata.FullName
	}

	p, err := s.svc.Resolve(ctx, claims.Subject, claims.Email, name)
	if errors.Is(err, svcErr.ErrBlacklisted) {
		if rerr := s.revoker.Revoke(ctx, claims.Subject); rerr != nil {
			s.appCtx.Logger.Warn("revoking blacklisted identity failed", "external_id", claims.Subject, "err", rerr)
			sentry.CaptureException(rerr)
		}
	}
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.LoginResponse{Profile: api.NewProfile(s.appCtx.Logger, p)}, nil
}

func (s *Server) Me(ctx context.Context, _ *pb.MeRequest) (*pb.LoginResponse, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	p, err := s.svc.Profile(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.LoginResponse{Profile: api.NewProfile(s.appCtx.Logger, p)}, nil
}

func (s *Server) MyWarnings(ctx context.Context, _ *pb.MyWarningsRequest) (*pb.WarningsResponse, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	ws, err := s.svc.Warnings(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.WarningsResponse{Warnings: api.NewWarnings(ws)}, nil
}

func (s *Server) AcknowledgeWarning(ctx context.Context, req *pb.AcknowledgeWarningRequest) (*pb.Ack, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := api.Validate(api.Field("warning_id", req.GetWarningId(), "required,max=36")); err != nil {
		return nil, svcErr.Map(err)
	}
	if err := s.svc.AcknowledgeWarning(ctx, userID, req.GetWarningId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Ack{Ok: true}, nil
}
