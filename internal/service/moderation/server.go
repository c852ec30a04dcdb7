package moderation

import (
	"context"

	"github.com/oggyb/campus-connect/internal/api"
	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/auth"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

// Server exposes Service as pb.ModerationServiceServer. The auth interceptor
// only lets operator-authenticated calls through to it.
type Server struct {
	appCtx *app.AppContext
	svc    *Service

	pb.UnimplementedModerationServiceServer
}

func NewServer(appCtx *app.AppContext, svc *Service) *Server {
	return &Server{appCtx: appCtx, svc: svc}
}

func operator(ctx context.Context, rules ...api.Rule) (string, error) {
	name, ok := auth.Operator(ctx)
	if !ok {
		return "", svcErr.Map(svcErr.ErrForbidden.WithMsg("operator credentials required"))
	}
	if err := api.Validate(rules...); err != nil {
		return "", svcErr.Map(err)
	}
	return name, nil
}

func userRule(userID string) api.Rule {
	return api.Field("user_id", userID, "required,max=36")
}

func reasonRule(reason string) api.Rule {
	return api.Field("reason", reason, "required,nonblank,max=512")
}

func (s *Server) Warn(ctx context.Context, req *pb.WarnRequest) (*pb.WarnResponse, error) {
	if _, err := operator(ctx, userRule(req.GetUserId()), reasonRule(req.GetReason())); err != nil {
		return nil, err
	}
	res, err := s.svc.Warn(ctx, req.GetUserId(), req.GetReason())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.WarnResponse{WarningCount: res.Count, AutoBanned: res.AutoBanned, Message: res.Message}, nil
}

func (s *Server) ListWarnings(ctx context.Context, req *pb.UserRequest) (*pb.WarningsResponse, error) {
	if _, err := operator(ctx, userRule(req.GetUserId())); err != nil {
		return nil, err
	}
	ws, err := s.svc.ListWarnings(ctx, req.GetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.WarningsResponse{Warnings: api.NewWarnings(ws)}, nil
}

func (s *Server) Ban(ctx context.Context, req *pb.BanRequest) (*pb.Ack, error) {
	name, err := operator(ctx, userRule(req.GetUserId()), reasonRule(req.GetReason()))
	if err != nil {
		return nil, err
	}
	if err := s.svc.Ban(ctx, req.GetUserId(), req.GetReason(), name, req.GetPermanent()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Ack{Ok: true}, nil
}

func (s *Server) Unban(ctx context.Context, req *pb.UserRequest) (*pb.Ack, error) {
	if _, err := operator(ctx, userRule(req.GetUserId())); err != nil {
		return nil, err
	}
	if err := s.svc.Unban(ctx, req.GetUserId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Ack{Ok: true}, nil
}

func (s *Server) DeleteUser(ctx context.Context, req *pb.DeleteUserRequest) (*pb.DeleteUserResponse, error) {
	name, err := operator(ctx,
		userRule(req.GetUserId()),
		api.Field("confirm_password", req.GetConfirmPassword(), "required"),
	)
	if err != nil {
		return nil, err
	}
	res, err := s.svc.DeleteUser(ctx, req.GetUserId(), req.GetConfirmPassword(), name)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.DeleteUserResponse{Deleted: res.Deleted, IdentityRevoked: res.IdentityRevoked}, nil
}
