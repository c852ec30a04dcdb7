package presence

import (
	"context"

	"github.com/oggyb/campus-connect/internal/api"
	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/auth"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

type Server struct {
	appCtx *app.AppContext
	svc    *Service

	pb.UnimplementedPresenceServiceServer
}

func NewServer(appCtx *app.AppContext, svc *Service) *Server {
	return &Server{appCtx: appCtx, svc: svc}
}

func (s *Server) Heartbeat(ctx context.Context, _ *pb.HeartbeatRequest) (*pb.HeartbeatResponse, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	until, err := s.svc.Heartbeat(ctx, userID)
	if err != nil {
		s.appCtx.Logger.Warn("heartbeat failed", "user_id", userID, "err", err)
		return nil, svcErr.Map(err)
	}
	return &pb.HeartbeatResponse{OnlineUntilUnix: until.Unix()}, nil
}

func (s *Server) Online(ctx context.Context, req *pb.OnlineRequest) (*pb.OnlineResponse, error) {
	if _, err := auth.RequireUser(ctx); err != nil {
		return nil, err
	}
	if err := api.Validate(api.Field("user_ids", req.GetUserIds(), "max=200")); err != nil {
		return nil, svcErr.Map(err)
	}
	online, err := s.svc.OnlineUsers(ctx, req.GetUserIds())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.OnlineResponse{Online: online}, nil
}
