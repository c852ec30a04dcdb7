package messaging

import (
	"context"

	"google.golang.org/grpc"

	"github.com/oggyb/campus-connect/internal/api"
	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/auth"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

// Server exposes Service as pb.MessagingServiceServer.
type Server struct {
	appCtx *app.AppContext
	svc    *Service

	pb.UnimplementedMessagingServiceServer
}

func NewServer(appCtx *app.AppContext, svc *Service) *Server {
	return &Server{appCtx: appCtx, svc: svc}
}

func matchRule(matchID string) api.Rule {
	return api.Field("match_id", matchID, "required,max=36")
}

func (s *Server) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := api.Validate(
		matchRule(req.GetMatchId()),
		api.Field("body", req.GetBody(), "required,nonblank,max=2000"),
	); err != nil {
		return nil, svcErr.Map(err)
	}
	msg, err := s.svc.Send(ctx, req.GetMatchId(), userID, req.GetBody())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SendMessageResponse{Message: api.NewMessage(req.GetMatchId(), msg)}, nil
}

func (s *Server) ListMessages(ctx context.Context, req *pb.MatchRequest) (*pb.ListMessagesResponse, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := api.Validate(matchRule(req.GetMatchId())); err != nil {
		return nil, svcErr.Map(err)
	}
	msgs, err := s.svc.List(ctx, req.GetMatchId(), userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListMessagesResponse{Messages: make([]*pb.Message, 0, len(msgs))}
	for i := range msgs {
		resp.Messages = append(resp.Messages, api.NewMessage(req.GetMatchId(), &msgs[i]))
	}
	return resp, nil
}

func (s *Server) Subscribe(req *pb.MatchRequest, stream grpc.ServerStreamingServer[pb.Message]) error {
	ctx := stream.Context()
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return err
	}
	if err := api.Validate(matchRule(req.GetMatchId())); err != nil {
		return svcErr.Map(err)
	}
	s.appCtx.Logger.Debug("Subscribe opened", "match_id", req.GetMatchId(), "user_id", userID)
	if err := s.svc.Subscribe(ctx, req.GetMatchId(), userID, stream.Send); err != nil {
		return svcErr.Map(err)
	}
	return nil
}
