package dice

import (
	"context"

	"github.com/oggyb/campus-connect/internal/api"
	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/auth"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

// Server exposes Service as pb.DiceServiceServer.
type Server struct {
	appCtx *app.AppContext
	svc    *Service

	pb.UnimplementedDiceServiceServer
}

func NewServer(appCtx *app.AppContext, svc *Service) *Server {
	return &Server{appCtx: appCtx, svc: svc}
}

func (s *Server) Roll(ctx context.Context, _ *pb.RollRequest) (*pb.RollResponse, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	roll, already, err := s.svc.Roll(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.RollResponse{DiceNumber: int32(roll.DiceNumber), AlreadyRolled: already, Day: roll.Day}, nil
}

func (s *Server) ListSameNumber(ctx context.Context, _ *pb.ListSameNumberRequest) (*pb.ListSameNumberResponse, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	roll, users, err := s.svc.ListSameNumber(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListSameNumberResponse{
		DiceNumber: int32(roll.DiceNumber),
		Users:      make([]*pb.DiceCandidate, 0, len(users)),
	}
	for _, u := range users {
		resp.Users = append(resp.Users, &pb.DiceCandidate{
			UserId:           u.UserID,
			Name:             u.Name,
			HasSelectedMatch: u.HasSelectedMatch,
		})
	}
	return resp, nil
}

func (s *Server) Select(ctx context.Context, req *pb.TargetRequest) (*pb.SelectResponse, error) {
	userID, err := target(ctx, req)
	if err != nil {
		return nil, err
	}
	dm, err := s.svc.Select(ctx, userID, req.GetTargetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.SelectResponse{MatchId: dm.MatchID, ExpiresAtUnix: dm.ExpiresAt.Unix()}, nil
}

// MarkChatted is normally driven by the messaging channel; clients may call
// it for a pair they belong to.
func (s *Server) MarkChatted(ctx context.Context, req *pb.TargetRequest) (*pb.MarkChattedResponse, error) {
	userID, err := target(ctx, req)
	if err != nil {
		return nil, err
	}
	marked, err := s.svc.MarkChatted(ctx, userID, req.GetTargetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.MarkChattedResponse{Marked: marked}, nil
}

func (s *Server) ListActive(ctx context.Context, _ *pb.ListActiveRequest) (*pb.ListActiveResponse, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return nil, err
	}
	dms, err := s.svc.ListActive(ctx, userID)
	if err != nil {
		s.appCtx.Logger.Error("ListActive failed", "user_id", userID, "err", err)
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListActiveResponse{Matches: make([]*pb.DiceMatch, 0, len(dms))}
	for i := range dms {
		resp.Matches = append(resp.Matches, api.NewDiceMatch(userID, &dms[i]))
	}
	return resp, nil
}

func target(ctx context.Context, req *pb.TargetRequest) (string, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return "", err
	}
	if err := api.Validate(api.Field("target_user_id", req.GetTargetUserId(), "required,max=36")); err != nil {
		return "", svcErr.Map(err)
	}
	return userID, nil
}
