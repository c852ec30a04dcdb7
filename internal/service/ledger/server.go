package ledger

import (
	"context"

	"github.com/oggyb/campus-connect/internal/api"
	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/auth"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

// Server exposes Service as pb.LedgerServiceServer. The acting user always
// comes from the authenticated context, never from the request body.
type Server struct {
	appCtx *app.AppContext
	svc    *Service

	pb.UnimplementedLedgerServiceServer
}

func NewServer(appCtx *app.AppContext, svc *Service) *Server {
	return &Server{appCtx: appCtx, svc: svc}
}

// caller authenticates and validates a request in one step.
func caller(ctx context.Context, rules ...api.Rule) (string, error) {
	userID, err := auth.RequireUser(ctx)
	if err != nil {
		return "", err
	}
	if err := api.Validate(rules...); err != nil {
		return "", svcErr.Map(err)
	}
	return userID, nil
}

func targetRule(req *pb.TargetRequest) api.Rule {
	return api.Field("target_user_id", req.GetTargetUserId(), "required,max=36")
}

func requestRule(req *pb.AnswerFriendRequestRequest) api.Rule {
	return api.Field("request_id", req.GetRequestId(), "required,max=36")
}

func (s *Server) Like(ctx context.Context, req *pb.TargetRequest) (*pb.LikeResponse, error) {
	userID, err := caller(ctx, targetRule(req))
	if err != nil {
		return nil, err
	}
	res, err := s.svc.Like(ctx, userID, req.GetTargetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.LikeResponse{Unliked: res.Unliked, Matched: res.Matched, MatchId: res.MatchID}, nil
}

func (s *Server) SendFriendRequest(ctx context.Context, req *pb.TargetRequest) (*pb.FriendRequestResponse, error) {
	userID, err := caller(ctx, targetRule(req))
	if err != nil {
		return nil, err
	}
	fr, err := s.svc.SendFriendRequest(ctx, userID, req.GetTargetUserId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.FriendRequestResponse{Request: api.NewFriendRequest(fr)}, nil
}

func (s *Server) AcceptFriendRequest(ctx context.Context, req *pb.AnswerFriendRequestRequest) (*pb.AcceptFriendRequestResponse, error) {
	userID, err := caller(ctx, requestRule(req))
	if err != nil {
		return nil, err
	}
	res, err := s.svc.AcceptFriendRequest(ctx, userID, req.GetRequestId())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.AcceptFriendRequestResponse{
		MatchId:        res.MatchID,
		Matched:        res.Matched,
		AlreadyMatched: res.AlreadyMatched,
	}, nil
}

func (s *Server) RejectFriendRequest(ctx context.Context, req *pb.AnswerFriendRequestRequest) (*pb.Ack, error) {
	userID, err := caller(ctx, requestRule(req))
	if err != nil {
		return nil, err
	}
	if err := s.svc.RejectFriendRequest(ctx, userID, req.GetRequestId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Ack{Ok: true}, nil
}

func (s *Server) RemoveFriend(ctx context.Context, req *pb.TargetRequest) (*pb.Ack, error) {
	userID, err := caller(ctx, targetRule(req))
	if err != nil {
		return nil, err
	}
	if err := s.svc.RemoveFriend(ctx, userID, req.GetTargetUserId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Ack{Ok: true}, nil
}

func (s *Server) Block(ctx context.Context, req *pb.TargetRequest) (*pb.Ack, error) {
	userID, err := caller(ctx, targetRule(req))
	if err != nil {
		return nil, err
	}
	if err := s.svc.Block(ctx, userID, req.GetTargetUserId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Ack{Ok: true}, nil
}

func (s *Server) Unblock(ctx context.Context, req *pb.TargetRequest) (*pb.Ack, error) {
	userID, err := caller(ctx, targetRule(req))
	if err != nil {
		return nil, err
	}
	if err := s.svc.Unblock(ctx, userID, req.GetTargetUserId()); err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.Ack{Ok: true}, nil
}

func (s *Server) ListLikedYou(ctx context.Context, req *pb.ListLikedYouRequest) (*pb.ListLikedYouResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	likes, next, err := s.svc.ListLikedYou(ctx, userID, req.PaginationToken, req.GetOnlyNew())
	if err != nil {
		s.appCtx.Logger.Error("ListLikedYou failed", "user_id", userID, "err", err)
		return nil, svcErr.Map(err)
	}

	resp := &pb.ListLikedYouResponse{NextPaginationToken: next}
	for _, l := range likes {
		resp.Likers = append(resp.Likers, &pb.Liker{
			UserId:        l.LikerID,
			UnixTimestamp: l.CreatedAt.UnixMilli(),
		})
	}
	s.appCtx.Logger.Debug("ListLikedYou result", "liker_count", len(resp.Likers), "has_next", next != nil)
	return resp, nil
}

func (s *Server) CountLikedYou(ctx context.Context, _ *pb.CountLikedYouRequest) (*pb.CountLikedYouResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	n, err := s.svc.CountLikedYou(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.CountLikedYouResponse{Count: uint64(n)}, nil
}

func (s *Server) ListMatches(ctx context.Context, _ *pb.ListMatchesRequest) (*pb.ListMatchesResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	matches, err := s.svc.ListMatches(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListMatchesResponse{Matches: make([]*pb.Match, 0, len(matches))}
	for _, m := range matches {
		resp.Matches = append(resp.Matches, &pb.Match{
			Id:            m.ID,
			UserId:        m.Counterpart(userID),
			Origin:        string(m.Origin),
			UnixTimestamp: m.CreatedAt.UnixMilli(),
		})
	}
	return resp, nil
}

func (s *Server) ListFriendRequests(ctx context.Context, req *pb.ListFriendRequestsRequest) (*pb.ListFriendRequestsResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	frs, err := s.svc.ListFriendRequests(ctx, userID, req.GetOutgoing())
	if err != nil {
		return nil, svcErr.Map(err)
	}
	resp := &pb.ListFriendRequestsResponse{Requests: make([]*pb.FriendRequest, 0, len(frs))}
	for i := range frs {
		resp.Requests = append(resp.Requests, api.NewFriendRequest(&frs[i]))
	}
	return resp, nil
}

func (s *Server) ListBlocked(ctx context.Context, _ *pb.ListBlockedRequest) (*pb.ListBlockedResponse, error) {
	userID, err := caller(ctx)
	if err != nil {
		return nil, err
	}
	ids, err := s.svc.ListBlocked(ctx, userID)
	if err != nil {
		return nil, svcErr.Map(err)
	}
	return &pb.ListBlockedResponse{UserIds: ids}, nil
}
