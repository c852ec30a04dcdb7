// Package ledger owns likes, matches, friend requests and blocks, and the
// transitions between them.
package ledger

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	"github.com/oggyb/campus-connect/internal/metrics"
	"github.com/oggyb/campus-connect/internal/repository"
	"github.com/oggyb/campus-connect/internal/utils/pagination"
)

// likersPageSize is the page size of ListLikedYou.
const likersPageSize = 20

// Service implements the relationship ledger on top of the repositories and
// the Redis like counters.
type Service struct {
	appCtx   *app.AppContext
	profiles *repository.ProfileRepository
	likes    *repository.LikeRepository
	matches  *repository.MatchRepository
	requests *repository.FriendRequestRepository
	blocks   *repository.BlockRepository
}

func NewService(appCtx *app.AppContext) *Service {
	return &Service{
		appCtx:   appCtx,
		profiles: repository.NewProfileRepository(appCtx.DB),
		likes:    repository.NewLikeRepository(appCtx.DB),
		matches:  repository.NewMatchRepository(appCtx.DB),
		requests: repository.NewFriendRequestRepository(appCtx.DB),
		blocks:   repository.NewBlockRepository(appCtx.DB),
	}
}

type LikeResult struct {
	Unliked bool
	Matched bool
	MatchID string
}

// Like toggles Like(actor -> target).
//
// Behavior:
//   - An existing like is removed and Unliked is reported.
//   - Otherwise the like is stored; when target already liked actor the
//     canonical match is created (or found) and Matched is reported.
//   - Concurrent reciprocal likes collapse into one match through the unique
//     pair index.
//
// Example:
//
//	svc.Like(ctx, "a", "b") // a likes b
func (s *Service) Like(ctx context.Context, actorID, targetID string) (*LikeResult, error) {
	s.appCtx.Logger.Debug("Like called", "actor", actorID, "target", targetID)

	if err := s.checkPair(ctx, actorID, targetID); err != nil {
		return nil, err
	}

	removed, err := s.likes.Delete(ctx, actorID, targetID)
	if err != nil {
		return nil, fmt.Errorf("delete like: %w", err)
	}
	if removed {
		s.adjustLikeCount(ctx, targetID, -1)
		metrics.LikesTotal.WithLabelValues("unliked").Inc()
		return &LikeResult{Unliked: true}, nil
	}

	created, err := s.likes.Create(ctx, actorID, targetID)
	if err != nil {
		return nil, fmt.Errorf("create like: %w", err)
	}
	if created {
		s.adjustLikeCount(ctx, targetID, 1)
	}

	reciprocal, err := s.likes.HasLiked(ctx, targetID, actorID)
	if err != nil {
		return nil, fmt.Errorf("check reciprocal like: %w", err)
	}
	if !reciprocal {
		metrics.LikesTotal.WithLabelValues("liked").Inc()
		return &LikeResult{}, nil
	}

	m, matchCreated, err := s.matches.CreateCanonical(ctx, actorID, targetID, db.OriginLike)
	if err != nil {
		return nil, fmt.Errorf("create match: %w", err)
	}
	if matchCreated {
		metrics.MatchesCreated.WithLabelValues(string(db.OriginLike)).Inc()
		s.appCtx.Logger.Info("match created", "match_id", m.ID, "origin", db.OriginLike)
	}
	metrics.LikesTotal.WithLabelValues("matched").Inc()
	return &LikeResult{Matched: true, MatchID: m.ID}, nil
}

// SendFriendRequest proposes a connection actor -> target.
//
// Fails with ErrAlreadyFriends when matched, ErrAlreadyRequested when a
// pending request exists and ErrBlocked when either side blocked the other.
// A previously rejected request is reopened.
func (s *Service) SendFriendRequest(ctx context.Context, actorID, targetID string) (*db.FriendRequest, error) {
	s.appCtx.Logger.Debug("SendFriendRequest called", "actor", actorID, "target", targetID)

	if err := s.checkPair(ctx, actorID, targetID); err != nil {
		return nil, err
	}

	matched, err := s.matches.Exists(ctx, actorID, targetID)
	if err != nil {
		return nil, fmt.Errorf("check match: %w", err)
	}
	if matched {
		return nil, svcErr.ErrAlreadyFriends
	}

	existing, err := s.requests.FindByPair(ctx, actorID, targetID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find request: %w", err)
	}
	if existing != nil && existing.Status == db.FriendRequestPending {
		return nil, svcErr.ErrAlreadyRequested
	}

	blocked, err := s.blocks.ExistsEither(ctx, actorID, targetID)
	if err != nil {
		return nil, fmt.Errorf("check block: %w", err)
	}
	if blocked {
		return nil, svcErr.ErrBlocked
	}

	if existing != nil {
		reopened, err := s.requests.Transition(ctx, existing.ID, db.FriendRequestPending,
			db.FriendRequestRejected, db.FriendRequestAccepted)
		if err != nil {
			return nil, fmt.Errorf("reopen request: %w", err)
		}
		if !reopened {
			return nil, svcErr.ErrAlreadyRequested
		}
		existing.Status = db.FriendRequestPending
		metrics.FriendRequests.WithLabelValues("sent").Inc()
		return existing, nil
	}

	fr, err := s.requests.Create(ctx, actorID, targetID)
	if err != nil {
		// the pair index rejects a concurrent duplicate
		if again, findErr := s.requests.FindByPair(ctx, actorID, targetID); findErr == nil && again.Status == db.FriendRequestPending {
			return nil, svcErr.ErrAlreadyRequested
		}
		return nil, fmt.Errorf("create request: %w", err)
	}
	metrics.FriendRequests.WithLabelValues("sent").Inc()
	return fr, nil
}

type AcceptResult struct {
	MatchID        string
	Matched        bool
	AlreadyMatched bool
}

// AcceptFriendRequest accepts a request addressed to actor and creates the
// canonical match. Accepting again reports AlreadyMatched instead of failing.
func (s *Service) AcceptFriendRequest(ctx context.Context, actorID, requestID string) (*AcceptResult, error) {
	s.appCtx.Logger.Debug("AcceptFriendRequest called", "actor", actorID, "request", requestID)

	fr, err := s.receivedRequest(ctx, actorID, requestID)
	if err != nil {
		return nil, err
	}
	if fr.Status == db.FriendRequestRejected {
		return nil, svcErr.ErrRequestClosed
	}

	var (
		m       *db.Match
		created bool
	)
	err = s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		requests := s.requests.WithTx(tx)
		changed, err := requests.Transition(ctx, fr.ID, db.FriendRequestAccepted, db.FriendRequestPending)
		if err != nil {
			return fmt.Errorf("accept request: %w", err)
		}
		if !changed {
			// answered since the read above
			current, err := requests.FindByID(ctx, fr.ID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return svcErr.ErrRequestNotFound
			}
			if err != nil {
				return fmt.Errorf("find request: %w", err)
			}
			if current.Status != db.FriendRequestAccepted {
				return svcErr.ErrRequestClosed
			}
		}
		match, isNew, err := s.matches.WithTx(tx).CreateCanonical(ctx, fr.SenderID, fr.ReceiverID, db.OriginRequest)
		if err != nil {
			return fmt.Errorf("create match: %w", err)
		}
		m, created = match, isNew
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created {
		metrics.FriendRequests.WithLabelValues("accepted").Inc()
		metrics.MatchesCreated.WithLabelValues(string(db.OriginRequest)).Inc()
		s.appCtx.Logger.Info("match created", "match_id", m.ID, "origin", db.OriginRequest)
	}
	return &AcceptResult{MatchID: m.ID, Matched: created, AlreadyMatched: !created}, nil
}

// RejectFriendRequest closes a pending request addressed to actor. Likes are
// untouched; rejecting twice is a no-op.
func (s *Service) RejectFriendRequest(ctx context.Context, actorID, requestID string) error {
	s.appCtx.Logger.Debug("RejectFriendRequest called", "actor", actorID, "request", requestID)

	fr, err := s.receivedRequest(ctx, actorID, requestID)
	if err != nil {
		return err
	}
	switch fr.Status {
	case db.FriendRequestRejected:
		return nil
	case db.FriendRequestAccepted:
		return svcErr.ErrRequestClosed.WithMsg("friend request was already accepted")
	}

	changed, err := s.requests.Transition(ctx, fr.ID, db.FriendRequestRejected, db.FriendRequestPending)
	if err != nil {
		return fmt.Errorf("reject request: %w", err)
	}
	if changed {
		metrics.FriendRequests.WithLabelValues("rejected").Inc()
	}
	return nil
}

// RemoveFriend resets the pair to strangers: messages, match, requests and
// likes between them are deleted in one transaction. Safe to repeat.
func (s *Service) RemoveFriend(ctx context.Context, actorID, targetID string) error {
	s.appCtx.Logger.Debug("RemoveFriend called", "actor", actorID, "target", targetID)

	if actorID == targetID {
		return svcErr.Invalid("cannot remove yourself")
	}
	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return repository.PurgePair(ctx, tx, actorID, targetID)
	})
	if err != nil {
		s.appCtx.Logger.Error("remove friend failed", "actor", actorID, "target", targetID, "err", err)
		return err
	}
	s.invalidateLikeCounts(ctx, actorID, targetID)
	metrics.PairsPurged.WithLabelValues("removed").Inc()
	return nil
}

// Block stores Block(actor -> target) and deletes likes in both directions.
// An existing match survives; messaging checks the block on every send.
func (s *Service) Block(ctx context.Context, actorID, targetID string) error {
	s.appCtx.Logger.Debug("Block called", "actor", actorID, "target", targetID)

	if err := s.checkPair(ctx, actorID, targetID); err != nil {
		return err
	}
	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.blocks.WithTx(tx).Create(ctx, actorID, targetID); err != nil {
			return fmt.Errorf("create block: %w", err)
		}
		if err := s.likes.WithTx(tx).DeleteBetween(ctx, actorID, targetID); err != nil {
			return fmt.Errorf("delete likes: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.invalidateLikeCounts(ctx, actorID, targetID)
	return nil
}

// Unblock removes Block(actor -> target) only. Deleted likes stay deleted.
func (s *Service) Unblock(ctx context.Context, actorID, targetID string) error {
	s.appCtx.Logger.Debug("Unblock called", "actor", actorID, "target", targetID)

	removed, err := s.blocks.Delete(ctx, actorID, targetID)
	if err != nil {
		return fmt.Errorf("delete block: %w", err)
	}
	if removed {
		// the actor's liker count includes the target again
		s.invalidateLikeCounts(ctx, actorID)
	}
	return nil
}

// ListLikedYou returns a page of users who liked recipient, newest first.
// onlyNew skips likers the recipient already liked back.
func (s *Service) ListLikedYou(ctx context.Context, recipientID string, token *string, onlyNew bool) ([]db.Like, *string, error) {
	if token != nil {
		if _, err := pagination.Decode(*token); err != nil {
			return nil, nil, svcErr.Invalid("invalid pagination token")
		}
	}
	if onlyNew {
		return s.likes.GetNewLikers(ctx, recipientID, token, likersPageSize)
	}
	return s.likes.GetLikers(ctx, recipientID, token, likersPageSize)
}

// CountLikedYou returns how many users liked recipient.
// Cache-first strategy:
//  1. Read likes:count:<id> from Redis.
//  2. On a miss fall back to the DB and store the result with a 1h TTL.
func (s *Service) CountLikedYou(ctx context.Context, recipientID string) (int64, error) {
	n, ok, err := s.appCtx.RedisCache.GetLikeCount(ctx, recipientID)
	if err != nil {
		s.appCtx.Logger.Warn("like count cache read failed", "user_id", recipientID, "err", err)
	}
	if ok {
		return n, nil
	}

	count, err := s.likes.CountLikers(ctx, recipientID)
	if err != nil {
		return 0, err
	}
	if err := s.appCtx.RedisCache.UpdateLikeCount(ctx, recipientID, count); err != nil {
		s.appCtx.Logger.Warn("like count cache write failed", "user_id", recipientID, "err", err)
	}
	return count, nil
}

func (s *Service) ListMatches(ctx context.Context, userID string) ([]db.Match, error) {
	return s.matches.ListForUser(ctx, userID)
}

// ListFriendRequests returns pending requests to the user, or from the user
// when outgoing is set.
func (s *Service) ListFriendRequests(ctx context.Context, userID string, outgoing bool) ([]db.FriendRequest, error) {
	if outgoing {
		return s.requests.ListOutgoing(ctx, userID)
	}
	return s.requests.ListIncoming(ctx, userID)
}

func (s *Service) ListBlocked(ctx context.Context, userID string) ([]string, error) {
	return s.blocks.ListBlocked(ctx, userID)
}

// checkPair rejects self-targeting and unknown targets.
func (s *Service) checkPair(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return svcErr.Invalid("cannot target yourself")
	}
	ok, err := s.profiles.Exists(ctx, targetID)
	if err != nil {
		return fmt.Errorf("check target: %w", err)
	}
	if !ok {
		return svcErr.ErrUserNotFound
	}
	return nil
}

func (s *Service) receivedRequest(ctx context.Context, actorID, requestID string) (*db.FriendRequest, error) {
	fr, err := s.requests.FindByID(ctx, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ErrRequestNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find request: %w", err)
	}
	if fr.ReceiverID != actorID {
		return nil, svcErr.ErrForbidden.WithMsg("only the receiver can answer a friend request")
	}
	return fr, nil
}

func (s *Service) adjustLikeCount(ctx context.Context, userID string, delta int64) {
	if err := s.appCtx.RedisCache.AdjustLikeCount(ctx, userID, delta); err != nil {
		s.appCtx.Logger.Warn("like count cache update failed", "user_id", userID, "err", err)
	}
}

func (s *Service) invalidateLikeCounts(ctx context.Context, userIDs ...string) {
	keys := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		keys = append(keys, s.appCtx.RedisCache.KeyForLikeCount(id))
	}
	if err := s.appCtx.RedisCache.Del(ctx, keys...); err != nil {
		s.appCtx.Logger.Warn("like count cache invalidation failed", "err", err)
	}
}
