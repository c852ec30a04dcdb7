// Package moderation issues warnings, escalates them to bans and deletes
// users together with their relationship graph.
package moderation

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/auth"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	"github.com/oggyb/campus-connect/internal/identity"
	"github.com/oggyb/campus-connect/internal/metrics"
	"github.com/oggyb/campus-connect/internal/repository"
	"github.com/oggyb/campus-connect/internal/service/presence"
)

const systemOperator = "system"

type Service struct {
	appCtx     *app.AppContext
	profiles   *repository.ProfileRepository
	moderation *repository.ModerationRepository
	likes      *repository.LikeRepository
	presence   *presence.Service
	revoker    identity.Revoker
}

func NewService(appCtx *app.AppContext, revoker identity.Revoker) *Service {
	return &Service{
		appCtx:     appCtx,
		profiles:   repository.NewProfileRepository(appCtx.DB),
		moderation: repository.NewModerationRepository(appCtx.DB),
		likes:      repository.NewLikeRepository(appCtx.DB),
		presence:   presence.NewService(appCtx),
		revoker:    revoker,
	}
}

type WarnResult struct {
	Count      int64
	AutoBanned bool
	Message    string
}

// Warn records a warning and escalates on the running total.
//
// Behavior:
//   - Resolved warnings still count.
//   - At the ban threshold a permanent ban is created unless the user already
//     has one; AutoBanned is reported only by the call that created it.
//   - At the warn threshold the result carries an approaching-ban message.
func (s *Service) Warn(ctx context.Context, userID, reason string) (*WarnResult, error) {
	s.appCtx.Logger.Debug("Warn called", "user_id", userID)

	p, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if _, err := s.moderation.CreateWarning(ctx, userID, reason); err != nil {
		return nil, fmt.Errorf("create warning: %w", err)
	}
	metrics.Warnings.Inc()

	count, err := s.moderation.CountWarnings(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count warnings: %w", err)
	}

	cfg := s.appCtx.Config.Moderation
	res := &WarnResult{Count: count}
	switch {
	case count >= int64(cfg.BanThreshold):
		created, err := s.moderation.CreateBanIfAbsent(ctx, &db.Ban{
			UserID:    userID,
			Email:     p.Email,
			Reason:    fmt.Sprintf("automatic ban after %d warnings", count),
			BannedBy:  systemOperator,
			Permanent: true,
		})
		if err != nil {
			return nil, fmt.Errorf("auto ban: %w", err)
		}
		if created {
			res.AutoBanned = true
			res.Message = fmt.Sprintf("user reached %d warnings and was banned", count)
			metrics.Bans.WithLabelValues("auto").Inc()
			s.presence.Evict(ctx, userID)
			s.appCtx.Logger.Info("user auto-banned", "user_id", userID, "warnings", count)
		} else {
			res.Message = "user is already banned"
		}
	case count >= int64(cfg.WarnThreshold):
		res.Message = fmt.Sprintf("user has %d warnings; a ban follows at %d", count, cfg.BanThreshold)
	}
	return res, nil
}

func (s *Service) ListWarnings(ctx context.Context, userID string) ([]db.Warning, error) {
	return s.moderation.ListWarnings(ctx, userID)
}

// Ban creates a ban for the user. A permanent ban also blacklists the email.
func (s *Service) Ban(ctx context.Context, userID, reason, bannedBy string, permanent bool) error {
	s.appCtx.Logger.Debug("Ban called", "user_id", userID, "by", bannedBy, "permanent", permanent)

	p, err := s.profile(ctx, userID)
	if err != nil {
		return err
	}
	ban := &db.Ban{UserID: userID, Reason: reason, BannedBy: bannedBy, Permanent: permanent}
	if permanent {
		ban.Email = p.Email
	}
	created, err := s.moderation.CreateBanIfAbsent(ctx, ban)
	if err != nil {
		return fmt.Errorf("create ban: %w", err)
	}
	if !created {
		return svcErr.ErrAlreadyBanned
	}
	metrics.Bans.WithLabelValues("manual").Inc()
	s.presence.Evict(ctx, userID)
	s.appCtx.Logger.Info("user banned", "user_id", userID, "by", bannedBy)
	return nil
}

// Unban lifts the user's ban; ErrNotBanned when there was none.
func (s *Service) Unban(ctx context.Context, userID string) error {
	n, err := s.moderation.DeleteBans(ctx, userID)
	if err != nil {
		return fmt.Errorf("delete bans: %w", err)
	}
	if n == 0 {
		return svcErr.ErrNotBanned
	}
	s.appCtx.Logger.Info("user unbanned", "user_id", userID)
	return nil
}

type DeleteResult struct {
	Deleted         bool
	IdentityRevoked bool
}

// DeleteUser removes the user for good.
//
// Behavior:
//   - password must match the operator password hash (ErrForbidden).
//   - One transaction purges warnings, messages, dice state, matches, likes,
//     blocks and friend requests, records a permanent ban on the email and
//     deletes the profile.
//   - The external identity is then revoked best effort. A failed revocation
//     is logged and reported, never rolled back into the local deletion.
func (s *Service) DeleteUser(ctx context.Context, userID, password, operator string) (*DeleteResult, error) {
	s.appCtx.Logger.Debug("DeleteUser called", "user_id", userID, "by", operator)

	if err := auth.CheckOperatorPassword(s.appCtx.Config.Auth.OperatorPasswordHash, password); err != nil {
		s.appCtx.Logger.Warn("delete user rejected", "user_id", userID, "by", operator)
		return nil, err
	}

	p, err := s.profile(ctx, userID)
	if err != nil {
		return nil, err
	}
	liked, err := s.likes.LikedBy(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list likes: %w", err)
	}

	err = s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repository.PurgeUser(ctx, tx, userID); err != nil {
			return err
		}
		if err := s.moderation.WithTx(tx).UpsertPermanentBan(ctx, &db.Ban{
			UserID:   userID,
			Email:    p.Email,
			Reason:   "account deleted",
			BannedBy: operator,
		}); err != nil {
			return fmt.Errorf("blacklist email: %w", err)
		}
		return s.profiles.WithTx(tx).Delete(ctx, userID)
	})
	if err != nil {
		s.appCtx.Logger.Error("delete user failed", "user_id", userID, "err", err)
		return nil, err
	}
	metrics.Bans.WithLabelValues("deletion").Inc()
	s.appCtx.Logger.Info("user deleted", "user_id", userID, "by", operator)

	s.presence.Evict(ctx, userID)
	s.invalidateLikeCounts(ctx, append(liked, userID)...)

	res := &DeleteResult{Deleted: true}
	if p.ExternalID == nil {
		return res, nil
	}
	if err := s.revoker.Revoke(ctx, *p.ExternalID); err != nil {
		s.appCtx.Logger.Error("identity revocation failed after local deletion",
			"user_id", userID, "external_id", *p.ExternalID, "err", err)
		return res, nil
	}
	res.IdentityRevoked = true
	return res, nil
}

func (s *Service) profile(ctx context.Context, userID string) (*db.Profile, error) {
	p, err := s.profiles.FindByID(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile: %w", err)
	}
	return p, nil
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
