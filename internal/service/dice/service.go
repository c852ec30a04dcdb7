// Package dice runs the daily dice game: one roll per user per day, one
// partner selection per day, and 24h matches that expire unless used.
package dice

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"time"

	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	"github.com/oggyb/campus-connect/internal/metrics"
	"github.com/oggyb/campus-connect/internal/repository"
)

const sweepBatch = 100

// Service implements the dice match engine.
type Service struct {
	appCtx  *app.AppContext
	dice    *repository.DiceRepository
	matches *repository.MatchRepository
	blocks  *repository.BlockRepository
	loc     *time.Location
	roll    func() int
}

type Option func(*Service)

// WithRoller replaces the uniform 1..6 draw.
func WithRoller(f func() int) Option {
	return func(s *Service) { s.roll = f }
}

func NewService(appCtx *app.AppContext, opts ...Option) *Service {
	loc, err := time.LoadLocation(appCtx.Config.Dice.Timezone)
	if err != nil {
		appCtx.Logger.Warn("unknown dice timezone, using UTC", "tz", appCtx.Config.Dice.Timezone, "err", err)
		loc = time.UTC
	}
	s := &Service{
		appCtx:  appCtx,
		dice:    repository.NewDiceRepository(appCtx.DB),
		matches: repository.NewMatchRepository(appCtx.DB),
		blocks:  repository.NewBlockRepository(appCtx.DB),
		loc:     loc,
		roll:    func() int { return rand.IntN(6) + 1 },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Today is the current calendar day on the server clock.
func (s *Service) Today() string {
	return s.appCtx.Now().In(s.loc).Format(time.DateOnly)
}

// Roll draws today's number for the user. A second call the same day returns
// the first roll with alreadyRolled set.
func (s *Service) Roll(ctx context.Context, userID string) (*db.DiceRoll, bool, error) {
	day := s.Today()

	existing, err := s.dice.FindRoll(ctx, userID, day)
	if err != nil {
		return nil, false, fmt.Errorf("find roll: %w", err)
	}
	if existing != nil {
		return existing, true, nil
	}

	stored, created, err := s.dice.CreateRoll(ctx, &db.DiceRoll{
		UserID:     userID,
		Day:        day,
		DiceNumber: s.roll(),
		RolledAt:   s.appCtx.Now(),
	})
	if err != nil {
		return nil, false, fmt.Errorf("create roll: %w", err)
	}
	if created {
		metrics.DiceRolls.WithLabelValues(strconv.Itoa(stored.DiceNumber)).Inc()
		s.appCtx.Logger.Debug("dice rolled", "user_id", userID, "day", day, "number", stored.DiceNumber)
	}
	return stored, !created, nil
}

// ListSameNumber returns today's other rollers of the caller's number.
func (s *Service) ListSameNumber(ctx context.Context, userID string) (*db.DiceRoll, []repository.SameNumberRoll, error) {
	day := s.Today()
	roll, err := s.dice.FindRoll(ctx, userID, day)
	if err != nil {
		return nil, nil, fmt.Errorf("find roll: %w", err)
	}
	if roll == nil {
		return nil, nil, svcErr.ErrNotRolledYet
	}
	users, err := s.dice.ListSameNumber(ctx, day, roll.DiceNumber, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("list same number: %w", err)
	}
	return roll, users, nil
}

// Select pairs the caller with a same-number roller.
//
// Behavior:
//   - Preconditions, in order: caller rolled today (ErrNotRolledYet), has not
//     selected today (ErrAlreadySelected), target rolled the same number
//     (ErrNumberMismatch), the pair is not matched (ErrAlreadyFriends) and not
//     blocked (ErrBlocked).
//   - The caller's daily slot is consumed first and stays consumed even if
//     creating the match fails afterwards. The target's slot is untouched.
//   - The match expires at the caller's roll time plus the match TTL unless
//     a message is exchanged.
func (s *Service) Select(ctx context.Context, userID, targetID string) (*db.DiceMatch, error) {
	s.appCtx.Logger.Debug("dice Select called", "user_id", userID, "target", targetID)

	if userID == targetID {
		return nil, svcErr.Invalid("cannot select yourself")
	}
	day := s.Today()

	roll, err := s.dice.FindRoll(ctx, userID, day)
	if err != nil {
		return nil, fmt.Errorf("find roll: %w", err)
	}
	if roll == nil {
		return nil, svcErr.ErrNotRolledYet
	}
	if roll.HasSelectedMatch {
		return nil, svcErr.ErrAlreadySelected
	}

	targetRoll, err := s.dice.FindRoll(ctx, targetID, day)
	if err != nil {
		return nil, fmt.Errorf("find target roll: %w", err)
	}
	if targetRoll == nil || targetRoll.DiceNumber != roll.DiceNumber {
		return nil, svcErr.ErrNumberMismatch
	}

	matched, err := s.matches.Exists(ctx, userID, targetID)
	if err != nil {
		return nil, fmt.Errorf("check match: %w", err)
	}
	if matched {
		return nil, svcErr.ErrAlreadyFriends
	}
	blocked, err := s.blocks.ExistsEither(ctx, userID, targetID)
	if err != nil {
		return nil, fmt.Errorf("check block: %w", err)
	}
	if blocked {
		return nil, svcErr.ErrBlocked
	}

	consumed, err := s.dice.ConsumeSelection(ctx, userID, day, targetID)
	if err != nil {
		return nil, fmt.Errorf("consume selection: %w", err)
	}
	if !consumed {
		return nil, svcErr.ErrAlreadySelected
	}

	dm := &db.DiceMatch{
		UserA:      userID,
		UserB:      targetID,
		DiceNumber: roll.DiceNumber,
		ExpiresAt:  roll.RolledAt.Add(s.appCtx.Config.Dice.MatchTTL),
	}
	err = s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m, created, err := s.matches.WithTx(tx).CreateCanonical(ctx, userID, targetID, db.OriginDice)
		if err != nil {
			return fmt.Errorf("create match: %w", err)
		}
		if !created {
			return svcErr.ErrAlreadyFriends
		}
		dm.MatchID = m.ID
		return s.dice.WithTx(tx).CreateMatch(ctx, dm)
	})
	if err != nil {
		s.appCtx.Logger.Warn("dice selection consumed without a match", "user_id", userID, "target", targetID, "err", err)
		return nil, err
	}

	metrics.DiceSelections.Inc()
	metrics.MatchesCreated.WithLabelValues(string(db.OriginDice)).Inc()
	s.appCtx.Logger.Info("dice match created", "match_id", dm.MatchID, "expires_at", dm.ExpiresAt)
	return dm, nil
}

// MarkChatted flags the pair's active dice match as used, so it no longer
// expires. Returns whether a dice match was flagged; a lapsed one is not.
func (s *Service) MarkChatted(ctx context.Context, a, b string) (bool, error) {
	return s.dice.MarkChatted(ctx, a, b, s.appCtx.Now())
}

// ExpireLapsed removes the pair's dice match if its window has passed
// without a message. Returns whether anything was expired.
func (s *Service) ExpireLapsed(ctx context.Context, a, b string) (bool, error) {
	active, err := s.dice.ListActiveForPair(ctx, a, b)
	if err != nil {
		return false, fmt.Errorf("list pair dice matches: %w", err)
	}
	now := s.appCtx.Now()
	expired := false
	for _, dm := range active {
		if !s.isExpired(dm, now) {
			continue
		}
		removed, err := s.expire(ctx, dm)
		if err != nil {
			return false, err
		}
		expired = expired || removed
	}
	return expired, nil
}

// ListActive returns the user's live dice matches. Matches found expired on
// the way are removed before answering.
func (s *Service) ListActive(ctx context.Context, userID string) ([]db.DiceMatch, error) {
	all, err := s.dice.ListActiveForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list active: %w", err)
	}
	now := s.appCtx.Now()
	live := make([]db.DiceMatch, 0, len(all))
	for _, dm := range all {
		if s.isExpired(dm, now) {
			if _, err := s.expire(ctx, dm); err != nil {
				return nil, err
			}
			continue
		}
		live = append(live, dm)
	}
	return live, nil
}

// SweepExpired removes every expired, unchatted dice match and its pair
// state. Returns how many were removed.
func (s *Service) SweepExpired(ctx context.Context) (int, error) {
	started := time.Now()
	defer func() { metrics.SweepDuration.Observe(time.Since(started).Seconds()) }()

	total := 0
	for {
		batch, err := s.dice.ListExpired(ctx, s.appCtx.Now(), sweepBatch)
		if err != nil {
			return total, fmt.Errorf("list expired: %w", err)
		}
		for _, dm := range batch {
			removed, err := s.expire(ctx, dm)
			if err != nil {
				return total, err
			}
			if removed {
				total++
			}
		}
		if len(batch) < sweepBatch {
			return total, nil
		}
	}
}

// StartSweeper runs SweepExpired every interval until ctx is done.
func (s *Service) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			n, err := s.SweepExpired(ctx)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					return
				}
				s.appCtx.Logger.Error("dice sweep failed", "err", err)
			} else if n > 0 {
				s.appCtx.Logger.Info("dice sweep completed", "expired", n)
			}
		case <-ctx.Done():
			return
		}
	}
}

func (s *Service) isExpired(dm db.DiceMatch, now time.Time) bool {
	return dm.Active && !dm.HasChatted && now.After(dm.ExpiresAt)
}

// expire deactivates dm and, if its match is still the pair's match, resets
// the pair the same way removing a friend does.
func (s *Service) expire(ctx context.Context, dm db.DiceMatch) (bool, error) {
	var removed bool
	err := s.appCtx.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		ok, err := s.dice.WithTx(tx).Deactivate(ctx, dm.ID)
		if err != nil || !ok {
			return err
		}
		removed = true

		current, err := s.matches.WithTx(tx).FindByPair(ctx, dm.UserA, dm.UserB)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if current.ID != dm.MatchID {
			return nil
		}
		return repository.PurgePair(ctx, tx, dm.UserA, dm.UserB)
	})
	if err != nil {
		return false, fmt.Errorf("expire dice match %s: %w", dm.ID, err)
	}
	if removed {
		metrics.DiceExpired.Inc()
		metrics.PairsPurged.WithLabelValues("dice_expired").Inc()
		if err := s.appCtx.RedisCache.Del(ctx,
			s.appCtx.RedisCache.KeyForLikeCount(dm.UserA),
			s.appCtx.RedisCache.KeyForLikeCount(dm.UserB),
		); err != nil {
			s.appCtx.Logger.Warn("like count cache invalidation failed", "err", err)
		}
		s.appCtx.Logger.Info("dice match expired", "dice_match_id", dm.ID, "match_id", dm.MatchID)
	}
	return removed, nil
}
