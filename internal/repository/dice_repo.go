package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/campus-connect/internal/db"
)

// DiceRepository stores daily rolls and the expiry metadata of dice matches.
type DiceRepository struct {
	db *gorm.DB
}

func NewDiceRepository(database *gorm.DB) *DiceRepository {
	return &DiceRepository{db: database}
}

func (r *DiceRepository) WithTx(tx *gorm.DB) *DiceRepository {
	return &DiceRepository{db: tx}
}

// FindRoll returns the user's roll for day, or nil if there is none.
func (r *DiceRepository) FindRoll(ctx context.Context, userID, day string) (*db.DiceRoll, error) {
	var roll db.DiceRoll
	err := r.db.WithContext(ctx).Where("user_id = ? AND day = ?", userID, day).First(&roll).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &roll, nil
}

// CreateRoll persists roll unless (user, day) already has one, then returns
// the stored row. created is false when another roll won.
func (r *DiceRepository) CreateRoll(ctx context.Context, roll *db.DiceRoll) (*db.DiceRoll, bool, error) {
	if roll.ID == "" {
		roll.ID = uuid.NewString()
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "day"}},
			DoNothing: true,
		}).
		Create(roll)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return roll, true, nil
	}
	stored, err := r.FindRoll(ctx, roll.UserID, roll.Day)
	if err != nil {
		return nil, false, err
	}
	if stored == nil {
		return nil, false, gorm.ErrRecordNotFound
	}
	return stored, false, nil
}

// SameNumberRoll is a roll joined with the roller's display name.
type SameNumberRoll struct {
	UserID           string
	Name             string
	HasSelectedMatch bool
}

// ListSameNumber returns everyone except excludeUserID who rolled number on day.
func (r *DiceRepository) ListSameNumber(ctx context.Context, day string, number int, excludeUserID string) ([]SameNumberRoll, error) {
	var out []SameNumberRoll
	err := r.db.WithContext(ctx).
		Table("dice_rolls r").
		Select("r.user_id AS user_id, p.name AS name, r.has_selected_match AS has_selected_match").
		Joins("JOIN profiles p ON p.id = r.user_id").
		Where("r.day = ? AND r.dice_number = ? AND r.user_id <> ?", day, number, excludeUserID).
		Order("r.rolled_at ASC").
		Scan(&out).Error
	return out, err
}

// ConsumeSelection flips has_selected_match for the user's roll on day.
// Returns false when the slot was already used.
func (r *DiceRepository) ConsumeSelection(ctx context.Context, userID, day, targetID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.DiceRoll{}).
		Where("user_id = ? AND day = ? AND has_selected_match = ?", userID, day, false).
		Updates(map[string]any{"has_selected_match": true, "selected_user_id": targetID})
	return res.RowsAffected > 0, res.Error
}

func (r *DiceRepository) CreateMatch(ctx context.Context, dm *db.DiceMatch) error {
	if dm.ID == "" {
		dm.ID = uuid.NewString()
	}
	dm.UserA, dm.UserB = db.CanonicalPair(dm.UserA, dm.UserB)
	dm.Active = true
	return r.db.WithContext(ctx).Create(dm).Error
}

// MarkChatted flags the pair's active dice match as used. Returns whether an
// active dice match existed, had not lapsed by now and was not yet marked.
func (r *DiceRepository) MarkChatted(ctx context.Context, a, b string, now time.Time) (bool, error) {
	ua, ub := db.CanonicalPair(a, b)
	res := r.db.WithContext(ctx).
		Model(&db.DiceMatch{}).
		Where("user_a = ? AND user_b = ? AND active = ? AND has_chatted = ? AND expires_at >= ?", ua, ub, true, false, now).
		Update("has_chatted", true)
	return res.RowsAffected > 0, res.Error
}

// ListActiveForPair returns the active dice matches between a and b.
func (r *DiceRepository) ListActiveForPair(ctx context.Context, a, b string) ([]db.DiceMatch, error) {
	ua, ub := db.CanonicalPair(a, b)
	var out []db.DiceMatch
	err := r.db.WithContext(ctx).
		Where("user_a = ? AND user_b = ? AND active = ?", ua, ub, true).
		Find(&out).Error
	return out, err
}

// ListExpired returns active, unchatted dice matches whose expiry is before now.
func (r *DiceRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]db.DiceMatch, error) {
	var out []db.DiceMatch
	err := r.db.WithContext(ctx).
		Where("active = ? AND has_chatted = ? AND expires_at < ?", true, false, now).
		Order("expires_at ASC").
		Limit(limit).
		Find(&out).Error
	return out, err
}

// ListActiveForUser returns the user's active dice matches, soonest expiry first.
func (r *DiceRepository) ListActiveForUser(ctx context.Context, userID string) ([]db.DiceMatch, error) {
	var out []db.DiceMatch
	err := r.db.WithContext(ctx).
		Where("(user_a = ? OR user_b = ?) AND active = ?", userID, userID, true).
		Order("expires_at ASC").
		Find(&out).Error
	return out, err
}

// Deactivate marks a single dice match inactive if it still is.
func (r *DiceRepository) Deactivate(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.DiceMatch{}).
		Where("id = ? AND active = ?", id, true).
		Update("active", false)
	return res.RowsAffected > 0, res.Error
}

// DeactivatePair marks every active dice match between a and b inactive.
func (r *DiceRepository) DeactivatePair(ctx context.Context, a, b string) error {
	ua, ub := db.CanonicalPair(a, b)
	return r.db.WithContext(ctx).
		Model(&db.DiceMatch{}).
		Where("user_a = ? AND user_b = ? AND active = ?", ua, ub, true).
		Update("active", false).Error
}

func (r *DiceRepository) DeleteForUser(ctx context.Context, userID string) error {
	if err := r.db.WithContext(ctx).
		Where("user_a = ? OR user_b = ?", userID, userID).
		Delete(&db.DiceMatch{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&db.DiceRoll{}).Error
}
