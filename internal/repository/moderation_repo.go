package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/campus-connect/internal/db"
)

// ModerationRepository stores warnings and bans.
type ModerationRepository struct {
	db *gorm.DB
}

func NewModerationRepository(database *gorm.DB) *ModerationRepository {
	return &ModerationRepository{db: database}
}

func (r *ModerationRepository) WithTx(tx *gorm.DB) *ModerationRepository {
	return &ModerationRepository{db: tx}
}

func (r *ModerationRepository) CreateWarning(ctx context.Context, userID, reason string) (*db.Warning, error) {
	w := db.Warning{ID: uuid.NewString(), UserID: userID, Reason: reason}
	if err := r.db.WithContext(ctx).Create(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

// CountWarnings counts every warning for the user, resolved or not.
func (r *ModerationRepository) CountWarnings(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Warning{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}

func (r *ModerationRepository) ListWarnings(ctx context.Context, userID string) ([]db.Warning, error) {
	var out []db.Warning
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ResolveWarning flags a warning as acknowledged. Returns false if the
// warning does not belong to the user.
func (r *ModerationRepository) ResolveWarning(ctx context.Context, userID, warningID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Warning{}).
		Where("id = ? AND user_id = ?", warningID, userID).
		Update("resolved", true)
	return res.RowsAffected > 0, res.Error
}

func (r *ModerationRepository) DeleteWarningsForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&db.Warning{}).Error
}

// FindBan returns the user's ban or nil when there is none.
func (r *ModerationRepository) FindBan(ctx context.Context, userID string) (*db.Ban, error) {
	var b db.Ban
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// IsBanned reports whether the user has an active ban.
func (r *ModerationRepository) IsBanned(ctx context.Context, userID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Ban{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// CreateBanIfAbsent inserts ban unless the user already has one. The unique
// index on user_id decides races; created is false for the loser.
func (r *ModerationRepository) CreateBanIfAbsent(ctx context.Context, ban *db.Ban) (bool, error) {
	if ban.ID == "" {
		ban.ID = uuid.NewString()
	}
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoNothing: true,
		}).
		Create(ban)
	return res.RowsAffected > 0, res.Error
}

// UpsertPermanentBan makes the user's ban permanent and records the email on
// the blacklist, creating the row if needed.
func (r *ModerationRepository) UpsertPermanentBan(ctx context.Context, ban *db.Ban) error {
	if ban.ID == "" {
		ban.ID = uuid.NewString()
	}
	ban.Permanent = true
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"email", "reason", "banned_by", "permanent"}),
		}).
		Create(ban).Error
}

// DeleteBans lifts every ban for the user and reports how many rows went.
func (r *ModerationRepository) DeleteBans(ctx context.Context, userID string) (int64, error) {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&db.Ban{})
	return res.RowsAffected, res.Error
}

// IsEmailBlacklisted reports whether a permanent ban exists for email.
func (r *ModerationRepository) IsEmailBlacklisted(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Ban{}).
		Where("email = ? AND permanent = ?", email, true).
		Count(&count).Error
	return count > 0, err
}
