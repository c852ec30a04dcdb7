package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/db"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(database *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: database}
}

func (r *ProfileRepository) WithTx(tx *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: tx}
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*db.Profile, error) {
	var p db.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) FindByExternalID(ctx context.Context, externalID string) (*db.Profile, error) {
	var p db.Profile
	if err := r.db.WithContext(ctx).Where("external_id = ?", externalID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepository) FindByEmail(ctx context.Context, email string) (*db.Profile, error) {
	var p db.Profile
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// Exists reports whether a profile with id exists.
func (r *ProfileRepository) Exists(ctx context.Context, id string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&db.Profile{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *ProfileRepository) Create(ctx context.Context, p *db.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

// LinkExternal attaches externalID to a legacy profile that has none yet and
// marks it verified. Returns false when the profile was linked concurrently.
func (r *ProfileRepository) LinkExternal(ctx context.Context, id, externalID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("id = ? AND external_id IS NULL", id).
		Updates(map[string]any{"external_id": externalID, "verified": true})
	return res.RowsAffected > 0, res.Error
}

func (r *ProfileRepository) MarkVerified(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Model(&db.Profile{}).
		Where("id = ? AND verified = ?", id, false).
		Update("verified", true).Error
}

// Names returns display names keyed by id for the given ids.
func (r *ProfileRepository) Names(ctx context.Context, ids []string) (map[string]string, error) {
	out := make(map[string]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []db.Profile
	if err := r.db.WithContext(ctx).Select("id", "name").Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, p := range rows {
		out[p.ID] = p.Name
	}
	return out, nil
}

// Delete removes the profile row; deleting a missing row is not an error.
func (r *ProfileRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Where("id = ?", id).Delete(&db.Profile{}).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}
