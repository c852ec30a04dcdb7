package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/campus-connect/internal/db"
)

// MatchRepository owns Match rows. Every lookup goes through the canonical
// (UserA, UserB) key, so a pair is always a single-row lookup.
type MatchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(database *gorm.DB) *MatchRepository {
	return &MatchRepository{db: database}
}

func (r *MatchRepository) WithTx(tx *gorm.DB) *MatchRepository {
	return &MatchRepository{db: tx}
}

// CreateCanonical inserts Match(a, b) unless one already exists.
//
// Behavior:
//   - The pair is reordered so UserA < UserB before the insert.
//   - A conflict on idx_matches_pair is not an error: the existing row is
//     loaded and returned with created = false.
func (r *MatchRepository) CreateCanonical(
	ctx context.Context,
	a, b string,
	origin db.MatchOrigin,
) (*db.Match, bool, error) {
	ua, ub := db.CanonicalPair(a, b)
	m := db.Match{ID: uuid.NewString(), UserA: ua, UserB: ub, Origin: origin}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_a"}, {Name: "user_b"}},
			DoNothing: true,
		}).
		Create(&m)
	if res.Error != nil {
		return nil, false, res.Error
	}
	if res.RowsAffected > 0 {
		return &m, true, nil
	}

	existing, err := r.FindByPair(ctx, ua, ub)
	if err != nil {
		return nil, false, err
	}
	return existing, false, nil
}

// FindByPair returns the match between a and b, or gorm.ErrRecordNotFound.
func (r *MatchRepository) FindByPair(ctx context.Context, a, b string) (*db.Match, error) {
	ua, ub := db.CanonicalPair(a, b)
	var m db.Match
	if err := r.db.WithContext(ctx).Where("user_a = ? AND user_b = ?", ua, ub).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MatchRepository) FindByID(ctx context.Context, id string) (*db.Match, error) {
	var m db.Match
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

// Exists reports whether a and b are matched.
func (r *MatchRepository) Exists(ctx context.Context, a, b string) (bool, error) {
	_, err := r.FindByPair(ctx, a, b)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return err == nil, err
}

// ListForUser returns the user's matches, newest first.
func (r *MatchRepository) ListForUser(ctx context.Context, userID string) ([]db.Match, error) {
	var matches []db.Match
	err := r.db.WithContext(ctx).
		Where("user_a = ? OR user_b = ?", userID, userID).
		Order("created_at DESC, id DESC").
		Find(&matches).Error
	return matches, err
}

// DeleteByPair removes the pair's match row; a missing row is not an error.
func (r *MatchRepository) DeleteByPair(ctx context.Context, a, b string) error {
	ua, ub := db.CanonicalPair(a, b)
	return r.db.WithContext(ctx).
		Where("user_a = ? AND user_b = ?", ua, ub).
		Delete(&db.Match{}).Error
}

func (r *MatchRepository) DeleteForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("user_a = ? OR user_b = ?", userID, userID).
		Delete(&db.Match{}).Error
}
