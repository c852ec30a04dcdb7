package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/oggyb/campus-connect/internal/db"
	"github.com/oggyb/campus-connect/internal/utils/pagination"
)

// LikeRepository provides data access methods for the Like model.
// It encapsulates all queries related to directed interest between users.
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new repository bound to the given DB connection.
func NewLikeRepository(database *gorm.DB) *LikeRepository {
	return &LikeRepository{db: database}
}

// WithTx returns a copy of the repository that runs on tx.
func (r *LikeRepository) WithTx(tx *gorm.DB) *LikeRepository {
	return &LikeRepository{db: tx}
}

// Create inserts Like(liker -> liked).
//
// Behavior:
//   - Composite PK makes the insert idempotent: an existing row is left alone.
//   - Returns created = false when the like already existed.
//
// Example:
//
//	repo.Create(ctx, "a", "b") // user a liked user b
func (r *LikeRepository) Create(ctx context.Context, likerID, likedID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&db.Like{LikerID: likerID, LikedID: likedID})
	return res.RowsAffected > 0, res.Error
}

// Delete removes Like(liker -> liked) and reports whether a row was removed.
func (r *LikeRepository) Delete(ctx context.Context, likerID, likedID string) (bool, error) {
	res := r.db.WithContext(ctx).
		Where("liker_id = ? AND liked_id = ?", likerID, likedID).
		Delete(&db.Like{})
	return res.RowsAffected > 0, res.Error
}

// DeleteBetween removes likes in both directions between a and b.
func (r *LikeRepository) DeleteBetween(ctx context.Context, a, b string) error {
	return r.db.WithContext(ctx).
		Where("(liker_id = ? AND liked_id = ?) OR (liker_id = ? AND liked_id = ?)", a, b, b, a).
		Delete(&db.Like{}).Error
}

// HasLiked checks whether liker has liked liked.
//
// Used for the reciprocal check in Like.
func (r *LikeRepository) HasLiked(ctx context.Context, likerID, likedID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("liker_id = ? AND liked_id = ?", likerID, likedID).
		Count(&count).Error
	return count > 0, err
}

// GetLikers returns users who liked the given recipient.
//
// Behavior:
//   - Excludes users the recipient has blocked.
//   - Ordered by created_at DESC, liker_id DESC.
//   - Supports cursor-based pagination via paginationToken.
//
// Example:
//
//	repo.GetLikers(ctx, "u42", nil, 20) // first 20 people who liked u42
func (r *LikeRepository) GetLikers(
	ctx context.Context,
	recipientID string,
	paginationToken *string,
	limit int,
) ([]db.Like, *string, error) {
	return r.pageLikers(ctx, recipientID, paginationToken, limit, false)
}

// GetNewLikers returns users who liked the recipient and have not been liked back.
//
// Behavior:
//   - Same ordering, exclusions and pagination as GetLikers.
//   - Excludes mutual likes (those pairs are matches already).
func (r *LikeRepository) GetNewLikers(
	ctx context.Context,
	recipientID string,
	paginationToken *string,
	limit int,
) ([]db.Like, *string, error) {
	return r.pageLikers(ctx, recipientID, paginationToken, limit, true)
}

func (r *LikeRepository) pageLikers(
	ctx context.Context,
	recipientID string,
	paginationToken *string,
	limit int,
	onlyUnreciprocated bool,
) ([]db.Like, *string, error) {
	var likes []db.Like

	cursor, err := pagination.Decode(getString(paginationToken))
	if err != nil {
		return nil, nil, err
	}

	query := r.likersQuery(ctx, recipientID).
		Order("l.created_at DESC, l.liker_id DESC").
		Limit(limit + 1)

	if onlyUnreciprocated {
		// subquery to exclude mutual likes
		subQuery := r.db.
			Table("likes").
			Select("1").
			Where("liker_id = l.liked_id AND liked_id = l.liker_id")
		query = query.Where("NOT EXISTS (?)", subQuery)
	}

	// apply cursor
	if !cursor.IsZero() {
		ts := time.UnixMicro(cursor.CreatedMicros).UTC()
		query = query.Where(
			"(l.created_at < ? OR (l.created_at = ? AND l.liker_id < ?))",
			ts, ts, cursor.UserID,
		)
	}

	if err := query.Find(&likes).Error; err != nil {
		return nil, nil, err
	}

	// pagination: build next cursor if needed
	var nextToken *string
	if len(likes) > limit {
		last := likes[limit-1]
		token, _ := pagination.Encode(pagination.Cursor{
			UserID:        last.LikerID,
			CreatedMicros: last.CreatedAt.UnixMicro(),
		})
		nextToken = &token
		likes = likes[:limit]
	}

	return likes, nextToken, nil
}

// CountLikers returns how many users liked the given recipient.
//
// Behavior:
//   - Applies the same block exclusion as GetLikers.
//   - Used behind the Redis counter (DB is the fallback).
func (r *LikeRepository) CountLikers(ctx context.Context, recipientID string) (int64, error) {
	var count int64
	if err := r.likersQuery(ctx, recipientID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// LikedBy returns the ids the user has liked.
func (r *LikeRepository) LikedBy(ctx context.Context, likerID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&db.Like{}).
		Where("liker_id = ?", likerID).
		Pluck("liked_id", &ids).Error
	return ids, err
}

// DeleteForUser removes every like given or received by userID.
func (r *LikeRepository) DeleteForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("liker_id = ? OR liked_id = ?", userID, userID).
		Delete(&db.Like{}).Error
}

func (r *LikeRepository) likersQuery(ctx context.Context, recipientID string) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("likes l").
		Where("l.liked_id = ?", recipientID).
		Where(`
			NOT EXISTS (
				SELECT 1 FROM blocks b
				WHERE b.blocker_id = ?
				  AND b.blocked_id = l.liker_id
			)`, recipientID)
}

// getString safely dereferences a string pointer for pagination tokens.
func getString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
