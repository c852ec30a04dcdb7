package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/db"
)

type FriendRequestRepository struct {
	db *gorm.DB
}

func NewFriendRequestRepository(database *gorm.DB) *FriendRequestRepository {
	return &FriendRequestRepository{db: database}
}

func (r *FriendRequestRepository) WithTx(tx *gorm.DB) *FriendRequestRepository {
	return &FriendRequestRepository{db: tx}
}

func (r *FriendRequestRepository) FindByID(ctx context.Context, id string) (*db.FriendRequest, error) {
	var fr db.FriendRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&fr).Error; err != nil {
		return nil, err
	}
	return &fr, nil
}

// FindByPair returns the request sender -> receiver, or gorm.ErrRecordNotFound.
func (r *FriendRequestRepository) FindByPair(ctx context.Context, senderID, receiverID string) (*db.FriendRequest, error) {
	var fr db.FriendRequest
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		First(&fr).Error
	if err != nil {
		return nil, err
	}
	return &fr, nil
}

// Create inserts a new pending request.
func (r *FriendRequestRepository) Create(ctx context.Context, senderID, receiverID string) (*db.FriendRequest, error) {
	fr := db.FriendRequest{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     db.FriendRequestPending,
	}
	if err := r.db.WithContext(ctx).Create(&fr).Error; err != nil {
		return nil, err
	}
	return &fr, nil
}

// Transition moves request id to status `to` only if its current status is one
// of `from`. Returns whether a row changed.
func (r *FriendRequestRepository) Transition(
	ctx context.Context,
	id string,
	to db.FriendRequestStatus,
	from ...db.FriendRequestStatus,
) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&db.FriendRequest{}).
		Where("id = ? AND status IN ?", id, from).
		Update("status", to)
	return res.RowsAffected > 0, res.Error
}

// ListIncoming returns pending requests addressed to userID, newest first.
func (r *FriendRequestRepository) ListIncoming(ctx context.Context, userID string) ([]db.FriendRequest, error) {
	var out []db.FriendRequest
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", userID, db.FriendRequestPending).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// ListOutgoing returns pending requests sent by userID, newest first.
func (r *FriendRequestRepository) ListOutgoing(ctx context.Context, userID string) ([]db.FriendRequest, error) {
	var out []db.FriendRequest
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", userID, db.FriendRequestPending).
		Order("created_at DESC").
		Find(&out).Error
	return out, err
}

// DeleteBetween removes requests in both directions between a and b.
func (r *FriendRequestRepository) DeleteBetween(ctx context.Context, a, b string) error {
	return r.db.WithContext(ctx).
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Delete(&db.FriendRequest{}).Error
}

func (r *FriendRequestRepository) DeleteForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Delete(&db.FriendRequest{}).Error
}
