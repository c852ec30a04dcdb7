package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/db"
)

type MessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(database *gorm.DB) *MessageRepository {
	return &MessageRepository{db: database}
}

func (r *MessageRepository) WithTx(tx *gorm.DB) *MessageRepository {
	return &MessageRepository{db: tx}
}

// Create appends a message. CreatedAt is assigned by gorm's NowFunc.
func (r *MessageRepository) Create(ctx context.Context, senderID, receiverID, body string) (*db.Message, error) {
	a, b := db.CanonicalPair(senderID, receiverID)
	msg := db.Message{
		PairA:      a,
		PairB:      b,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Body:       body,
	}
	if err := r.db.WithContext(ctx).Create(&msg).Error; err != nil {
		return nil, err
	}
	return &msg, nil
}

// ListByPair returns the full history between a and b.
//
// Ordered by created_at ASC; id breaks ties in insertion order.
func (r *MessageRepository) ListByPair(ctx context.Context, a, b string) ([]db.Message, error) {
	pa, pb := db.CanonicalPair(a, b)
	var msgs []db.Message
	err := r.db.WithContext(ctx).
		Where("pair_a = ? AND pair_b = ?", pa, pb).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error
	return msgs, err
}

func (r *MessageRepository) DeleteByPair(ctx context.Context, a, b string) error {
	pa, pb := db.CanonicalPair(a, b)
	return r.db.WithContext(ctx).
		Where("pair_a = ? AND pair_b = ?", pa, pb).
		Delete(&db.Message{}).Error
}

func (r *MessageRepository) DeleteForUser(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Delete(&db.Message{}).Error
}
