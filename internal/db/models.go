package db

import (
	"time"

	"gorm.io/datatypes"
)

// Profile is a campus member. ID is the internal identity id (uuid string);
// ExternalID links the profile to the auth provider's user once verified.
type Profile struct {
	ID         string  `gorm:"primaryKey;size:36"`
	ExternalID *string `gorm:"uniqueIndex;size:64"`
	Email      string  `gorm:"uniqueIndex;size:128;not null"`
	Verified   bool    `gorm:"default:false"`
	Name       string  `gorm:"size:128"`
	Bio        string  `gorm:"size:1024"`
	Department string  `gorm:"size:16"`
	Year       int
	Interests  datatypes.JSON
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

// Like is a directed interest edge liker -> liked.
//
// Composite PK: (LikerID, LikedID) keeps one row per ordered pair.
// idx_likes_liked_created serves "who liked me" pagination.
type Like struct {
	LikerID   string    `gorm:"primaryKey;size:36"`
	LikedID   string    `gorm:"primaryKey;size:36;index:idx_likes_liked_created,priority:1"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_likes_liked_created,priority:2,sort:desc"`
}

type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "pending"
	FriendRequestAccepted FriendRequestStatus = "accepted"
	FriendRequestRejected FriendRequestStatus = "rejected"
)

// FriendRequest is a directed connection proposal. One row per ordered pair;
// re-sending after a rejection moves the same row back to pending.
type FriendRequest struct {
	ID         string              `gorm:"primaryKey;size:36"`
	SenderID   string              `gorm:"size:36;not null;uniqueIndex:idx_friend_requests_pair,priority:1"`
	ReceiverID string              `gorm:"size:36;not null;uniqueIndex:idx_friend_requests_pair,priority:2;index"`
	Status     FriendRequestStatus `gorm:"size:16;not null;default:'pending'"`
	CreatedAt  time.Time           `gorm:"autoCreateTime"`
	UpdatedAt  time.Time           `gorm:"autoUpdateTime"`
}

type MatchOrigin string

const (
	OriginLike    MatchOrigin = "like"
	OriginRequest MatchOrigin = "request"
	OriginDice    MatchOrigin = "dice"
)

// Match is an undirected edge stored canonically: UserA < UserB.
// idx_matches_pair is unique, so concurrent creators collapse into one row.
type Match struct {
	ID        string      `gorm:"primaryKey;size:36"`
	UserA     string      `gorm:"size:36;not null;uniqueIndex:idx_matches_pair,priority:1"`
	UserB     string      `gorm:"size:36;not null;uniqueIndex:idx_matches_pair,priority:2;index"`
	Origin    MatchOrigin `gorm:"size:16;not null"`
	CreatedAt time.Time   `gorm:"autoCreateTime"`
}

// Counterpart returns the other participant, or "" if userID is not one.
func (m Match) Counterpart(userID string) string {
	switch userID {
	case m.UserA:
		return m.UserB
	case m.UserB:
		return m.UserA
	}
	return ""
}

// Block is a directed suppression edge blocker -> blocked.
type Block struct {
	BlockerID string    `gorm:"primaryKey;size:36"`
	BlockedID string    `gorm:"primaryKey;size:36;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Message is immutable. It is scoped to the canonical pair rather than to a
// match row; removing the match deletes the pair's messages.
type Message struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement"`
	PairA      string    `gorm:"size:36;not null;index:idx_messages_pair_created,priority:1"`
	PairB      string    `gorm:"size:36;not null;index:idx_messages_pair_created,priority:2"`
	SenderID   string    `gorm:"size:36;not null"`
	ReceiverID string    `gorm:"size:36;not null"`
	Body       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index:idx_messages_pair_created,priority:3"`
}

type Warning struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"size:36;not null;index"`
	Reason    string    `gorm:"size:512;not null"`
	Resolved  bool      `gorm:"default:false"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// Ban is unique per user. A permanent ban keeps the email so the identity
// cannot register again after the profile is deleted.
type Ban struct {
	ID        string    `gorm:"primaryKey;size:36"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex"`
	Email     string    `gorm:"size:128;index"`
	Reason    string    `gorm:"size:512"`
	BannedBy  string    `gorm:"size:64"`
	Permanent bool      `gorm:"default:false;index"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// DiceRoll is unique per (UserID, Day); Day is YYYY-MM-DD in the dice timezone.
type DiceRoll struct {
	ID               string    `gorm:"primaryKey;size:36"`
	UserID           string    `gorm:"size:36;not null;uniqueIndex:idx_dice_rolls_user_day,priority:1"`
	Day              string    `gorm:"size:10;not null;uniqueIndex:idx_dice_rolls_user_day,priority:2;index:idx_dice_rolls_day_number,priority:1"`
	DiceNumber       int       `gorm:"not null;index:idx_dice_rolls_day_number,priority:2"`
	HasSelectedMatch bool      `gorm:"default:false"`
	SelectedUserID   *string   `gorm:"size:36"`
	RolledAt         time.Time `gorm:"not null"`
}

// DiceMatch carries expiry metadata for a dice-originated Match.
type DiceMatch struct {
	ID         string    `gorm:"primaryKey;size:36"`
	MatchID    string    `gorm:"size:36;not null;index"`
	UserA      string    `gorm:"size:36;not null;index:idx_dice_matches_pair,priority:1"`
	UserB      string    `gorm:"size:36;not null;index:idx_dice_matches_pair,priority:2"`
	DiceNumber int       `gorm:"not null"`
	ExpiresAt  time.Time `gorm:"not null;index:idx_dice_matches_active_expiry,priority:2"`
	HasChatted bool      `gorm:"default:false"`
	Active     bool      `gorm:"default:true;index:idx_dice_matches_active_expiry,priority:1"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

// CanonicalPair orders two ids so the smaller comes first.
func CanonicalPair(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// AllModels lists every table, in migration order.
func AllModels() []any {
	return []any{
		&Profile{}, &Like{}, &FriendRequest{}, &Match{}, &Block{}, &Message{},
		&Warning{}, &Ban{}, &DiceRoll{}, &DiceMatch{},
	}
}
