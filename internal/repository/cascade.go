package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// PurgePair resets a and b to strangers: messages, dice match metadata, the
// match, friend requests and likes go, most dependent first. Blocks stay.
//
// Every step deletes by key, so re-running after a partial failure only
// touches rows that are still there.
func PurgePair(ctx context.Context, tx *gorm.DB, a, b string) error {
	if err := NewMessageRepository(tx).DeleteByPair(ctx, a, b); err != nil {
		return fmt.Errorf("delete messages: %w", err)
	}
	if err := NewDiceRepository(tx).DeactivatePair(ctx, a, b); err != nil {
		return fmt.Errorf("deactivate dice matches: %w", err)
	}
	if err := NewMatchRepository(tx).DeleteByPair(ctx, a, b); err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if err := NewFriendRequestRepository(tx).DeleteBetween(ctx, a, b); err != nil {
		return fmt.Errorf("delete friend requests: %w", err)
	}
	if err := NewLikeRepository(tx).DeleteBetween(ctx, a, b); err != nil {
		return fmt.Errorf("delete likes: %w", err)
	}
	return nil
}

// PurgeUser removes the user's whole relationship and message graph. The
// profile row and ban bookkeeping are left to the caller.
func PurgeUser(ctx context.Context, tx *gorm.DB, userID string) error {
	steps := []struct {
		name string
		run  func(context.Context, string) error
	}{
		{"warnings", NewModerationRepository(tx).DeleteWarningsForUser},
		{"messages", NewMessageRepository(tx).DeleteForUser},
		{"dice", NewDiceRepository(tx).DeleteForUser},
		{"matches", NewMatchRepository(tx).DeleteForUser},
		{"likes", NewLikeRepository(tx).DeleteForUser},
		{"blocks", NewBlockRepository(tx).DeleteForUser},
		{"friend requests", NewFriendRequestRepository(tx).DeleteForUser},
	}
	for _, step := range steps {
		if err := step.run(ctx, userID); err != nil {
			return fmt.Errorf("delete %s: %w", step.name, err)
		}
	}
	return nil
}
