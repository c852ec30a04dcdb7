// Package messaging is the per-match message log and its realtime fan-out.
package messaging

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/api"
	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	"github.com/oggyb/campus-connect/internal/metrics"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
	"github.com/oggyb/campus-connect/internal/repository"
)

// ChatMarker is told about every delivered message so a dice match stops
// counting down once the pair talks. ExpireLapsed runs before the send so a
// dice match whose window already passed cannot be kept alive by it.
type ChatMarker interface {
	ExpireLapsed(ctx context.Context, a, b string) (bool, error)
	MarkChatted(ctx context.Context, a, b string) (bool, error)
}

type Service struct {
	appCtx     *app.AppContext
	matches    *repository.MatchRepository
	blocks     *repository.BlockRepository
	messages   *repository.MessageRepository
	moderation *repository.ModerationRepository
	chats      ChatMarker
}

func NewService(appCtx *app.AppContext, chats ChatMarker) *Service {
	return &Service{
		appCtx:     appCtx,
		matches:    repository.NewMatchRepository(appCtx.DB),
		blocks:     repository.NewBlockRepository(appCtx.DB),
		messages:   repository.NewMessageRepository(appCtx.DB),
		moderation: repository.NewModerationRepository(appCtx.DB),
		chats:      chats,
	}
}

// Send appends a message from sender to the other participant of matchID.
//
// Behavior:
//   - Unknown match: ErrMatchNotFound. Sender outside the match: ErrForbidden.
//   - A banned participant or a block in either direction refuses the send,
//     whether or not the match still exists.
//   - A dice match whose window lapsed is expired first and the send fails
//     with ErrMatchNotFound.
//   - The timestamp is assigned by the server.
//   - After storing, the pair's dice match is marked chatted and the message
//     is published on the match channel. Both are best effort.
func (s *Service) Send(ctx context.Context, matchID, senderID, body string) (*db.Message, error) {
	s.appCtx.Logger.Debug("Send called", "match_id", matchID, "sender", senderID)

	if strings.TrimSpace(body) == "" {
		return nil, svcErr.Invalid("message body is empty")
	}

	m, err := s.participantMatch(ctx, matchID, senderID)
	if err != nil {
		return nil, err
	}
	receiverID := m.Counterpart(senderID)

	for _, id := range []string{senderID, receiverID} {
		banned, err := s.moderation.IsBanned(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("check ban: %w", err)
		}
		if banned {
			metrics.MessagesRefused.WithLabelValues("banned").Inc()
			return nil, svcErr.ErrBanned.WithMsg("messaging is disabled for banned accounts")
		}
	}

	blocked, err := s.blocks.ExistsEither(ctx, senderID, receiverID)
	if err != nil {
		return nil, fmt.Errorf("check block: %w", err)
	}
	if blocked {
		metrics.MessagesRefused.WithLabelValues("blocked").Inc()
		return nil, svcErr.ErrBlocked
	}

	if s.chats != nil {
		lapsed, err := s.chats.ExpireLapsed(ctx, senderID, receiverID)
		if err != nil {
			return nil, fmt.Errorf("check dice expiry: %w", err)
		}
		if lapsed {
			return nil, svcErr.ErrMatchNotFound
		}
	}

	msg, err := s.messages.Create(ctx, senderID, receiverID, body)
	if err != nil {
		return nil, fmt.Errorf("store message: %w", err)
	}
	metrics.MessagesSent.Inc()

	if s.chats != nil {
		if _, err := s.chats.MarkChatted(ctx, senderID, receiverID); err != nil {
			s.appCtx.Logger.Warn("mark dice match chatted failed", "match_id", matchID, "err", err)
		}
	}
	s.publish(ctx, matchID, msg)
	return msg, nil
}

// List returns the whole history of matchID, oldest first.
func (s *Service) List(ctx context.Context, matchID, userID string) ([]db.Message, error) {
	m, err := s.participantMatch(ctx, matchID, userID)
	if err != nil {
		return nil, err
	}
	return s.messages.ListByPair(ctx, m.UserA, m.UserB)
}

// Subscribe delivers messages published on matchID until ctx ends or deliver
// fails. Delivery is at-most-once; clients de-duplicate by id and use List
// to catch up.
func (s *Service) Subscribe(ctx context.Context, matchID, userID string, deliver func(*pb.Message) error) error {
	if _, err := s.participantMatch(ctx, matchID, userID); err != nil {
		return err
	}

	sub, err := s.appCtx.RedisCache.Subscribe(ctx, s.appCtx.RedisCache.ChannelForMatch(matchID))
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-ch:
			if !ok {
				return nil
			}
			var msg pb.Message
			if err := protojson.Unmarshal([]byte(raw.Payload), &msg); err != nil {
				s.appCtx.Logger.Warn("dropping malformed realtime payload", "match_id", matchID, "err", err)
				continue
			}
			if err := deliver(&msg); err != nil {
				return err
			}
		}
	}
}

func (s *Service) participantMatch(ctx context.Context, matchID, userID string) (*db.Match, error) {
	m, err := s.matches.FindByID(ctx, matchID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, svcErr.ErrMatchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find match: %w", err)
	}
	if m.Counterpart(userID) == "" {
		return nil, svcErr.ErrForbidden.WithMsg("not a participant of this match")
	}
	return m, nil
}

func (s *Service) publish(ctx context.Context, matchID string, msg *db.Message) {
	payload, err := protojson.Marshal(api.NewMessage(matchID, msg))
	if err != nil {
		s.appCtx.Logger.Warn("encode realtime payload failed", "err", err)
		return
	}
	if err := s.appCtx.RedisCache.Publish(ctx, s.appCtx.RedisCache.ChannelForMatch(matchID), payload); err != nil {
		s.appCtx.Logger.Warn("realtime publish failed", "match_id", matchID, "err", err)
	}
}
