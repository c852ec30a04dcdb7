// Package api turns stored rows into the campus.v1 wire messages and checks
// incoming request fields.
package api

import (
	"encoding/json"
	"log/slog"

	"github.com/oggyb/campus-connect/internal/db"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
)

// NewProfile renders p. Interests that do not decode are logged and left out
// so one bad row cannot fail a login.
func NewProfile(log *slog.Logger, p *db.Profile) *pb.Profile {
	out := &pb.Profile{
		Id:         p.ID,
		Email:      p.Email,
		Name:       p.Name,
		Bio:        p.Bio,
		Department: p.Department,
		Year:       int32(p.Year),
		Verified:   p.Verified,
	}
	if len(p.Interests) > 0 {
		if err := json.Unmarshal(p.Interests, &out.Interests); err != nil {
			log.Warn("stored interests are not a JSON string list", "user_id", p.ID, "err", err)
			out.Interests = nil
		}
	}
	return out
}

func NewWarnings(ws []db.Warning) []*pb.Warning {
	out := make([]*pb.Warning, 0, len(ws))
	for _, w := range ws {
		out = append(out, &pb.Warning{
			Id:            w.ID,
			Reason:        w.Reason,
			Resolved:      w.Resolved,
			UnixTimestamp: w.CreatedAt.UnixMilli(),
		})
	}
	return out
}

func NewFriendRequest(fr *db.FriendRequest) *pb.FriendRequest {
	return &pb.FriendRequest{
		Id:            fr.ID,
		SenderId:      fr.SenderID,
		ReceiverId:    fr.ReceiverID,
		Status:        string(fr.Status),
		UnixTimestamp: fr.CreatedAt.UnixMilli(),
	}
}

// NewMessage renders m as seen inside match matchID.
func NewMessage(matchID string, m *db.Message) *pb.Message {
	return &pb.Message{
		Id:         m.ID,
		MatchId:    matchID,
		SenderId:   m.SenderID,
		ReceiverId: m.ReceiverID,
		Body:       m.Body,
		UnixMillis: m.CreatedAt.UnixMilli(),
	}
}

// NewDiceMatch renders dm from userID's side.
func NewDiceMatch(userID string, dm *db.DiceMatch) *pb.DiceMatch {
	other := dm.UserA
	if other == userID {
		other = dm.UserB
	}
	return &pb.DiceMatch{
		Id:            dm.ID,
		MatchId:       dm.MatchID,
		UserId:        other,
		DiceNumber:    int32(dm.DiceNumber),
		ExpiresAtUnix: dm.ExpiresAt.Unix(),
		HasChatted:    dm.HasChatted,
	}
}
