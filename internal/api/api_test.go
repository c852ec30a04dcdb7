package api_test

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/campus-connect/internal/api"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
)

func TestValidate_ReportsFirstFailingField(t *testing.T) {
	require.NoError(t, api.Validate(
		api.Field("match_id", "m1", "required,max=36"),
		api.Field("body", "hi", "required,nonblank,max=2000"),
	))

	err := api.Validate(
		api.Field("match_id", "m1", "required,max=36"),
		api.Field("body", "   ", "required,nonblank,max=2000"),
	)
	require.Error(t, err)
	assert.Equal(t, svcErr.KindInvalidArgument, svcErr.KindOf(err))
	assert.Contains(t, err.Error(), "body failed nonblank")

	err = api.Validate(api.Field("user_ids", make([]string, 201), "max=200"))
	require.Error(t, err)
	assert.Equal(t, svcErr.KindInvalidArgument, svcErr.KindOf(err))
	assert.Contains(t, err.Error(), "user_ids failed max=200")
}

func TestNewProfile_DecodesInterests(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	p := api.NewProfile(log, &db.Profile{ID: "a", Name: "Ada", Year: 2, Interests: []byte(`["chess","go"]`)})
	assert.Equal(t, "a", p.GetId())
	assert.Equal(t, int32(2), p.GetYear())
	assert.Equal(t, []string{"chess", "go"}, p.GetInterests())
	assert.Empty(t, buf.String())
}

func TestNewProfile_LogsUndecodableInterests(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	p := api.NewProfile(log, &db.Profile{ID: "a", Name: "Ada", Interests: []byte(`{"chess":true}`)})
	assert.Equal(t, "Ada", p.GetName())
	assert.Nil(t, p.GetInterests())
	assert.Contains(t, buf.String(), "stored interests are not a JSON string list")
	assert.Contains(t, buf.String(), "user_id=a")
}

func TestNewDiceMatch_ShowsOtherSide(t *testing.T) {
	dm := &db.DiceMatch{ID: "d1", MatchID: "m1", UserA: "a", UserB: "b", DiceNumber: 4, ExpiresAt: time.Unix(100, 0)}

	assert.Equal(t, "b", api.NewDiceMatch("a", dm).GetUserId())
	fromB := api.NewDiceMatch("b", dm)
	assert.Equal(t, "a", fromB.GetUserId())
	assert.Equal(t, int32(4), fromB.GetDiceNumber())
	assert.Equal(t, int64(100), fromB.GetExpiresAtUnix())
}
