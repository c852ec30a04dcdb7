package dice_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/oggyb/campus-connect/internal/auth"
	"github.com/oggyb/campus-connect/internal/db"
	svcErr "github.com/oggyb/campus-connect/internal/errors"
	pb "github.com/oggyb/campus-connect/internal/proto/campus"
	"github.com/oggyb/campus-connect/internal/repository"
	"github.com/oggyb/campus-connect/internal/service/dice"
	"github.com/oggyb/campus-connect/internal/testutil"
)

var start = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

// faces hands out the queued numbers in order, then repeats the last one.
type faces struct {
	mu   sync.Mutex
	next []int
}

func (f *faces) roll() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := f.next[0]
	if len(f.next) > 1 {
		f.next = f.next[1:]
	}
	return n
}

func setupService(t *testing.T, numbers ...int) (*testutil.Env, *dice.Service) {
	t.Helper()
	env := testutil.NewEnv(t, start)
	testutil.Profiles(t, env.DB, "a", "b", "c")
	f := &faces{next: numbers}
	return env, dice.NewService(env.App, dice.WithRoller(f.roll))
}

func TestRoll_OncePerDay(t *testing.T) {
	env, svc := setupService(t, 3, 6)
	ctx := context.Background()

	first, already, err := svc.Roll(ctx, "a")
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, 3, first.DiceNumber)
	assert.Equal(t, "2025-03-01", first.Day)

	env.Clock.Advance(2 * time.Hour)
	second, already, err := svc.Roll(ctx, "a")
	require.NoError(t, err)
	assert.True(t, already)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 3, second.DiceNumber)

	env.Clock.Advance(24 * time.Hour)
	next, already, err := svc.Roll(ctx, "a")
	require.NoError(t, err)
	assert.False(t, already)
	assert.Equal(t, 6, next.DiceNumber)
	assert.Equal(t, "2025-03-02", next.Day)
}

func TestRoll_DrawIsADieFace(t *testing.T) {
	env := testutil.NewEnv(t, start)
	testutil.Profiles(t, env.DB, "a")
	svc := dice.NewService(env.App)

	roll, _, err := svc.Roll(context.Background(), "a")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, roll.DiceNumber, 1)
	assert.LessOrEqual(t, roll.DiceNumber, 6)
}

func TestDice_SameNumberScenario(t *testing.T) {
	env, svc := setupService(t, 4, 4, 5)
	ctx := context.Background()

	rollA, _, err := svc.Roll(ctx, "a")
	require.NoError(t, err)
	env.Clock.Advance(time.Minute)
	_, _, err = svc.Roll(ctx, "b")
	require.NoError(t, err)
	_, _, err = svc.Roll(ctx, "c")
	require.NoError(t, err)

	_, same, err := svc.ListSameNumber(ctx, "a")
	require.NoError(t, err)
	require.Len(t, same, 1)
	assert.Equal(t, "b", same[0].UserID)
	assert.Equal(t, "B", same[0].Name)
	assert.False(t, same[0].HasSelectedMatch)

	env.Clock.Advance(time.Hour)
	dm, err := svc.Select(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, dm.Active)
	assert.False(t, dm.HasChatted)
	assert.True(t, dm.ExpiresAt.Equal(rollA.RolledAt.Add(24*time.Hour)))

	var m db.Match
	require.NoError(t, env.DB.First(&m, "id = ?", dm.MatchID).Error)
	assert.Equal(t, db.OriginDice, m.Origin)

	_, err = svc.Select(ctx, "c", "a")
	assert.ErrorIs(t, err, svcErr.ErrNumberMismatch)

	// the target keeps its own slot but the pair is already matched
	_, err = svc.Select(ctx, "b", "a")
	assert.ErrorIs(t, err, svcErr.ErrAlreadyFriends)

	_, err = svc.Select(ctx, "a", "b")
	assert.ErrorIs(t, err, svcErr.ErrAlreadySelected)

	_, same, err = svc.ListSameNumber(ctx, "b")
	require.NoError(t, err)
	require.Len(t, same, 1)
	assert.True(t, same[0].HasSelectedMatch)

	var matches, diceMatches int64
	require.NoError(t, env.DB.Model(&db.Match{}).Count(&matches).Error)
	require.NoError(t, env.DB.Model(&db.DiceMatch{}).Count(&diceMatches).Error)
	assert.Equal(t, int64(1), matches)
	assert.Equal(t, int64(1), diceMatches)
}

func TestDice_RequiresRoll(t *testing.T) {
	_, svc := setupService(t, 2)
	ctx := context.Background()

	_, _, err := svc.ListSameNumber(ctx, "a")
	assert.ErrorIs(t, err, svcErr.ErrNotRolledYet)

	_, err = svc.Select(ctx, "a", "b")
	assert.ErrorIs(t, err, svcErr.ErrNotRolledYet)

	_, _, err = svc.Roll(ctx, "a")
	require.NoError(t, err)
	_, err = svc.Select(ctx, "a", "b")
	assert.ErrorIs(t, err, svcErr.ErrNumberMismatch, "target has not rolled")
}

func TestDice_BlockedPairCannotBeSelected(t *testing.T) {
	env, svc := setupService(t, 1)
	ctx := context.Background()
	require.NoError(t, env.DB.Create(&db.Block{BlockerID: "b", BlockedID: "a"}).Error)

	_, _, err := svc.Roll(ctx, "a")
	require.NoError(t, err)
	_, _, err = svc.Roll(ctx, "b")
	require.NoError(t, err)

	_, err = svc.Select(ctx, "a", "b")
	assert.ErrorIs(t, err, svcErr.ErrBlocked)
}

func rollAndSelect(t *testing.T, svc *dice.Service) *db.DiceMatch {
	t.Helper()
	ctx := context.Background()
	_, _, err := svc.Roll(ctx, "a")
	require.NoError(t, err)
	_, _, err = svc.Roll(ctx, "b")
	require.NoError(t, err)
	dm, err := svc.Select(ctx, "a", "b")
	require.NoError(t, err)
	return dm
}

func TestSweepExpired_RemovesUnchattedMatch(t *testing.T) {
	env, svc := setupService(t, 2)
	ctx := context.Background()
	dm := rollAndSelect(t, svc)

	_, err := repository.NewLikeRepository(env.DB).Create(ctx, "a", "b")
	require.NoError(t, err)

	n, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n, "not expired yet")

	env.Clock.Advance(24*time.Hour + time.Second)
	n, err = svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	exists, err := repository.NewMatchRepository(env.DB).Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, exists)

	var stored db.DiceMatch
	require.NoError(t, env.DB.First(&stored, "id = ?", dm.ID).Error)
	assert.False(t, stored.Active)

	liked, err := repository.NewLikeRepository(env.DB).HasLiked(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, liked)

	n, err = svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestSweepExpired_KeepsChattedMatch(t *testing.T) {
	env, svc := setupService(t, 2)
	ctx := context.Background()
	rollAndSelect(t, svc)

	marked, err := svc.MarkChatted(ctx, "b", "a")
	require.NoError(t, err)
	assert.True(t, marked)
	marked, err = svc.MarkChatted(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, marked)

	env.Clock.Advance(48 * time.Hour)
	n, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	exists, err := repository.NewMatchRepository(env.DB).Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestExpireLapsed_OnlyAfterWindow(t *testing.T) {
	env, svc := setupService(t, 4)
	ctx := context.Background()
	rollAndSelect(t, svc)

	lapsed, err := svc.ExpireLapsed(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, lapsed)

	env.Clock.Advance(25 * time.Hour)
	marked, err := svc.MarkChatted(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, marked)

	lapsed, err = svc.ExpireLapsed(ctx, "b", "a")
	require.NoError(t, err)
	assert.True(t, lapsed)

	exists, err := repository.NewMatchRepository(env.DB).Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestListActive_ExpiresLazily(t *testing.T) {
	env, svc := setupService(t, 5)
	ctx := context.Background()
	rollAndSelect(t, svc)

	active, err := svc.ListActive(ctx, "b")
	require.NoError(t, err)
	require.Len(t, active, 1)

	env.Clock.Advance(25 * time.Hour)
	active, err = svc.ListActive(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, active)

	exists, err := repository.NewMatchRepository(env.DB).Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestExpiry_LeavesReplacementMatchAlone(t *testing.T) {
	env, svc := setupService(t, 2)
	ctx := context.Background()
	dm := rollAndSelect(t, svc)

	// the pair was reset and matched again through likes
	require.NoError(t, env.DB.Delete(&db.Match{}, "id = ?", dm.MatchID).Error)
	_, _, err := repository.NewMatchRepository(env.DB).CreateCanonical(ctx, "a", "b", db.OriginLike)
	require.NoError(t, err)

	env.Clock.Advance(25 * time.Hour)
	n, err := svc.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	exists, err := repository.NewMatchRepository(env.DB).Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestStartSweeper_StopsOnCancel(t *testing.T) {
	_, svc := setupService(t, 1)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		svc.StartSweeper(ctx, 10*time.Millisecond)
		close(done)
	}()
	time.Sleep(30 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop")
	}
}

func TestServer_SelectAndListActive(t *testing.T) {
	env, svc := setupService(t, 6)
	srv := dice.NewServer(env.App, svc)
	actx := auth.WithUser(context.Background(), "a")
	bctx := auth.WithUser(context.Background(), "b")

	rollResp, err := srv.Roll(actx, &pb.RollRequest{})
	require.NoError(t, err)
	assert.Equal(t, int32(6), rollResp.GetDiceNumber())
	_, err = srv.Roll(bctx, &pb.RollRequest{})
	require.NoError(t, err)

	_, err = srv.Select(actx, &pb.TargetRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	sel, err := srv.Select(actx, &pb.TargetRequest{TargetUserId: "b"})
	require.NoError(t, err)
	assert.Equal(t, start.Add(24*time.Hour).Unix(), sel.GetExpiresAtUnix())

	active, err := srv.ListActive(bctx, &pb.ListActiveRequest{})
	require.NoError(t, err)
	require.Len(t, active.GetMatches(), 1)
	assert.Equal(t, "a", active.GetMatches()[0].GetUserId())
	assert.Equal(t, sel.GetMatchId(), active.GetMatches()[0].GetMatchId())
}
