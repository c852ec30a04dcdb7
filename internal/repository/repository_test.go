package repository_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/oggyb/campus-connect/internal/db"
	"github.com/oggyb/campus-connect/internal/repository"
	"github.com/oggyb/campus-connect/internal/testutil"
)

var epoch = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

// setupTestDB returns an in-memory DB and its clock.
func setupTestDB(t *testing.T) (*gorm.DB, *testutil.Clock) {
	t.Helper()
	clock := testutil.NewClock(epoch)
	return testutil.NewDB(t, clock), clock
}

func TestLikeCreateIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dbase, _ := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	created, err := repo.Create(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.Create(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, created)

	liked, err := repo.HasLiked(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasLiked(ctx, "b", "a")
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestGetLikersExcludesBlockedAndPaginates(t *testing.T) {
	ctx := context.Background()
	dbase, clock := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)
	blocks := repository.NewBlockRepository(dbase)

	for _, liker := range []string{"l1", "l2", "l3", "l4"} {
		_, err := repo.Create(ctx, liker, "me")
		require.NoError(t, err)
		clock.Advance(time.Second)
	}
	// recipient blocked l2 → exclude
	_, err := blocks.Create(ctx, "me", "l2")
	require.NoError(t, err)

	page, next, err := repo.GetLikers(ctx, "me", nil, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "l4", page[0].LikerID)
	assert.Equal(t, "l3", page[1].LikerID)
	require.NotNil(t, next)

	page, next, err = repo.GetLikers(ctx, "me", next, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "l1", page[0].LikerID)
	assert.Nil(t, next)

	count, err := repo.CountLikers(ctx, "me")
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestGetLikersPagesWithinOneMillisecond(t *testing.T) {
	ctx := context.Background()
	dbase, clock := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	for _, liker := range []string{"l1", "l2", "l3", "l4"} {
		_, err := repo.Create(ctx, liker, "me")
		require.NoError(t, err)
		clock.Advance(200 * time.Microsecond)
	}

	var seen []string
	var next *string
	for range 4 {
		page, token, err := repo.GetLikers(ctx, "me", next, 1)
		require.NoError(t, err)
		require.Len(t, page, 1)
		seen = append(seen, page[0].LikerID)
		next = token
	}
	assert.Equal(t, []string{"l4", "l3", "l2", "l1"}, seen)
	assert.Nil(t, next)
}

func TestGetNewLikersSkipsMutual(t *testing.T) {
	ctx := context.Background()
	dbase, _ := setupTestDB(t)
	repo := repository.NewLikeRepository(dbase)

	// l1 liked me, and I liked back → mutual
	_, _ = repo.Create(ctx, "l1", "me")
	_, _ = repo.Create(ctx, "me", "l1")
	// l2 liked me, not mutual
	_, _ = repo.Create(ctx, "l2", "me")

	likes, _, err := repo.GetNewLikers(ctx, "me", nil, 10)
	require.NoError(t, err)
	require.Len(t, likes, 1)
	assert.Equal(t, "l2", likes[0].LikerID)
}

func TestMatchCreateCanonicalCollapsesConcurrentCreators(t *testing.T) {
	ctx := context.Background()
	dbase, _ := setupTestDB(t)
	repo := repository.NewMatchRepository(dbase)

	var wg sync.WaitGroup
	var mu sync.Mutex
	createdCount := 0
	ids := map[string]bool{}
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, b := "zed", "amy"
			if i%2 == 0 {
				a, b = b, a
			}
			m, created, err := repo.CreateCanonical(ctx, a, b, db.OriginLike)
			if !assert.NoError(t, err) {
				return
			}
			mu.Lock()
			defer mu.Unlock()
			if created {
				createdCount++
			}
			ids[m.ID] = true
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, createdCount)
	assert.Len(t, ids, 1)

	m, err := repo.FindByPair(ctx, "zed", "amy")
	require.NoError(t, err)
	assert.Equal(t, "amy", m.UserA)
	assert.Equal(t, "zed", m.UserB)
	assert.Equal(t, "zed", m.Counterpart("amy"))
	assert.Equal(t, "", m.Counterpart("bob"))
}

func TestPurgePairIsIdempotentAndKeepsBlocks(t *testing.T) {
	ctx := context.Background()
	dbase, _ := setupTestDB(t)

	likes := repository.NewLikeRepository(dbase)
	matches := repository.NewMatchRepository(dbase)
	requests := repository.NewFriendRequestRepository(dbase)
	messages := repository.NewMessageRepository(dbase)
	blocks := repository.NewBlockRepository(dbase)

	_, _ = likes.Create(ctx, "a", "b")
	_, _ = likes.Create(ctx, "b", "a")
	_, _, err := matches.CreateCanonical(ctx, "a", "b", db.OriginLike)
	require.NoError(t, err)
	_, err = requests.Create(ctx, "a", "b")
	require.NoError(t, err)
	_, err = messages.Create(ctx, "a", "b", "hi")
	require.NoError(t, err)
	_, err = messages.Create(ctx, "a", "c", "unrelated")
	require.NoError(t, err)
	_, _ = blocks.Create(ctx, "b", "a")

	for i := 0; i < 2; i++ {
		require.NoError(t, dbase.Transaction(func(tx *gorm.DB) error {
			return repository.PurgePair(ctx, tx, "b", "a")
		}))
	}

	exists, err := matches.Exists(ctx, "a", "b")
	require.NoError(t, err)
	assert.False(t, exists)

	history, err := messages.ListByPair(ctx, "a", "b")
	require.NoError(t, err)
	assert.Empty(t, history)

	other, err := messages.ListByPair(ctx, "c", "a")
	require.NoError(t, err)
	assert.Len(t, other, 1)

	liked, _ := likes.HasLiked(ctx, "a", "b")
	assert.False(t, liked)

	_, err = requests.FindByPair(ctx, "a", "b")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	blocked, err := blocks.ExistsEither(ctx, "a", "b")
	require.NoError(t, err)
	assert.True(t, blocked)
}

func TestMessagesOrderedByTimeThenInsertion(t *testing.T) {
	ctx := context.Background()
	dbase, clock := setupTestDB(t)
	repo := repository.NewMessageRepository(dbase)

	_, _ = repo.Create(ctx, "a", "b", "first")
	_, _ = repo.Create(ctx, "b", "a", "second") // same timestamp
	clock.Advance(time.Second)
	_, _ = repo.Create(ctx, "a", "b", "third")

	msgs, err := repo.ListByPair(ctx, "b", "a")
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Body)
	assert.Equal(t, "second", msgs[1].Body)
	assert.Equal(t, "third", msgs[2].Body)
}

func TestDiceRollUniquePerDayAndSelectionConsumedOnce(t *testing.T) {
	ctx := context.Background()
	dbase, clock := setupTestDB(t)
	repo := repository.NewDiceRepository(dbase)

	first, created, err := repo.CreateRoll(ctx, &db.DiceRoll{UserID: "a", Day: "2026-03-02", DiceNumber: 4, RolledAt: clock.Now()})
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := repo.CreateRoll(ctx, &db.DiceRoll{UserID: "a", Day: "2026-03-02", DiceNumber: 6, RolledAt: clock.Now()})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 4, second.DiceNumber)

	ok, err := repo.ConsumeSelection(ctx, "a", "2026-03-02", "b")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ConsumeSelection(ctx, "a", "2026-03-02", "c")
	require.NoError(t, err)
	assert.False(t, ok)

	roll, err := repo.FindRoll(ctx, "a", "2026-03-02")
	require.NoError(t, err)
	require.NotNil(t, roll.SelectedUserID)
	assert.Equal(t, "b", *roll.SelectedUserID)
}

func TestDiceExpiryQueries(t *testing.T) {
	ctx := context.Background()
	dbase, clock := setupTestDB(t)
	repo := repository.NewDiceRepository(dbase)

	stale := &db.DiceMatch{MatchID: "m1", UserA: "b", UserB: "a", DiceNumber: 3, ExpiresAt: clock.Now().Add(time.Hour)}
	chatted := &db.DiceMatch{MatchID: "m2", UserA: "c", UserB: "d", DiceNumber: 3, ExpiresAt: clock.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateMatch(ctx, stale))
	require.NoError(t, repo.CreateMatch(ctx, chatted))
	assert.Equal(t, "a", stale.UserA)

	marked, err := repo.MarkChatted(ctx, "d", "c", clock.Now())
	require.NoError(t, err)
	assert.True(t, marked)

	pair, err := repo.ListActiveForPair(ctx, "b", "a")
	require.NoError(t, err)
	require.Len(t, pair, 1)
	assert.Equal(t, "m1", pair[0].MatchID)

	expired, err := repo.ListExpired(ctx, clock.Now(), 10)
	require.NoError(t, err)
	assert.Empty(t, expired)

	expired, err = repo.ListExpired(ctx, clock.Now().Add(2*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, expired, 1)
	assert.Equal(t, "m1", expired[0].MatchID)

	ok, err := repo.Deactivate(ctx, expired[0].ID)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Deactivate(ctx, expired[0].ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDiceMarkChattedRefusesLapsedMatch(t *testing.T) {
	ctx := context.Background()
	dbase, clock := setupTestDB(t)
	repo := repository.NewDiceRepository(dbase)

	dm := &db.DiceMatch{MatchID: "m1", UserA: "a", UserB: "b", DiceNumber: 4, ExpiresAt: clock.Now().Add(time.Hour)}
	require.NoError(t, repo.CreateMatch(ctx, dm))

	marked, err := repo.MarkChatted(ctx, "a", "b", clock.Now().Add(2*time.Hour))
	require.NoError(t, err)
	assert.False(t, marked)

	expired, err := repo.ListExpired(ctx, clock.Now().Add(2*time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, expired, 1)
}

func TestBanCreatedOnceAndBlacklist(t *testing.T) {
	ctx := context.Background()
	dbase, _ := setupTestDB(t)
	repo := repository.NewModerationRepository(dbase)

	created, err := repo.CreateBanIfAbsent(ctx, &db.Ban{UserID: "u1", Reason: "spam"})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.CreateBanIfAbsent(ctx, &db.Ban{UserID: "u1", Reason: "again"})
	require.NoError(t, err)
	assert.False(t, created)

	listed, err := repo.IsEmailBlacklisted(ctx, "u1@institution.domain")
	require.NoError(t, err)
	assert.False(t, listed)

	require.NoError(t, repo.UpsertPermanentBan(ctx, &db.Ban{UserID: "u1", Email: "u1@institution.domain", Reason: "deleted", BannedBy: "ops"}))

	listed, err = repo.IsEmailBlacklisted(ctx, "u1@institution.domain")
	require.NoError(t, err)
	assert.True(t, listed)

	n, err := repo.DeleteBans(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}
