package db_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oggyb/campus-connect/internal/db"
	"github.com/oggyb/campus-connect/internal/testutil"
)

func TestSeedMinimalTestData(t *testing.T) {
	database := testutil.NewDB(t, testutil.NewClock(time.Now()))
	require.NoError(t, db.SeedMinimalTestData(database, "institution.domain"))
	// running twice starts from a clean slate
	require.NoError(t, db.SeedMinimalTestData(database, "institution.domain"))

	var profiles []db.Profile
	require.NoError(t, database.Order("email").Find(&profiles).Error)
	require.Len(t, profiles, 3)
	assert.Equal(t, "Asha", profiles[0].Name)

	var likes, matches int64
	require.NoError(t, database.Model(&db.Like{}).Count(&likes).Error)
	require.NoError(t, database.Model(&db.Match{}).Count(&matches).Error)
	assert.Equal(t, int64(3), likes)
	assert.Equal(t, int64(1), matches)

	var m db.Match
	require.NoError(t, database.First(&m).Error)
	assert.Less(t, m.UserA, m.UserB)
}

func TestSeedTestData(t *testing.T) {
	database := testutil.NewDB(t, testutil.NewClock(time.Now()))
	require.NoError(t, db.SeedTestData(database, "institution.domain"))

	var profiles int64
	require.NoError(t, database.Model(&db.Profile{}).Count(&profiles).Error)
	assert.Equal(t, int64(20), profiles)

	var rolls int64
	require.NoError(t, database.Model(&db.DiceRoll{}).Count(&rolls).Error)
	assert.Equal(t, int64(10), rolls)

	var matches []db.Match
	require.NoError(t, database.Find(&matches).Error)
	for _, m := range matches {
		assert.Less(t, m.UserA, m.UserB)
	}
}
