// Package testutil wires in-memory SQLite and miniredis into an AppContext
// for package tests.
package testutil

import (
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/cache"
	"github.com/oggyb/campus-connect/internal/config"
	"github.com/oggyb/campus-connect/internal/db"
	"github.com/oggyb/campus-connect/internal/logger"
)

// Clock is a settable clock shared by the AppContext and gorm's NowFunc.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func NewClock(start time.Time) *Clock {
	return &Clock{now: start.UTC()}
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Env bundles what a service test needs.
type Env struct {
	App   *app.AppContext
	DB    *gorm.DB
	Redis *miniredis.Miniredis
	Clock *Clock
}

// NewDB opens a private in-memory SQLite database with every table migrated.
// A single connection keeps concurrent goroutines on the same database.
func NewDB(t *testing.T, clock *Clock) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		NowFunc:                func() time.Time { return clock.Now().Truncate(time.Microsecond) },
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := database.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(database))
	return database
}

// NewEnv spins up an isolated DB + Redis and an AppContext on a fake clock
// starting at start.
func NewEnv(t *testing.T, start time.Time) *Env {
	t.Helper()

	clock := NewClock(start)
	database := NewDB(t, clock)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	cfg := config.New()
	cfg.Redis.Addr = mr.Addr()
	cfg.Redis.Password = ""
	cfg.Redis.DB = 0
	cfg.Campus.Domain = "institution.domain"
	cfg.Campus.Infix = "eg"
	cfg.Dice.Timezone = "UTC"
	cfg.Dice.MatchTTL = 24 * time.Hour
	cfg.Moderation.WarnThreshold = 3
	cfg.Moderation.BanThreshold = 5
	cfg.Presence.TTL = 5 * time.Minute

	redisCache := cache.NewRedisCache(cfg)
	t.Cleanup(func() { _ = redisCache.Close() })

	appCtx := app.New(database, redisCache, logger.Discard(), cfg)
	appCtx.Now = clock.Now

	return &Env{App: appCtx, DB: database, Redis: mr, Clock: clock}
}

// Profiles inserts minimal profiles with the given ids.
func Profiles(t *testing.T, database *gorm.DB, ids ...string) {
	t.Helper()
	for _, id := range ids {
		require.NoError(t, database.Create(&db.Profile{
			ID:    id,
			Email: id + "@institution.domain",
			Name:  strings.ToUpper(id),
		}).Error)
	}
}
