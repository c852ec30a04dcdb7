// Command campusctl runs operator tasks (warnings, bans, deletions, dice
// sweeps) directly against the database and Redis the server uses.
package main

import (
	"context"
	"os"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/cache"
	"github.com/oggyb/campus-connect/internal/config"
	"github.com/oggyb/campus-connect/internal/db"
	"github.com/oggyb/campus-connect/internal/logger"
)

func main() {
	if err := newRootCmd(openApp).Execute(); err != nil {
		os.Exit(1)
	}
}

func openApp() (*app.AppContext, func(), error) {
	cfg := config.New()
	logger.InitFromConfig(cfg)

	database, err := db.NewDB(cfg)
	if err != nil {
		return nil, nil, err
	}
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		return nil, nil, err
	}

	closeFn := func() {
		_ = redisCache.Close()
		if sqlDB, err := database.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return app.New(database, redisCache, logger.L(), cfg), closeFn, nil
}
