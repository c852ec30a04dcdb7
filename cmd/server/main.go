package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/oggyb/campus-connect/internal/app"
	"github.com/oggyb/campus-connect/internal/cache"
	"github.com/oggyb/campus-connect/internal/config"
	"github.com/oggyb/campus-connect/internal/db"
	"github.com/oggyb/campus-connect/internal/identity"
	"github.com/oggyb/campus-connect/internal/logger"
	"github.com/oggyb/campus-connect/internal/server"
	"github.com/oggyb/campus-connect/internal/service/dice"
	identitysvc "github.com/oggyb/campus-connect/internal/service/identity"
	"github.com/oggyb/campus-connect/internal/service/ledger"
	"github.com/oggyb/campus-connect/internal/service/messaging"
	"github.com/oggyb/campus-connect/internal/service/moderation"
	"github.com/oggyb/campus-connect/internal/service/presence"
)

func main() {
	if err := run(); err != nil {
		logger.Error("server exited", "err", err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.New()

	if cfg.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.App.ENV,
		}); err != nil {
			return err
		}
		defer sentry.Flush(2 * time.Second)
	}

	// Init logger (global singleton)
	logger.InitFromConfig(cfg)
	log := logger.L()

	// Init DB
	database, err := db.NewDB(cfg)
	if err != nil {
		return err
	}

	// Init Redis
	redisCache := cache.NewRedisCache(cfg)
	if err := redisCache.Ping(context.Background()); err != nil {
		return err
	}
	defer redisCache.Close()

	appCtx := app.New(database, redisCache, log, cfg)

	if cfg.App.ENV == "development" {
		if err := db.SeedTestData(database, cfg.Campus.Domain); err != nil {
			log.Error("failed to seed", "err", err)
		}
	}

	revoker := identity.NewRevoker(cfg)
	diceSvc := dice.NewService(appCtx)

	grpcServer := server.NewGRPCServer(appCtx,
		identitysvc.NewRegistrar(appCtx, revoker),
		ledger.NewRegistrar(appCtx),
		messaging.NewRegistrar(appCtx, diceSvc),
		dice.NewRegistrar(appCtx, diceSvc),
		moderation.NewRegistrar(appCtx, revoker),
		presence.NewRegistrar(appCtx),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return grpcServer.ListenAndServe(ctx, cfg.GRPC.Host+":"+cfg.GRPC.Port)
	})

	metricsSrv := &http.Server{Addr: cfg.Metrics.Addr, Handler: promhttp.Handler(), ReadHeaderTimeout: 5 * time.Second}
	g.Go(func() error {
		log.Info("metrics listening", "addr", cfg.Metrics.Addr)
		if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return metricsSrv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		diceSvc.StartSweeper(ctx, cfg.Dice.SweepInterval)
		return nil
	})

	return g.Wait()
}
