package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/rwserver/core/conncount"
	"github.com/dmitrymomot/rwserver/core/config"
	"github.com/dmitrymomot/rwserver/core/logger"
	"github.com/dmitrymomot/rwserver/core/server"
	"github.com/dmitrymomot/rwserver/core/shutdown"
	"github.com/dmitrymomot/rwserver/integration/database/pg"
	"github.com/dmitrymomot/rwserver/integration/database/redis"
	"github.com/dmitrymomot/rwserver/middleware"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg) // panic on error

	log := cfg.newLogger()

	// Serving starts inside server.New, before the constructor returns.
	var live atomic.Pointer[server.Server]
	checks := []func(context.Context) error{
		// Reports unready from the moment shutdown starts.
		func(ctx context.Context) error {
			srv := live.Load()
			if srv == nil {
				return server.ErrNotReady
			}
			return srv.Ready(ctx)
		},
	}

	// Datastores are optional; each one is connected only when its URL is set.
	var db *pgxpool.Pool
	if cfg.DB.Enabled() {
		var err error
		db, err = pg.Connect(ctx, cfg.DB)
		if err != nil {
			log.Error("Failed to connect to database", logger.Component("database"), logger.Error(err))
			os.Exit(1)
		}
		checks = append(checks, pg.Healthcheck(db))
	}

	var cache goredis.UniversalClient
	if cfg.Redis.Enabled() {
		var err error
		cache, err = redis.Connect(ctx, cfg.Redis)
		if err != nil {
			log.Error("Failed to connect to redis", logger.Component("redis"), logger.Error(err))
			os.Exit(1)
		}
		checks = append(checks, redis.Healthcheck(cache))
	}

	// Datastores close only after in-flight requests have drained.
	if db != nil || cache != nil {
		if err := shutdown.Register(func(context.Context) error {
			var errs []error
			if cache != nil {
				errs = append(errs, cache.Close())
			}
			if db != nil {
				db.Close()
			}
			return errors.Join(errs...)
		}); err != nil {
			log.Error("Failed to register shutdown dependency", logger.Component("shutdown"), logger.Error(err))
			os.Exit(1)
		}
	}

	srv, err := server.New(cfg.Server, routes(log, cfg.AppName, checks...), conncount.New(),
		server.WithLogger(log),
		server.WithConfigurers(server.Middleware(
			middleware.Logging(log),
			middleware.RequestID,
		)),
	)
	if err != nil {
		log.Error("Failed to start server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}
	live.Store(srv)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(srv.Run(ctx))

	if err := eg.Wait(); err != nil {
		log.Error("Failed to run server", logger.Component("server"), logger.Error(err))
		os.Exit(1)
	}

	log.Info("Application stopped")
}
