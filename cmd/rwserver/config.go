package main

import (
	"log/slog"

	"github.com/dmitrymomot/rwserver/core/logger"
	"github.com/dmitrymomot/rwserver/core/server"
	"github.com/dmitrymomot/rwserver/integration/database/pg"
	"github.com/dmitrymomot/rwserver/integration/database/redis"
)

// Config is the process configuration, loaded from the environment.
type Config struct {
	AppName  string `env:"APP_NAME" envDefault:"rwserver"`
	AppEnv   string `env:"APP_ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`

	Server server.Config
	DB     pg.Config
	Redis  redis.Config
}

func (c Config) newLogger() *slog.Logger {
	opts := []logger.Option{logger.WithDevelopment(c.AppName)}
	if c.AppEnv == "production" {
		opts = []logger.Option{logger.WithProduction(c.AppName)}
	}
	if c.LogLevel != "" {
		opts = append(opts, logger.WithLevelString(c.LogLevel))
	}
	return logger.New(opts...)
}
