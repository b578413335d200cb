// Package pg provides PostgreSQL connection management and health checking.
//
// It wraps the pgx pool with retry logic so a service can start while the database
// is still coming up, and exposes a readiness check for the health endpoints.
//
//   - Connect: Creates a connection pool with retry logic and connection verification
//   - Healthcheck: Returns a check function for readiness probes
//
// # Configuration
//
//	type Config struct {
//		ConnectionString  string        `env:"PG_CONN_URL"`
//		MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
//		MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"5"`
//		HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
//		MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
//		MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
//		RetryAttempts     int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
//		RetryInterval     time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"5s"`
//	}
//
// # Usage Example
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//
//	readiness := health.Readiness(log, pg.Healthcheck(pool))
//
//	shutdown.Register(func(context.Context) error {
//		pool.Close()
//		return nil
//	})
//
// # Error Handling
//
//	ErrFailedToOpenDBConnection // retries exhausted
//	ErrEmptyConnectionString    // PG_CONN_URL not set
//	ErrHealthcheckFailed        // ping failed
//	ErrFailedToParseDBConfig    // malformed connection string
package pg
