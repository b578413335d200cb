package server

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds server configuration with environment variable support.
type Config struct {
	// Enabled set to false produces a server that never listens.
	Enabled bool   `env:"SERVER_ENABLED" envDefault:"true"`
	Host    string `env:"SERVER_HOST" envDefault:""`
	Port    int    `env:"SERVER_PORT" envDefault:"8080"`

	// Shutdown sequence, in whole seconds
	ShutdownDelaySeconds   int `env:"SERVER_SHUTDOWN_DELAY_SECONDS" envDefault:"5"`
	ShutdownTimeoutSeconds int `env:"SERVER_SHUTDOWN_TIMEOUT_SECONDS" envDefault:"20"`

	// Timeouts
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" envDefault:"60s"`

	MaxHeaderBytes int `env:"SERVER_MAX_HEADER_BYTES" envDefault:"1048576"` // 1MB

	// TLS (optional, both files required)
	TLSCertFile string `env:"SERVER_TLS_CERT_FILE" envDefault:""`
	TLSKeyFile  string `env:"SERVER_TLS_KEY_FILE" envDefault:""`
}

// DefaultConfig returns a Config with the same values as the env defaults.
func DefaultConfig() Config {
	return Config{
		Enabled:                true,
		Port:                   DefaultPort,
		ShutdownDelaySeconds:   DefaultShutdownDelaySeconds,
		ShutdownTimeoutSeconds: DefaultShutdownTimeoutSeconds,
		ReadTimeout:            DefaultReadTimeout,
		WriteTimeout:           DefaultWriteTimeout,
		IdleTimeout:            DefaultIdleTimeout,
		MaxHeaderBytes:         DefaultMaxHeaderBytes,
	}
}

// Validate checks the invariants of an enabled configuration.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.ShutdownDelaySeconds < 0 {
		return fmt.Errorf("%w: negative shutdown delay %d", ErrInvalidConfig, c.ShutdownDelaySeconds)
	}
	if c.ShutdownTimeoutSeconds < 0 {
		return fmt.Errorf("%w: negative shutdown timeout %d", ErrInvalidConfig, c.ShutdownTimeoutSeconds)
	}
	return nil
}

// Addr returns the listen address in host:port form.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// ShutdownDelay returns the grace period before shutdown commences.
func (c Config) ShutdownDelay() time.Duration {
	return time.Duration(c.ShutdownDelaySeconds) * time.Second
}

// ShutdownTimeout returns the bound on waiting for ongoing requests.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

func (c Config) hasTLS() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}
