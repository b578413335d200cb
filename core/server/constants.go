package server

import "time"

const (
	// DefaultPort is the default listen port.
	DefaultPort = 8080

	// DefaultShutdownDelaySeconds is the grace period before shutdown commences,
	// giving load balancers time to deregister the instance.
	DefaultShutdownDelaySeconds = 5

	// DefaultShutdownTimeoutSeconds bounds the wait for ongoing requests to complete.
	DefaultShutdownTimeoutSeconds = 20

	// DefaultReadTimeout is the default timeout for reading the request.
	DefaultReadTimeout = 15 * time.Second

	// DefaultWriteTimeout is the default timeout for writing the response.
	DefaultWriteTimeout = 15 * time.Second

	// DefaultIdleTimeout is the default timeout for idle connections.
	DefaultIdleTimeout = 60 * time.Second

	// DefaultMaxHeaderBytes is the default maximum size of request headers.
	DefaultMaxHeaderBytes = 1 << 20 // 1 MB
)
