package server

import "errors"

var (
	// Configuration errors
	ErrInvalidConfig = errors.New("invalid server configuration")
	ErrNilBuilder    = errors.New("configurer returned nil builder")

	// TLS configuration errors
	ErrEmptyCertPath  = errors.New("certificate or key file path cannot be empty")
	ErrFailedLoadCert = errors.New("failed to load certificate")

	// Server lifecycle errors
	ErrBind      = errors.New("failed to bind HTTP server")
	ErrNilHandle = errors.New("binder returned nil handle")
	ErrDispose   = errors.New("failed to dispose HTTP server")
	ErrNotReady  = errors.New("server is not accepting requests")
)
