package shutdown

import "errors"

var (
	// ErrAlreadyRegistered is returned when registering over an existing dependency.
	// The message is matched by log-based monitoring and must not change.
	ErrAlreadyRegistered = errors.New("Shutdown dependency is already registered")

	ErrDependencyPanic = errors.New("shutdown dependency panicked")
)
