package shutdown

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/dmitrymomot/rwserver/core/logger"
)

// Dependency is a blocking task that must finish before the server is disposed.
// The context carries the shutdown timeout as a deadline; implementations are
// expected to honour it, but the registry waits for the call to return regardless.
type Dependency func(ctx context.Context) error

// Registry holds at most one shutdown dependency.
// Safe for concurrent use.
type Registry struct {
	dep atomic.Pointer[Dependency]
}

var defaultRegistry = NewRegistry()

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register stores dep in the empty slot. Returns ErrAlreadyRegistered
// and keeps the existing registration when the slot is taken.
// A nil dep clears the slot.
func (r *Registry) Register(dep Dependency) error {
	if dep == nil {
		r.Clear()
		return nil
	}
	if !r.dep.CompareAndSwap(nil, &dep) {
		return ErrAlreadyRegistered
	}
	return nil
}

// Clear removes the registered dependency, if any.
func (r *Registry) Clear() {
	r.dep.Store(nil)
}

// Registered reports whether a dependency is registered.
func (r *Registry) Registered() bool {
	return r.dep.Load() != nil
}

// Await runs the registered dependency synchronously and waits for it to return.
// Without a registered dependency it returns nil without logging.
// A failing or panicking dependency is logged and its error returned.
func (r *Registry) Await(ctx context.Context, log *slog.Logger, timeout time.Duration) error {
	dep := r.dep.Load()
	if dep == nil {
		return nil
	}
	if log == nil {
		log = logger.Nop()
	}

	log.InfoContext(ctx, "Wait for completion of shutdown dependency", logger.Component("shutdown"))

	depCtx := ctx
	if timeout > 0 {
		var cancel context.CancelFunc
		depCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err := call(depCtx, *dep)
	if err != nil {
		log.ErrorContext(ctx, "Shutdown dependency failed", logger.Component("shutdown"), logger.Error(err))
	}

	log.InfoContext(ctx, "Shutdown dependency completed, continue...", logger.Component("shutdown"))
	return err
}

func call(ctx context.Context, dep Dependency) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDependencyPanic, r)
		}
	}()
	return dep(ctx)
}

// Register stores dep in the process-wide registry.
func Register(dep Dependency) error {
	return defaultRegistry.Register(dep)
}

// Await runs the dependency registered in the process-wide registry.
func Await(ctx context.Context, log *slog.Logger, timeout time.Duration) error {
	return defaultRegistry.Await(ctx, log, timeout)
}
