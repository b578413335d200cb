package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/dmitrymomot/rwserver/core/logger"
)

// Handle is a bound, running listener. It is owned by the Server and released exactly once.
type Handle interface {
	// Addr returns the bound address, or nil if unknown.
	Addr() net.Addr

	// StopAccepting closes the listener and disables keep-alives.
	// In-flight requests keep running.
	StopAccepting() error

	// Dispose stops the server, waiting for active requests until ctx is done.
	// Subsequent calls return the first result.
	Dispose(ctx context.Context) error

	// OnDispose returns a channel closed once the handle is disposed
	// or serving terminated on its own.
	OnDispose() <-chan struct{}

	// Err returns the error that terminated serving, nil after a clean disposal.
	Err() error
}

// Binder turns a configured builder into a live Handle.
// The Server calls it exactly once during construction.
type Binder func(b *Builder) (Handle, error)

// Bind is the default Binder: it listens on b.Network/b.Addr and serves b.Server
// in a background goroutine, over TLS when b.Server.TLSConfig is set.
func Bind(b *Builder) (Handle, error) {
	if b == nil || b.Server == nil {
		return nil, ErrNilBuilder
	}

	ln, err := b.ListenConfig.Listen(context.Background(), b.Network, b.Addr)
	if err != nil {
		return nil, err
	}

	log := b.Logger
	if log == nil {
		log = logger.Nop()
	}

	h := &httpHandle{
		srv:    b.Server,
		ln:     &onceCloseListener{Listener: ln},
		logger: log,
		done:   make(chan struct{}),
	}
	go h.serve(b.Server.TLSConfig != nil)

	return h, nil
}

type httpHandle struct {
	srv    *http.Server
	ln     *onceCloseListener
	logger *slog.Logger

	stopping atomic.Bool

	mu  sync.Mutex
	err error

	done     chan struct{}
	doneOnce sync.Once

	disposeOnce sync.Once
	disposeErr  error
}

func (h *httpHandle) serve(useTLS bool) {
	var err error
	if useTLS {
		err = h.srv.ServeTLS(h.ln, "", "")
	} else {
		err = h.srv.Serve(h.ln)
	}

	if err == nil || errors.Is(err, http.ErrServerClosed) || h.stopping.Load() {
		return
	}

	h.logger.Error("HTTP server stopped serving", logger.Component("server"), logger.Error(err))
	h.mu.Lock()
	h.err = err
	h.mu.Unlock()
	h.markDone()
}

func (h *httpHandle) Addr() net.Addr {
	return h.ln.Addr()
}

func (h *httpHandle) StopAccepting() error {
	h.stopping.Store(true)
	h.srv.SetKeepAlivesEnabled(false)
	if err := h.ln.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		return err
	}
	return nil
}

func (h *httpHandle) Dispose(ctx context.Context) error {
	h.disposeOnce.Do(func() {
		h.stopping.Store(true)
		err := h.srv.Shutdown(ctx)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			h.logger.Warn("Graceful disposal timed out, closing remaining connections",
				logger.Component("server"))
			err = h.srv.Close()
		}
		if errors.Is(err, net.ErrClosed) {
			err = nil
		}
		h.disposeErr = err
		h.markDone()
	})
	return h.disposeErr
}

func (h *httpHandle) OnDispose() <-chan struct{} {
	return h.done
}

func (h *httpHandle) Err() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.err
}

func (h *httpHandle) markDone() {
	h.doneOnce.Do(func() {
		close(h.done)
	})
}

// onceCloseListener lets both StopAccepting and http.Server close the listener.
type onceCloseListener struct {
	net.Listener
	once sync.Once
	err  error
}

func (l *onceCloseListener) Close() error {
	l.once.Do(func() {
		l.err = l.Listener.Close()
	})
	return l.err
}
