package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/rwserver/core/logger"
	"github.com/dmitrymomot/rwserver/core/response"
)

// Composite dispatches each request through an ordered list of RequestHandlers.
// The first handler that reports true wins; when none does the not-found handler answers.
type Composite struct {
	handlers []RequestHandler
	notFound http.Handler
	logger   *slog.Logger
}

// CompositeOption configures a Composite.
type CompositeOption func(*Composite)

// WithHandlers appends handlers in dispatch order. Nil handlers are skipped.
func WithHandlers(handlers ...RequestHandler) CompositeOption {
	return func(c *Composite) {
		for _, h := range handlers {
			if h != nil {
				c.handlers = append(c.handlers, h)
			}
		}
	}
}

// WithNotFound replaces the default JSON 404 response. Nil is ignored.
func WithNotFound(h http.Handler) CompositeOption {
	return func(c *Composite) {
		if h != nil {
			c.notFound = h
		}
	}
}

// WithLogger sets the logger used to report recovered panics. Nil is ignored.
func WithLogger(log *slog.Logger) CompositeOption {
	return func(c *Composite) {
		if log != nil {
			c.logger = log
		}
	}
}

// NewComposite builds a Composite from opts.
func NewComposite(opts ...CompositeOption) *Composite {
	c := &Composite{
		notFound: http.HandlerFunc(notFound),
		logger:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ServeHTTP implements http.Handler.
func (c *Composite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	defer c.handlePanic(w, r)

	for _, h := range c.handlers {
		if h.Handle(w, r) {
			return
		}
	}
	c.notFound.ServeHTTP(w, r)
}

// Len returns the number of registered handlers.
func (c *Composite) Len() int {
	return len(c.handlers)
}

func (c *Composite) handlePanic(w http.ResponseWriter, r *http.Request) {
	rec := recover()
	if rec == nil {
		return
	}
	// http.Server relies on this sentinel to abort the connection silently.
	if rec == http.ErrAbortHandler {
		panic(rec)
	}

	c.logger.ErrorContext(r.Context(), "Request handler panicked",
		logger.Component("handler"),
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		slog.Any("panic", rec),
		logger.Stack(),
	)
	_ = response.Error(w, response.ErrInternalServerError)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	_ = response.Error(w, response.ErrNotFound)
}
