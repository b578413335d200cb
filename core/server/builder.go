package server

import (
	"log/slog"
	"net"
	"net/http"
)

// Builder carries everything needed to bind a listener.
// Configurers mutate it before the Binder turns it into a live Handle.
type Builder struct {
	// Server is the HTTP server to serve with. Its Handler is the request
	// pipeline and may be wrapped by configurers.
	Server *http.Server

	// Network and Addr are passed to ListenConfig.Listen.
	Network      string
	Addr         string
	ListenConfig net.ListenConfig

	Logger *slog.Logger
}

func newBuilder(cfg Config, handler http.Handler, log *slog.Logger) *Builder {
	return &Builder{
		Server: &http.Server{
			Addr:           cfg.Addr(),
			Handler:        handler,
			ReadTimeout:    cfg.ReadTimeout,
			WriteTimeout:   cfg.WriteTimeout,
			IdleTimeout:    cfg.IdleTimeout,
			MaxHeaderBytes: cfg.MaxHeaderBytes,
			ErrorLog:       slog.NewLogLogger(log.Handler(), slog.LevelWarn),
		},
		Network: "tcp",
		Addr:    cfg.Addr(),
		Logger:  log,
	}
}

// trackConnections wires connection accept/close events to the counter,
// keeping any ConnState hook a configurer installed.
func trackConnections(b *Builder, counter ConnectionCounter) {
	next := b.Server.ConnState
	b.Server.ConnState = func(conn net.Conn, state http.ConnState) {
		switch state {
		case http.StateNew:
			counter.Increment()
		case http.StateClosed, http.StateHijacked:
			counter.Decrement()
		}
		if next != nil {
			next(conn, state)
		}
	}
}
