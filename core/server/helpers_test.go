package server

import (
	"context"
	"log/slog"
	"net"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// events is an ordered, concurrency-safe trace shared by the fakes below.
type events struct {
	mu   sync.Mutex
	list []string
}

func (e *events) add(name string) {
	if e == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.list = append(e.list, name)
}

func (e *events) all() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.list...)
}

// fakeHandle is a Handle that never opens a socket.
type fakeHandle struct {
	events *events

	stopCalls    atomic.Int32
	disposeCalls atomic.Int32

	mu              sync.Mutex
	disposeDeadline bool
	disposeCtxErr   error

	disposeErr error
	serveErr   error

	// closeOnDispose controls whether OnDispose fires after Dispose.
	closeOnDispose bool
	done           chan struct{}
	doneOnce       sync.Once
}

func newFakeHandle(ev *events) *fakeHandle {
	return &fakeHandle{
		events:         ev,
		closeOnDispose: true,
		done:           make(chan struct{}),
	}
}

func (h *fakeHandle) Addr() net.Addr {
	return &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1), Port: 18080}
}

func (h *fakeHandle) StopAccepting() error {
	h.events.add("stop_accepting")
	h.stopCalls.Add(1)
	return nil
}

func (h *fakeHandle) Dispose(ctx context.Context) error {
	h.events.add("dispose")
	h.disposeCalls.Add(1)

	_, hasDeadline := ctx.Deadline()
	h.mu.Lock()
	h.disposeDeadline = hasDeadline
	h.disposeCtxErr = ctx.Err()
	h.mu.Unlock()

	if h.closeOnDispose {
		h.terminate()
	}
	return h.disposeErr
}

func (h *fakeHandle) OnDispose() <-chan struct{} {
	return h.done
}

func (h *fakeHandle) Err() error {
	return h.serveErr
}

// terminate closes OnDispose as if serving had stopped.
func (h *fakeHandle) terminate() {
	h.doneOnce.Do(func() { close(h.done) })
}

// fakeCounter is a ConnectionCounter with a scripted AwaitZero result.
type fakeCounter struct {
	events *events

	count       atomic.Int64
	drained     bool
	awaitCalls  atomic.Int32
	lastTimeout atomic.Int64
}

func (c *fakeCounter) Increment() { c.count.Add(1) }
func (c *fakeCounter) Decrement() { c.count.Add(-1) }
func (c *fakeCounter) Count() int64 {
	return c.count.Load()
}

func (c *fakeCounter) AwaitZero(timeout time.Duration) bool {
	c.events.add("await_zero")
	c.awaitCalls.Add(1)
	c.lastTimeout.Store(int64(timeout))
	return c.drained
}

// recordingHandler captures slog records for assertions on log output.
type recordingHandler struct {
	mu      sync.Mutex
	records []slog.Record
}

func (h *recordingHandler) Enabled(context.Context, slog.Level) bool { return true }

func (h *recordingHandler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, r.Clone())
	return nil
}

func (h *recordingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *recordingHandler) WithGroup(string) slog.Handler      { return h }

func (h *recordingHandler) messages() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]string, 0, len(h.records))
	for _, r := range h.records {
		out = append(out, r.Message)
	}
	return out
}

func (h *recordingHandler) level(message string) (slog.Level, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, r := range h.records {
		if r.Message == message {
			return r.Level, true
		}
	}
	return 0, false
}

func newRecordingLogger() (*slog.Logger, *recordingHandler) {
	h := &recordingHandler{}
	return slog.New(h), h
}

// getFreePort returns a port that was free a moment ago.
func getFreePort(t *testing.T) int {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())
	return port
}

// noSleep records requested delays without waiting.
type noSleep struct {
	events *events

	mu     sync.Mutex
	delays []time.Duration
	during func()
}

func (n *noSleep) sleep(d time.Duration) {
	n.events.add("sleep")
	n.mu.Lock()
	n.delays = append(n.delays, d)
	during := n.during
	n.mu.Unlock()
	if during != nil {
		during()
	}
}

func (n *noSleep) calls() []time.Duration {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]time.Duration(nil), n.delays...)
}

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 0
	return cfg
}
