package conncount

import (
	"sync"
	"sync/atomic"
	"time"
)

// Counter tracks the number of open connections.
// Safe for concurrent use by many connection goroutines and a waiting shutdown goroutine.
type Counter struct {
	count atomic.Int64

	mu   sync.Mutex
	zero chan struct{} // closed while count is zero
}

// New creates a Counter with a count of zero.
func New() *Counter {
	zero := make(chan struct{})
	close(zero)
	return &Counter{zero: zero}
}

// Increment records an opened connection.
func (c *Counter) Increment() {
	if c.count.Add(1) <= 1 {
		c.signal()
	}
}

// Decrement records a closed connection.
func (c *Counter) Decrement() {
	if c.count.Add(-1) <= 0 {
		c.signal()
	}
}

// Count returns the current number of open connections.
// A negative value means more closes than opens were recorded.
func (c *Counter) Count() int64 {
	return c.count.Load()
}

// Done returns a channel that is closed while the count is zero.
// The returned channel is replaced once the count leaves zero, so callers
// should fetch it again for every wait.
func (c *Counter) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.zero
}

// AwaitZero blocks until the count reaches zero or the timeout elapses.
// Reports whether zero was reached. A non-positive timeout only checks the current state.
func (c *Counter) AwaitZero(timeout time.Duration) bool {
	done := c.Done()

	select {
	case <-done:
		return true
	default:
	}

	if timeout <= 0 {
		return false
	}

	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}

// signal syncs the zero channel with the count. Only called on transitions
// around zero; the count is re-read under the lock so concurrent transitions
// settle on the latest value.
func (c *Counter) signal() {
	c.mu.Lock()
	defer c.mu.Unlock()

	closed := isClosed(c.zero)
	if c.count.Load() == 0 {
		if !closed {
			close(c.zero)
		}
		return
	}
	if closed {
		c.zero = make(chan struct{})
	}
}

func isClosed(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}
