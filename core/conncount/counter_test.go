package conncount_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rwserver/core/conncount"
)

func TestCounter(t *testing.T) {
	t.Parallel()

	t.Run("starts at zero", func(t *testing.T) {
		t.Parallel()
		c := conncount.New()
		assert.Equal(t, int64(0), c.Count())
		assert.True(t, c.AwaitZero(0))
	})

	t.Run("tracks increments and decrements", func(t *testing.T) {
		t.Parallel()
		c := conncount.New()
		c.Increment()
		c.Increment()
		c.Decrement()
		assert.Equal(t, int64(1), c.Count())
	})

	t.Run("negative count is exposed", func(t *testing.T) {
		t.Parallel()
		c := conncount.New()
		c.Decrement()
		assert.Equal(t, int64(-1), c.Count())
		assert.False(t, c.AwaitZero(0))

		c.Increment()
		assert.True(t, c.AwaitZero(0))
	})
}

func TestCounterAwaitZero(t *testing.T) {
	t.Parallel()

	t.Run("times out while connections are open", func(t *testing.T) {
		t.Parallel()
		c := conncount.New()
		c.Increment()

		start := time.Now()
		ok := c.AwaitZero(50 * time.Millisecond)

		assert.False(t, ok)
		assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("non-positive timeout does not block", func(t *testing.T) {
		t.Parallel()
		c := conncount.New()
		c.Increment()
		assert.False(t, c.AwaitZero(0))
		assert.False(t, c.AwaitZero(-time.Second))
	})

	t.Run("returns once the last connection closes", func(t *testing.T) {
		t.Parallel()
		c := conncount.New()
		c.Increment()
		c.Increment()

		go func() {
			time.Sleep(20 * time.Millisecond)
			c.Decrement()
			time.Sleep(20 * time.Millisecond)
			c.Decrement()
		}()

		assert.True(t, c.AwaitZero(5*time.Second))
		assert.Equal(t, int64(0), c.Count())
	})

	t.Run("reopened connections require a fresh drain", func(t *testing.T) {
		t.Parallel()
		c := conncount.New()
		c.Increment()
		c.Decrement()
		require.True(t, c.AwaitZero(0))

		c.Increment()
		assert.False(t, c.AwaitZero(10*time.Millisecond))
	})
}

func TestCounterConcurrent(t *testing.T) {
	t.Parallel()

	c := conncount.New()
	const workers = 64
	const iterations = 500

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				c.Increment()
				c.Decrement()
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, int64(0), c.Count())
	assert.True(t, c.AwaitZero(time.Second))

	select {
	case <-c.Done():
	default:
		t.Fatal("zero signal not closed after concurrent drain")
	}
}
