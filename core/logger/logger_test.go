package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rwserver/core/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("text output at info level by default", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithOutput(&buf))

		log.Debug("hidden")
		log.Info("Shutdown complete")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), `msg="Shutdown complete"`)
	})

	t.Run("production writes json with app attrs", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithProduction("rwserver"), logger.WithOutput(&buf))

		log.Info("started", logger.Component("server"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "started", record["msg"])
		assert.Equal(t, "rwserver", record["app"])
		assert.Equal(t, "production", record["env"])
		assert.Equal(t, "server", record["component"])
	})

	t.Run("development enables debug", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithDevelopment("rwserver"), logger.WithOutput(&buf))

		log.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("level from string", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithLevelString("error"), logger.WithOutput(&buf))

		log.Warn("hidden")
		log.Error("visible")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("unknown level string keeps current level", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.WithLevel(slog.LevelWarn), logger.WithLevelString("loud"), logger.WithOutput(&buf))

		log.Info("hidden")
		log.Warn("visible")
		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "visible")
	})
}

func TestNop(t *testing.T) {
	t.Parallel()
	log := logger.Nop()
	require.NotNil(t, log)
	log.Error("discarded")
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestCount(t *testing.T) {
	t.Parallel()
	attr := logger.Count("connections", 4)
	require.Equal(t, "connections", attr.Key)
	assert.Equal(t, int64(4), attr.Value.Int64())
}

func TestSeconds(t *testing.T) {
	t.Parallel()
	attr := logger.Seconds("delay_seconds", 5)
	require.Equal(t, "delay_seconds", attr.Key)
	assert.Equal(t, int64(5), attr.Value.Int64())
}

func TestElapsed(t *testing.T) {
	t.Parallel()
	start := time.Now().Add(-500 * time.Millisecond)
	attr := logger.Elapsed(start)
	require.Equal(t, "elapsed", attr.Key)
	assert.GreaterOrEqual(t, attr.Value.Duration(), 500*time.Millisecond)
}

func TestAddr(t *testing.T) {
	t.Parallel()
	attr := logger.Addr("127.0.0.1:8080")
	require.Equal(t, "addr", attr.Key)
	assert.Equal(t, "127.0.0.1:8080", attr.Value.String())

	assert.True(t, logger.Addr("").Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	t.Parallel()
	attr := logger.RequestID("req-123")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "req-123", attr.Value.String())

	assert.True(t, logger.RequestID("").Equal(slog.Attr{}))
}

func TestHTTPAttrs(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "GET", logger.Method("GET").Value.String())
	assert.Equal(t, "/ready", logger.Path("/ready").Value.String())
	assert.Equal(t, int64(503), logger.StatusCode(503).Value.Int64())
}

func TestStack(t *testing.T) {
	t.Parallel()
	attr := logger.Stack()
	require.Equal(t, "stack", attr.Key)
	assert.Contains(t, attr.Value.String(), "TestStack")
}
