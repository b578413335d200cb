package handler_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rwserver/core/handler"
)

func text(body string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})
}

func TestCompositeFirstMatchWins(t *testing.T) {
	t.Parallel()

	var secondCalled bool
	c := handler.NewComposite(handler.WithHandlers(
		handler.Prefix("/api/", text("first")),
		handler.RequestHandlerFunc(func(w http.ResponseWriter, r *http.Request) bool {
			secondCalled = true
			return false
		}),
		handler.Route(http.MethodGet, "/api/items", text("second")),
	))

	w := httptest.NewRecorder()
	c.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/items", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "first", w.Body.String())
	assert.False(t, secondCalled)
}

func TestCompositeFallsThrough(t *testing.T) {
	t.Parallel()

	var tried []string
	probe := func(name string) handler.RequestHandler {
		return handler.RequestHandlerFunc(func(http.ResponseWriter, *http.Request) bool {
			tried = append(tried, name)
			return false
		})
	}

	c := handler.NewComposite(handler.WithHandlers(probe("a"), nil, probe("b"), handler.Route("", "/x", text("x"))))
	assert.Equal(t, 3, c.Len())

	w := httptest.NewRecorder()
	c.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/x", nil))

	assert.Equal(t, []string{"a", "b"}, tried)
	assert.Equal(t, "x", w.Body.String())
}

func TestCompositeNotFound(t *testing.T) {
	t.Parallel()

	t.Run("default JSON body", func(t *testing.T) {
		c := handler.NewComposite(handler.WithHandlers(handler.Route(http.MethodGet, "/live", text("ALIVE"))))

		w := httptest.NewRecorder()
		c.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		var body map[string]any
		require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, "not_found", body["code"])
	})

	t.Run("custom", func(t *testing.T) {
		c := handler.NewComposite(handler.WithNotFound(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})))

		w := httptest.NewRecorder()
		c.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusTeapot, w.Code)
	})
}

func TestRouteMethodMatching(t *testing.T) {
	t.Parallel()

	c := handler.NewComposite(handler.WithHandlers(handler.Route(http.MethodGet, "/ready", text("READY"))))

	tests := []struct {
		method string
		want   int
	}{
		{http.MethodGet, http.StatusOK},
		{http.MethodHead, http.StatusOK},
		{http.MethodPost, http.StatusNotFound},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c.ServeHTTP(w, httptest.NewRequest(tt.method, "/ready", nil))
		assert.Equal(t, tt.want, w.Code, tt.method)
	}
}

func TestCompositeRecoversPanics(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	c := handler.NewComposite(
		handler.WithLogger(log),
		handler.WithHandlers(handler.Route(http.MethodGet, "/boom", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("kaboom")
		}))),
	)

	w := httptest.NewRecorder()
	require.NotPanics(t, func() {
		c.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, buf.String(), "Request handler panicked")
	assert.Contains(t, buf.String(), "kaboom")
	assert.Contains(t, buf.String(), `"stack"`)
}

func TestCompositeRepanicsAbortHandler(t *testing.T) {
	t.Parallel()

	c := handler.NewComposite(handler.WithHandlers(handler.Prefix("/", http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		c.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}
