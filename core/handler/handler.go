package handler

import (
	"net/http"
	"strings"
)

// RequestHandler is one stage of the request pipeline. Handle returns true when it
// wrote a response, otherwise the next handler is tried.
type RequestHandler interface {
	Handle(w http.ResponseWriter, r *http.Request) bool
}

// RequestHandlerFunc adapts a function to RequestHandler.
type RequestHandlerFunc func(w http.ResponseWriter, r *http.Request) bool

// Handle calls f(w, r).
func (f RequestHandlerFunc) Handle(w http.ResponseWriter, r *http.Request) bool {
	return f(w, r)
}

// Route handles requests whose path equals pattern. An empty method matches any.
// A matching path with another method is left to later handlers.
func Route(method, pattern string, h http.Handler) RequestHandler {
	return RequestHandlerFunc(func(w http.ResponseWriter, r *http.Request) bool {
		if r.URL.Path != pattern {
			return false
		}
		if method != "" && r.Method != method && !(method == http.MethodGet && r.Method == http.MethodHead) {
			return false
		}
		h.ServeHTTP(w, r)
		return true
	})
}

// Prefix handles every request whose path starts with prefix.
func Prefix(prefix string, h http.Handler) RequestHandler {
	return RequestHandlerFunc(func(w http.ResponseWriter, r *http.Request) bool {
		if !strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
		h.ServeHTTP(w, r)
		return true
	})
}
