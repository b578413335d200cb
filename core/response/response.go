package response

import (
	"encoding/json"
	"errors"
	"net/http"
)

// String writes a text/plain response. A zero status means 200 OK.
func String(w http.ResponseWriter, status int, content string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)
	if content != "" {
		_, err := w.Write([]byte(content))
		return err
	}
	return nil
}

// JSON writes an application/json response. A zero status means 200 OK,
// or 204 No Content when v is nil.
func JSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	if status == 0 {
		if v == nil {
			status = http.StatusNoContent
		} else {
			status = http.StatusOK
		}
	}
	w.WriteHeader(status)

	switch status {
	case http.StatusNoContent, http.StatusNotModified:
		return nil
	}
	return json.NewEncoder(w).Encode(v)
}

// Error writes err as a JSON error body with its status code.
func Error(w http.ResponseWriter, err error) error {
	httpErr := convertToHTTPError(err)
	return JSON(w, httpErr.Status, httpErr)
}

// statusCode is an interface that errors can implement
// to provide a custom HTTP status code.
type statusCode interface {
	StatusCode() int
}

func convertToHTTPError(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	status := http.StatusInternalServerError
	var sc statusCode
	if errors.As(err, &sc) {
		status = sc.StatusCode()
	}

	base, ok := httpErrorsByStatus[status]
	if !ok {
		base = ErrInternalServerError
	}
	if err == nil {
		return base
	}
	return base.WithError(err)
}
