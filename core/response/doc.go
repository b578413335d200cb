// Package response writes plain text, JSON and structured error responses
// directly to an http.ResponseWriter.
//
//	response.String(w, http.StatusOK, "READY")
//	response.JSON(w, http.StatusCreated, item)
//	response.Error(w, response.ErrNotFound)
//
// Error bodies are JSON:
//
//	{"code":"not_found","message":"Not Found"}
//
// Errors that are not HTTPError values are mapped through an optional
// StatusCode() int method and default to 500 with the cause in details.
package response
