// Package apierr defines the error taxonomy every handler converts failures
// into at its boundary: Unauthorized, Forbidden, NotFound, Validation and
// Internal. Responses carry the human-readable message plus a stable
// machine-readable code.
package apierr

import (
	"encoding/json"
	"errors"
	"net/http"
)

// Stable error codes exposed to clients.
const (
	CodeValidation   = "validation_failed"
	CodeUnauthorized = "unauthorized"
	CodeForbidden    = "forbidden"
	CodeNotFound     = "not_found"
	CodeInternal     = "internal"
)

// Error is an API-visible error with an HTTP status and stable code.
type Error struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"error"`
}

func (e *Error) Error() string { return e.Message }

// Validation returns a 400 error.
func Validation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: message}
}

// Unauthorized returns a 401 error.
func Unauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden returns a 403 error.
func Forbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// NotFound returns a 404 error.
func NotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Code: CodeNotFound, Message: message}
}

// Internal returns a 500 error with a generic message; the underlying cause
// stays in the logs, not the response.
func Internal(message string) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: message}
}

// From coerces any error into an *Error, defaulting to Internal.
func From(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return Internal("Internal server error")
}

// Write sends err as a JSON response.
func Write(w http.ResponseWriter, err error) {
	apiErr := From(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(apiErr.Status)
	json.NewEncoder(w).Encode(apiErr)
}
