package hrmsapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error is returned whenever the server responded with a non-2xx status.
// Transport failures (DNS, timeout, connection refused) are returned as
// plain wrapped errors instead, carrying no status.
type Error struct {
	// Status is the HTTP status code of the response.
	Status int

	// Body is the raw (possibly truncated) response body.
	Body []byte

	// Message is the human-readable message extracted from the error body,
	// empty when the body carried none.
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("hrms api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("hrms api: status %d", e.Status)
}

// errorBody is the uniform error envelope the backend uses. The original
// contract names the field "error"; "message" is accepted as a fallback.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func newError(status int, body []byte) *Error {
	e := &Error{Status: status, Body: body}
	var envelope errorBody
	if json.Unmarshal(body, &envelope) == nil {
		if envelope.Error != "" {
			e.Message = envelope.Error
		} else {
			e.Message = envelope.Message
		}
	}
	return e
}

// StatusOf returns the HTTP status carried by err, or 0 for transport
// failures and non-API errors. Callers must treat 0 as "unknown", distinct
// from any defined HTTP error.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// ErrorMessage extracts the server-provided message from err, falling back
// to the supplied default when the server sent none (or never responded).
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// IsUnauthorized reports whether err is a 401 API error.
func IsUnauthorized(err error) bool {
	return StatusOf(err) == http.StatusUnauthorized
}
