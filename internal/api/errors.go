package api

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// RequestError is a non-2xx backend response. Message carries the backend's
// "message" field when the body had one, otherwise it is empty and callers
// fall back to their own operation-specific message.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return http.StatusText(e.Status)
}

// newRequestError extracts the backend error message from a failed response.
func newRequestError(resp *http.Response) *RequestError {
	reqErr := &RequestError{Status: resp.StatusCode}

	// Error bodies are small; cap the read anyway.
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return reqErr
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		reqErr.Message = payload.Message
	}
	return reqErr
}

// IsNotFound reports whether err is a backend 404. A 404 on a training
// material listing means "no materials yet", not a failure.
func IsNotFound(err error) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Status == http.StatusNotFound
}

// IsStatus reports whether err is a backend response with the given status.
func IsStatus(err error, status int) bool {
	var reqErr *RequestError
	return errors.As(err, &reqErr) && reqErr.Status == status
}

// ErrorMessage returns the backend-provided message from err when there is
// one, else the given fallback. Slice operations use this to honor the
// backend's message while keeping a per-operation default.
func ErrorMessage(err error, fallback string) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		return reqErr.Message
	}
	return fallback
}
