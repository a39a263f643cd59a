package api

import (
	"encoding/json"
	"fmt"
)

var (
	// ErrTimeout marks a call aborted by the client-side deadline. Callers
	// surface it as a retry-suggesting message, distinct from ErrNetwork.
	ErrTimeout = fmt.Errorf("request timed out")

	// ErrNetwork wraps transport failures other than the deadline.
	ErrNetwork = fmt.Errorf("network error")
)

// APIError is a non-2xx response. Message carries the server's structured
// error verbatim when the body parsed, otherwise a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string { return e.Message }

// newAPIError extracts the "error" field of a JSON error body, falling back
// to "request failed (<status>)" when the body is empty or unparseable.
func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{Status: status, Message: fmt.Sprintf("request failed (%d)", status)}
	if len(body) == 0 {
		return apiErr
	}
	var parsed struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error != "" {
		apiErr.Message = parsed.Error
	}
	return apiErr
}
