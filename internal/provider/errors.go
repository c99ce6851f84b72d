package provider

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// AuthError means the upstream rejected our credentials, either at the
// token endpoint or with a 401 on an API call. The app surfaces it as a
// prompt to re-authenticate rather than a generic failure.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// SearchError covers every other upstream or transport failure.
// StatusCode is the upstream HTTP status, or 0 when the request never
// produced a response (timeout, connection refused).
type SearchError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *SearchError) Error() string {
	return e.Message
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

// upstreamMessage extracts the provider's own error message from a
// failure body when it has one, falling back to the HTTP status line.
func upstreamMessage(body []byte, status int) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return fmt.Sprintf("upstream returned HTTP %d (%s)", status, http.StatusText(status))
}
