package upstream

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response from the upstream suite API. Detail holds
// the server-supplied error/detail field verbatim when one was present, so
// the UI can surface the upstream's own message.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("upstream request failed with status %d", e.StatusCode)
}

func newAPIError(status int, body []byte) *APIError {
	return &APIError{StatusCode: status, Detail: extractDetail(body)}
}

// extractDetail pulls the server's error message out of the usual envelope
// keys. An empty string means the caller falls back to a generic message.
func extractDetail(body []byte) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	for _, key := range []string{"detail", "error", "message"} {
		raw, ok := envelope[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil && s != "" {
			return s
		}
	}
	return ""
}
