package statbank

import (
	"errors"
	"fmt"
)

// Sentinel errors for consistent error handling.
var (
	ErrBaseURLRequired = errors.New("base URL is required")
	ErrTableIDRequired = errors.New("table id is required")
)

// StatusError reports a non-2xx response from the remote API.
type StatusError struct {
	StatusCode int
	URL        string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("statbank: %s returned status %d: %s", e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("statbank: %s returned status %d", e.URL, e.StatusCode)
}
