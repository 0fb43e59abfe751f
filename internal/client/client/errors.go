package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable       = errors.New("server unavailable")
	ErrMalformedResponse = errors.New("malformed response")
)

// StatusError is returned for non-2xx responses. Message is what the service
// reported, or a generic text naming the status code.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return e.Message
}

func genericStatusMessage(code int) string {
	return fmt.Sprintf("Operation failed with status: %d", code)
}
