package adapter

import (
	"errors"
	"fmt"
)

// FallbackMessage is the RequestFailedError message used when the server
// does not supply one.
const FallbackMessage = "Request failed"

var (
	// ErrUnauthorized is returned for every 401 response, after the stored
	// token has been cleared.
	ErrUnauthorized = errors.New("Unauthorized")

	// ErrTransport wraps failures where no HTTP response was received.
	ErrTransport = errors.New("transport failure")
)

// RequestFailedError is returned for a non-2xx response other than 401.
type RequestFailedError struct {
	// StatusCode is the HTTP status returned by the API.
	StatusCode int
	// Message is the server's "detail" or [FallbackMessage].
	Message string
}

// Error returns Message so that callers can show it to the user as is.
func (e *RequestFailedError) Error() string {
	return e.Message
}

// String is a diagnostic form including the status code.
func (e *RequestFailedError) String() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}
