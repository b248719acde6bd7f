package webapi

import (
	"errors"
	"fmt"
)

// AuthError is returned when the token source cannot supply a token.
// Requests are never sent when this happens.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("webapi: failed to obtain access token: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// TransportError is a network level failure, no response was received.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("webapi: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError represents an unsuccessful HTTP response from the Web API.
//
// Rate limit responses (429) are retried internally and never surface
// as a StatusError.
type StatusError struct {
	StatusCode int    // HTTP status code
	Message    string // Error message from the API, if one was sent
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("webapi: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("webapi: status %d", e.StatusCode)
}

// Is matches another *StatusError with the same status code.
//
// This allows errors.Is(err, &StatusError{StatusCode: 404}).
func (e *StatusError) Is(target error) bool {
	t, ok := target.(*StatusError)
	if !ok {
		return false
	}
	return e.StatusCode == t.StatusCode
}

// DecodeError is returned when a response body cannot be decoded into the
// expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("webapi: failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// ResolutionError is returned when a response is well formed but violates
// an invariant the caller relies on.
type ResolutionError struct {
	Message string
}

func (e *ResolutionError) Error() string {
	return "webapi: " + e.Message
}

// Predefined errors for common cases.
var (
	// ErrAlreadyInstalled is returned by Install when a global client
	// has already been installed.
	ErrAlreadyInstalled = errors.New("webapi: cannot install more than once")

	// ErrNotInstalled is returned by Global before Install is called.
	ErrNotInstalled = errors.New("webapi: no global client installed")

	// ErrInvalidLink is returned when a deep link cannot be parsed.
	ErrInvalidLink = errors.New("webapi: invalid link")
)
