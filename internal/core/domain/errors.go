package domain

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrInvalidRole      = errors.New("invalid role")
	ErrInvalidStatus    = errors.New("invalid appointment status")
	ErrUnknownSlice     = errors.New("unknown slice")
	ErrUnknownRoute     = errors.New("unknown route")
)

// ServerError is a non-2xx response from the backend. Message holds the
// server's descriptive error field and may be empty.
type ServerError struct {
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d", e.Status)
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

// TransportError is a failure that never produced a usable server payload:
// connection errors, timeouts, undecodable bodies.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string { return e.Op + ": " + e.Err.Error() }

func (e *TransportError) Unwrap() error { return e.Err }

// MessageFor returns the text stored in a slice's error field for err: the
// server's own message when there is one, otherwise fallback.
func MessageFor(err error, fallback string) string {
	var se *ServerError
	if errors.As(err, &se) && strings.TrimSpace(se.Message) != "" {
		return se.Message
	}
	return fallback
}

// ServerStatus returns the backend's HTTP status for err, or 0 when err is
// not a ServerError.
func ServerStatus(err error) int {
	var se *ServerError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// IsProfileNotFound reports whether err is the backend telling the caller
// that the doctor or patient profile has not been created yet.
func IsProfileNotFound(err error) bool {
	var se *ServerError
	if !errors.As(err, &se) || se.Status != http.StatusBadRequest {
		return false
	}
	return strings.Contains(strings.ToLower(se.Message), "profile not found")
}
