package client

import (
	"errors"
	"fmt"
)

var (
	ErrUnavailable      = errors.New("server unavailable")
	ErrUnexpectedStatus = errors.New("unexpected status")
	ErrDecode           = errors.New("malformed response body")
)

// StatusError carries the HTTP status of a rejected request.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

func (e *StatusError) Unwrap() error { return ErrUnexpectedStatus }
