package client

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable = errors.New("server unavailable")
	ErrHTTPStatus  = errors.New("unexpected http status")
	ErrDecode      = errors.New("malformed response body")
)

// StatusError reports a non-2xx response. Detail holds the backend's
// "detail" message when the body carried one.
type StatusError struct {
	StatusCode int
	Method     string
	Path       string
	Detail     string
}

func (e *StatusError) Error() string {
	msg := fmt.Sprintf("%s %s: status %d %s", e.Method, e.Path, e.StatusCode, http.StatusText(e.StatusCode))
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *StatusError) Is(target error) bool {
	return target == ErrHTTPStatus
}

// DecodeError reports a 2xx response whose body could not be decoded.
type DecodeError struct {
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: decode response: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// StatusCode extracts the HTTP status from err, or 0 when err is not a
// status failure.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}
