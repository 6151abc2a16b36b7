// Package service implements the business operations behind the HTTP API.
package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindConflict
	KindTooManyRequests
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindUnauthorized:
		return "unauthorized"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindTooManyRequests:
		return "too_many_requests"
	default:
		return "internal"
	}
}

// Error carries a client-facing message and an optional cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func badRequest(format string, args ...any) error {
	return &Error{Kind: KindBadRequest, Msg: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func conflict(msg string, err error) error {
	return &Error{Kind: KindConflict, Msg: msg, Err: err}
}

func unauthorized(msg string, err error) error {
	return &Error{Kind: KindUnauthorized, Msg: msg, Err: err}
}

// internal hides err behind a message naming the failed operation.
func internal(op string, err error) error {
	return &Error{Kind: KindInternal, Msg: "Error " + op, Err: err}
}

// KindOf reports the Kind of err. Errors not raised by this package are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message for err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	return "Internal server error"
}
