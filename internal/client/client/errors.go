package client

import (
	"bytes"
	"errors"
)

// Kind is the category a failed call is normalized into.
type Kind int

const (
	KindOther Kind = iota
	KindTimeout
	KindConnectivity
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindServerError
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindConnectivity:
		return "connectivity"
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindServerError:
		return "server_error"
	default:
		return "other"
	}
}

// Sentinels matched by a *ClassifiedError of the corresponding kind, so
// callers can write errors.Is(err, client.ErrUnauthorized).
var (
	ErrTimeout      = errors.New("request timed out")
	ErrConnectivity = errors.New("server unreachable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrServerError  = errors.New("server error")
)

func (k Kind) sentinel() error {
	switch k {
	case KindTimeout:
		return ErrTimeout
	case KindConnectivity:
		return ErrConnectivity
	case KindUnauthorized:
		return ErrUnauthorized
	case KindForbidden:
		return ErrForbidden
	case KindNotFound:
		return ErrNotFound
	case KindServerError:
		return ErrServerError
	default:
		return nil
	}
}

// User-facing messages.
const (
	MsgTimeout            = "Request timed out. Please try again."
	MsgConnectivity       = "Unable to connect to the server. Please check your internet connection."
	MsgInvalidCredentials = "Invalid email or password."
	MsgSessionExpired     = "Your session has expired. Please log in again."
	MsgForbidden          = "You do not have permission to perform this action."
	MsgNotFound           = "The requested resource was not found."
	MsgServerError        = "Server error. Please try again later."
	MsgGeneric            = "An error occurred"
)

// ClassifiedError is the only error shape a failed network call produces.
// It is immutable once built; Error returns the user-facing message.
type ClassifiedError struct {
	kind    Kind
	message string
	status  int
	payload []byte
	cause   error
}

// NewClassifiedError builds a ClassifiedError directly. The pipeline uses
// Classify instead; services use it through Fallback.
func NewClassifiedError(kind Kind, message string, status int, payload []byte) *ClassifiedError {
	return &ClassifiedError{kind: kind, message: message, status: status, payload: clone(payload)}
}

func (e *ClassifiedError) Error() string { return e.message }

// Unwrap exposes the transport error the classification was made from.
func (e *ClassifiedError) Unwrap() error { return e.cause }

// Is matches the sentinel of the error's kind.
func (e *ClassifiedError) Is(target error) bool {
	s := e.kind.sentinel()
	return s != nil && target == s
}

func (e *ClassifiedError) Kind() Kind      { return e.kind }
func (e *ClassifiedError) Message() string { return e.message }

// Status is the HTTP status, 0 when no response was obtained and 408 on
// a client-side timeout.
func (e *ClassifiedError) Status() int { return e.status }

// Payload returns a copy of the raw response body, or nil.
func (e *ClassifiedError) Payload() []byte { return clone(e.payload) }

// clone keeps nil as nil and an empty body as empty.
func clone(b []byte) []byte {
	return bytes.Clone(b)
}
