package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/bookshelf/internal/netx"
)

// Endpoint tells the classifier which 401 message applies.
type Endpoint int

const (
	// EndpointProtected requires a session token; a 401 means it expired.
	EndpointProtected Endpoint = iota
	// EndpointAuth is login or registration; a 401 means bad credentials.
	EndpointAuth
)

// StatusError is a non-2xx response as seen by the pipeline before it is
// classified.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.StatusCode)
}

// Classify turns a failed call into exactly one ClassifiedError. Rules, first
// match wins: elapsed deadline, no response, then the HTTP status. An error
// that already carries a ClassifiedError is returned as that same value.
func Classify(err error, ep Endpoint) *ClassifiedError {
	if err == nil {
		return nil
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce
	}

	if netx.IsTimeout(err) {
		return &ClassifiedError{kind: KindTimeout, message: MsgTimeout, status: http.StatusRequestTimeout, cause: err}
	}

	var se *StatusError
	if errors.As(err, &se) {
		ce := classifyStatus(se.StatusCode, se.Body, ep)
		ce.cause = err
		return ce
	}

	return &ClassifiedError{kind: KindConnectivity, message: MsgConnectivity, status: 0, cause: err}
}

func classifyStatus(status int, body []byte, ep Endpoint) *ClassifiedError {
	e := &ClassifiedError{status: status, payload: clone(body)}

	switch status {
	case http.StatusUnauthorized:
		e.kind = KindUnauthorized
		if ep == EndpointAuth {
			e.message = MsgInvalidCredentials
		} else {
			e.message = MsgSessionExpired
		}
	case http.StatusForbidden:
		e.kind, e.message = KindForbidden, MsgForbidden
	case http.StatusNotFound:
		e.kind, e.message = KindNotFound, MsgNotFound
	case http.StatusInternalServerError:
		e.kind, e.message = KindServerError, MsgServerError
	default:
		e.kind, e.message = KindOther, serverMessage(body)
	}

	return e
}

// serverMessage extracts {"message": "..."} from a response body.
func serverMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return MsgGeneric
	}
	if m := strings.TrimSpace(payload.Message); m != "" {
		return m
	}
	return MsgGeneric
}

// Fallback keeps an already classified error as is and replaces anything
// else with a classified error carrying the operation-specific message.
func Fallback(err error, message string) error {
	if err == nil {
		return nil
	}
	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce
	}
	return &ClassifiedError{kind: KindOther, message: message, cause: err}
}
