// Package netx classifies low-level network failures.
package netx

import (
	"context"
	"errors"
	"net"
	"os"
)

// IsTimeout reports whether err was caused by an elapsed deadline, either a
// context deadline or a net.Error timeout raised by the transport.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return true
	}
	return false
}

// IsCanceled reports whether err was caused by the caller canceling the
// request context.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
