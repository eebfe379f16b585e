// Package metadata provides the client's durable key-value storage. It backs
// the session token so it survives restarts of the client.
package metadata

import (
	"context"
)

// Repository is a durable key-value store. Get returns (nil, nil) for a
// missing key and Delete of a missing key is not an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
