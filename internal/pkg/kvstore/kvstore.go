// Package kvstore persists small JSON blobs keyed by string. It is the
// local-storage analog backing the wishlist and booking drafts: writes are
// synchronous full overwrites, last write wins, no merge.
package kvstore

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("key not found")

// Store is the persistence adapter consumed by the client-side state stores.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
