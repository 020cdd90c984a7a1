package ports

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get for absent keys. Unparsable stored values
// are treated by callers exactly like an absent key (migration-free fallback).
var ErrKeyNotFound = errors.New("key not found")

// KeyValueStore is the durable plain-text store shared by the session and
// search-history components. Subsystems own disjoint key namespaces by
// convention, not enforcement, and there are no transactional guarantees
// across keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
