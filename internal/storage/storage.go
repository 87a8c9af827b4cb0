// Package storage provides the key/value persistence sink the core writes
// its snapshots through. The durable backends (sqlite, postgres) stand in
// for the browser's localStorage; the memory backend is the sessionStorage
// analog and the test double.
package storage

import "context"

// Storage keys used by the core services.
const (
	KeyMenu     = "canteen_menu"
	KeyOrders   = "canteen_orders"
	KeySequence = "canteen_sequence"
	KeySession  = "canteen_session"
)

type Store interface {
	// Get returns the value for key. found is false when the key has never
	// been written; that is the normal first-run case, not an error.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
