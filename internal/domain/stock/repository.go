package stock

import "context"

// Ledger is the persistence port for stock quantities.
//
// Get returns 0 for products that were never written; only infrastructure
// failures produce an error. Set overwrites unconditionally (last-write-wins,
// no optimistic lock) and exposes no increment primitive: adjusting callers
// must read-then-write, which races under concurrent writers to one key.
type Ledger interface {
	Get(ctx context.Context, productID string) (int, error)
	Set(ctx context.Context, productID string, quantity int) error
	Ping(ctx context.Context) error
}
