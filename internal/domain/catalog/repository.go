package catalog

import "context"

// Repository is the persistence port for product records.
//
// SKU uniqueness is the store's responsibility (a unique index, or an
// equivalent check under the store's own lock): Insert and Update surface
// ErrDuplicateSKU instead of relying on an application-level pre-check, so
// two concurrent writes with one SKU cannot both succeed.
type Repository interface {
	// FindAll returns up to limit products in the store's natural iteration
	// order; no contractual sorting.
	FindAll(ctx context.Context, limit int) ([]Product, error)
	FindByID(ctx context.Context, id string) (Product, error)
	Insert(ctx context.Context, p Product) error
	// Update applies the set fields and returns the resulting record.
	Update(ctx context.Context, id string, u Update) (Product, error)
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
