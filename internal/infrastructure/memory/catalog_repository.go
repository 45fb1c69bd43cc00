package memory

import (
	"context"
	"sync"

	domcatalog "github.com/bhavnakumari/ecommerce-microservices/internal/domain/catalog"
)

// CatalogRepository is an in-process catalog.Repository used by tests and
// local runs. SKU uniqueness is enforced under the repository lock, matching
// the unique-index guarantee of the mongo implementation.
type CatalogRepository struct {
	mu       sync.RWMutex
	products map[string]domcatalog.Product
}

var _ domcatalog.Repository = (*CatalogRepository)(nil)

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{products: make(map[string]domcatalog.Product)}
}

func (r *CatalogRepository) FindAll(ctx context.Context, limit int) ([]domcatalog.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domcatalog.Product, 0, len(r.products))
	for _, p := range r.products {
		if limit > 0 && len(out) >= limit {
			break
		}
		out = append(out, p)
	}
	return out, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (domcatalog.Product, error) {
	_ = ctx

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[id]
	if !ok {
		return domcatalog.Product{}, domcatalog.ErrNotFound
	}
	return p, nil
}

func (r *CatalogRepository) Insert(ctx context.Context, p domcatalog.Product) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.skuTakenLocked(p.SKU, p.ID) {
		return domcatalog.ErrDuplicateSKU
	}
	r.products[p.ID] = p
	return nil
}

func (r *CatalogRepository) Update(ctx context.Context, id string, u domcatalog.Update) (domcatalog.Product, error) {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[id]
	if !ok {
		return domcatalog.Product{}, domcatalog.ErrNotFound
	}
	if u.SKU != nil && r.skuTakenLocked(*u.SKU, id) {
		return domcatalog.Product{}, domcatalog.ErrDuplicateSKU
	}
	u.Apply(&p)
	r.products[id] = p
	return p, nil
}

func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	_ = ctx

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return domcatalog.ErrNotFound
	}
	delete(r.products, id)
	return nil
}

func (r *CatalogRepository) Ping(ctx context.Context) error {
	_ = ctx
	return nil
}

func (r *CatalogRepository) skuTakenLocked(sku, excludeID string) bool {
	for id, p := range r.products {
		if id != excludeID && p.SKU == sku {
			return true
		}
	}
	return false
}
