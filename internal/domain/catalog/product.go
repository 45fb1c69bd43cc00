package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrNotFound     = errors.New("catalog: product not found")
	ErrDuplicateSKU = errors.New("catalog: sku already exists")

	// ErrInvalid is the root of all user-correctable validation failures.
	// Concrete failures wrap it so handlers can match with errors.Is.
	ErrInvalid = errors.New("catalog: invalid input")

	ErrNoFields = fmt.Errorf("%w: no fields to update", ErrInvalid)
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Product is the persisted catalog record. Stock is deliberately not part of
// it: quantity lives in the inventory service's ledger and is merged into the
// outward representation at read time only.
type Product struct {
	ID          string
	Name        string
	SKU         string
	Description string
	Price       float64
	Category    string
	ImageURL    string
}

// NewProduct validates creation fields. Stock is validated alongside even
// though the catalog never stores it; see application/catalog for the write
// path that discards it.
func NewProduct(id, name, sku string, price float64) (Product, error) {
	var missing []string
	if strings.TrimSpace(name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(sku) == "" {
		missing = append(missing, "sku")
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return Product{}, invalidf("missing required fields: %s", strings.Join(missing, ", "))
	}
	if price <= 0 {
		return Product{}, invalidf("price must be greater than zero")
	}
	return Product{ID: id, Name: name, SKU: sku, Price: price}, nil
}

// Update carries a partial mutation: nil fields are left untouched.
type Update struct {
	Name        *string
	SKU         *string
	Description *string
	Price       *float64
	Category    *string
	ImageURL    *string
}

// Empty reports whether no field is set at all, which the write path rejects.
func (u Update) Empty() bool {
	return u.Name == nil && u.SKU == nil && u.Description == nil &&
		u.Price == nil && u.Category == nil && u.ImageURL == nil
}

// Validate checks only the fields that are present.
func (u Update) Validate() error {
	if u.Empty() {
		return ErrNoFields
	}
	if u.Name != nil && strings.TrimSpace(*u.Name) == "" {
		return invalidf("name cannot be empty")
	}
	if u.SKU != nil && strings.TrimSpace(*u.SKU) == "" {
		return invalidf("sku cannot be empty")
	}
	if u.Price != nil && *u.Price <= 0 {
		return invalidf("price must be greater than zero")
	}
	return nil
}

// Apply overlays the set fields onto p.
func (u Update) Apply(p *Product) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.SKU != nil {
		p.SKU = *u.SKU
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.Category != nil {
		p.Category = *u.Category
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
}
