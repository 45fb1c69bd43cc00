package stock

import (
	"errors"
	"time"
)

var (
	// ErrNegativeQuantity rejects writes below zero. Quantity zero is valid
	// and is what absent entries implicitly hold.
	ErrNegativeQuantity = errors.New("stock: quantity cannot be negative")
)

// Entry is one row of the stock ledger: a product identifier mapped to a
// non-negative quantity. Entries are created or overwritten only by explicit
// sets; a product never written reads as quantity zero.
type Entry struct {
	ProductID string
	Quantity  int
	UpdatedAt time.Time
}

func NewEntry(productID string, quantity int) (Entry, error) {
	if quantity < 0 {
		return Entry{}, ErrNegativeQuantity
	}
	return Entry{
		ProductID: productID,
		Quantity:  quantity,
		UpdatedAt: time.Now().UTC(),
	}, nil
}
