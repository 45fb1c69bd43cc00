package memory

import (
	"context"
	"sync"

	domstock "github.com/bhavnakumari/ecommerce-microservices/internal/domain/stock"
)

// Ledger is an in-process stock.Ledger used by tests and local runs.
// It mirrors the redis ledger contract: absent keys read as zero.
type Ledger struct {
	mu      sync.RWMutex
	entries map[string]int
}

var _ domstock.Ledger = (*Ledger)(nil)

func NewLedger() *Ledger {
	return &Ledger{entries: make(map[string]int)}
}

func (l *Ledger) Get(ctx context.Context, productID string) (int, error) {
	_ = ctx

	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entries[productID], nil
}

func (l *Ledger) Set(ctx context.Context, productID string, quantity int) error {
	_ = ctx

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[productID] = quantity
	return nil
}

func (l *Ledger) Ping(ctx context.Context) error {
	_ = ctx
	return nil
}
