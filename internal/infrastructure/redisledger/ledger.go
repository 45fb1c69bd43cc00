package redisledger

import (
	"context"
	"errors"
	"fmt"

	domstock "github.com/bhavnakumari/ecommerce-microservices/internal/domain/stock"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "stock:"

// Ledger persists stock quantities in Redis, one key per product. Missing
// keys read as quantity zero; reads never create entries.
type Ledger struct {
	rdb *redis.Client
}

var _ domstock.Ledger = (*Ledger)(nil)

func New(rdb *redis.Client) *Ledger {
	return &Ledger{rdb: rdb}
}

func stockKey(productID string) string {
	return keyPrefix + productID
}

func (l *Ledger) Get(ctx context.Context, productID string) (int, error) {
	qty, err := l.rdb.Get(ctx, stockKey(productID)).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("redisledger: get %s: %w", productID, err)
	}
	return qty, nil
}

func (l *Ledger) Set(ctx context.Context, productID string, quantity int) error {
	if err := l.rdb.Set(ctx, stockKey(productID), quantity, 0).Err(); err != nil {
		return fmt.Errorf("redisledger: set %s: %w", productID, err)
	}
	return nil
}

// Ping answers the dependency-health probe with a Redis round-trip.
func (l *Ledger) Ping(ctx context.Context) error {
	if err := l.rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redisledger: ping: %w", err)
	}
	return nil
}
