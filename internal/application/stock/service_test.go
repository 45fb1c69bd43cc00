package stock

import (
	"context"
	"testing"

	domstock "github.com/bhavnakumari/ecommerce-microservices/internal/domain/stock"
	"github.com/bhavnakumari/ecommerce-microservices/internal/infrastructure/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetQuantityDefaultsToZero(t *testing.T) {
	svc := NewService(memory.NewLedger(), nil)

	qty, err := svc.GetQuantity(context.Background(), "never-written")
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}

func TestSetThenGetRoundTrip(t *testing.T) {
	svc := NewService(memory.NewLedger(), nil)
	ctx := context.Background()

	stored, err := svc.SetQuantity(ctx, "p1", 10)
	require.NoError(t, err)
	assert.Equal(t, 10, stored)

	qty, err := svc.GetQuantity(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 10, qty)
}

func TestSetOverwritesLastWriteWins(t *testing.T) {
	svc := NewService(memory.NewLedger(), nil)
	ctx := context.Background()

	_, err := svc.SetQuantity(ctx, "p1", 10)
	require.NoError(t, err)
	_, err = svc.SetQuantity(ctx, "p1", 3)
	require.NoError(t, err)

	qty, err := svc.GetQuantity(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 3, qty)
}

func TestSetZeroIsValid(t *testing.T) {
	svc := NewService(memory.NewLedger(), nil)

	stored, err := svc.SetQuantity(context.Background(), "p1", 0)
	require.NoError(t, err)
	assert.Equal(t, 0, stored)
}

func TestSetNegativeRejected(t *testing.T) {
	ledger := memory.NewLedger()
	svc := NewService(ledger, nil)
	ctx := context.Background()

	_, err := svc.SetQuantity(ctx, "p1", -1)
	assert.ErrorIs(t, err, domstock.ErrNegativeQuantity)

	// The rejected write must not have touched the ledger.
	qty, err := svc.GetQuantity(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, 0, qty)
}
