package stock

import (
	"context"
	"fmt"

	domstock "github.com/bhavnakumari/ecommerce-microservices/internal/domain/stock"
	"github.com/bhavnakumari/ecommerce-microservices/internal/observability"
	"go.opentelemetry.io/otel/attribute"
)

// Service exposes the stock ledger operations of the inventory service.
type Service struct {
	ledger domstock.Ledger
	tel    observability.Telemetry
	log    observability.Logger
}

func NewService(ledger domstock.Ledger, tel observability.Telemetry) *Service {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Service{
		ledger: ledger,
		tel:    tel,
		log:    tel.Logger().With(observability.F("component", "stock_service")),
	}
}

// GetQuantity returns the stored quantity for a product, or 0 when no entry
// exists. There is no business failure on this path; an error means the
// ledger store itself is unreachable.
func (s *Service) GetQuantity(ctx context.Context, productID string) (int, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "stock.GetQuantity",
		attribute.String("product.id", productID))
	defer span.End()

	qty, err := s.ledger.Get(ctx, productID)
	if err != nil {
		return 0, fmt.Errorf("stock: get quantity: %w", err)
	}
	return qty, nil
}

// SetQuantity overwrites the quantity for a product and returns the stored
// value. Last write wins; concurrent writers to one product race by contract.
func (s *Service) SetQuantity(ctx context.Context, productID string, quantity int) (int, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "stock.SetQuantity",
		attribute.String("product.id", productID),
		attribute.Int("stock.quantity", quantity))
	defer span.End()

	entry, err := domstock.NewEntry(productID, quantity)
	if err != nil {
		return 0, err
	}
	if err := s.ledger.Set(ctx, entry.ProductID, entry.Quantity); err != nil {
		return 0, fmt.Errorf("stock: set quantity: %w", err)
	}

	observability.Log(ctx, s.log).Info("stock_set",
		observability.F("product_id", productID),
		observability.F("quantity", quantity),
	)
	return entry.Quantity, nil
}

// Healthy reports whether the ledger store answers a lightweight round-trip.
func (s *Service) Healthy(ctx context.Context) error {
	return s.ledger.Ping(ctx)
}
