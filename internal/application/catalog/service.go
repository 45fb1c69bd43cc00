package catalog

import (
	"context"
	"fmt"

	domcatalog "github.com/bhavnakumari/ecommerce-microservices/internal/domain/catalog"
	"github.com/bhavnakumari/ecommerce-microservices/internal/observability"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

const (
	defaultListLimit   = 1000
	defaultStockFanOut = 8
)

// StockFetcher is the read-side port onto the inventory service. It is
// best-effort by contract: implementations absorb every failure (timeout,
// refused connection, bad status, malformed body) and report quantity 0, so
// catalog reads never depend on inventory availability.
type StockFetcher interface {
	Quantity(ctx context.Context, productID string) int
}

// View is the outward-facing product representation: the persisted record
// plus a point-in-time stock quantity merged in at read time.
type View struct {
	domcatalog.Product
	Stock int
}

// CreateInput carries the creation fields accepted at the API boundary.
// Stock is required and validated but, matching the observed system, it is
// not written to the inventory ledger: a freshly created product reads back
// with stock 0 until someone sets its quantity explicitly.
type CreateInput struct {
	Name        string
	SKU         string
	Description string
	Price       float64
	Stock       int
	Category    string
	ImageURL    string
}

// Options tune the read path; zero values fall back to defaults.
type Options struct {
	ListLimit   int
	StockFanOut int
}

// Service composes the product catalog with live stock on reads and owns the
// catalog-only write path.
type Service struct {
	repo        domcatalog.Repository
	stock       StockFetcher
	listLimit   int
	stockFanOut int
	tel         observability.Telemetry
	log         observability.Logger
}

func NewService(repo domcatalog.Repository, stock StockFetcher, tel observability.Telemetry, opts Options) *Service {
	if tel == nil {
		tel = observability.Nop()
	}
	if opts.ListLimit <= 0 {
		opts.ListLimit = defaultListLimit
	}
	if opts.StockFanOut <= 0 {
		opts.StockFanOut = defaultStockFanOut
	}
	return &Service{
		repo:        repo,
		stock:       stock,
		listLimit:   opts.ListLimit,
		stockFanOut: opts.StockFanOut,
		tel:         tel,
		log:         tel.Logger().With(observability.F("component", "catalog_service")),
	}
}

// Get reads one product and merges in its quantity with exactly one stock
// lookup. A catalog miss returns ErrNotFound without calling the fetcher.
func (s *Service) Get(ctx context.Context, id string) (View, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "catalog.Get",
		attribute.String("product.id", id))
	defer span.End()

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return View{}, err
	}
	return View{Product: p, Stock: s.stock.Quantity(ctx, p.ID)}, nil
}

// List reads up to the configured cap of products in store order, then
// enriches them with stock through a bounded concurrent fan-out. Workers
// never return errors: a failed lookup leaves that product at quantity 0
// and cannot fail or cancel the rest of the list.
func (s *Service) List(ctx context.Context) ([]View, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "catalog.List")
	defer span.End()

	products, err := s.repo.FindAll(ctx, s.listLimit)
	if err != nil {
		return nil, fmt.Errorf("catalog: list: %w", err)
	}
	span.SetAttributes(attribute.Int("catalog.count", len(products)))

	views := make([]View, len(products))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.stockFanOut)
	for i, p := range products {
		g.Go(func() error {
			views[i] = View{Product: p, Stock: s.stock.Quantity(gctx, p.ID)}
			return nil
		})
	}
	_ = g.Wait() // workers are infallible

	return views, nil
}

// Create validates the input, assigns a fresh id, and inserts the record.
// The accepted stock value is discarded after validation; see CreateInput.
func (s *Service) Create(ctx context.Context, in CreateInput) (View, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "catalog.Create",
		attribute.String("product.sku", in.SKU))
	defer span.End()

	if in.Stock < 0 {
		return View{}, fmt.Errorf("%w: stock cannot be negative", domcatalog.ErrInvalid)
	}
	p, err := domcatalog.NewProduct(uuid.NewString(), in.Name, in.SKU, in.Price)
	if err != nil {
		return View{}, err
	}
	p.Description = in.Description
	p.Category = in.Category
	p.ImageURL = in.ImageURL

	if err := s.repo.Insert(ctx, p); err != nil {
		return View{}, err
	}

	observability.Log(ctx, s.log).Info("product_created",
		observability.F("product_id", p.ID),
		observability.F("sku", p.SKU),
	)
	// Stock was not seeded into the ledger, so the record reads back at 0.
	return View{Product: p, Stock: 0}, nil
}

// Update applies a partial mutation; only fields present in u change.
func (s *Service) Update(ctx context.Context, id string, u domcatalog.Update) (View, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "catalog.Update",
		attribute.String("product.id", id))
	defer span.End()

	if err := u.Validate(); err != nil {
		return View{}, err
	}
	p, err := s.repo.Update(ctx, id, u)
	if err != nil {
		return View{}, err
	}

	observability.Log(ctx, s.log).Info("product_updated",
		observability.F("product_id", p.ID),
	)
	return View{Product: p, Stock: s.stock.Quantity(ctx, p.ID)}, nil
}

// Delete removes the record from the catalog only. Any ledger entry for the
// product is left behind (orphaned by design); deleting an unknown or
// already-deleted id reports ErrNotFound.
func (s *Service) Delete(ctx context.Context, id string) error {
	ctx, span := s.tel.Tracer().Start(ctx, "catalog.Delete",
		attribute.String("product.id", id))
	defer span.End()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	observability.Log(ctx, s.log).Info("product_deleted",
		observability.F("product_id", id),
	)
	return nil
}

// Healthy reports whether the catalog store answers a lightweight round-trip.
func (s *Service) Healthy(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
