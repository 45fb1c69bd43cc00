package stockclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	appcatalog "github.com/bhavnakumari/ecommerce-microservices/internal/application/catalog"
	"github.com/bhavnakumari/ecommerce-microservices/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
)

const defaultTimeout = 2 * time.Second

// Client fetches live quantities from the inventory service's boundary.
//
// It is best-effort by contract: one bounded request per call, and every
// failure mode — dial error, timeout, non-200, malformed body — collapses to
// quantity 0 without surfacing an error. Catalog reads therefore never depend
// on inventory availability, at the cost of showing zero stock during an
// outage. No retries, no circuit breaker, no caching.
type Client struct {
	baseURL string
	httpc   *http.Client
	timeout time.Duration
	tel     observability.Telemetry
	log     observability.Logger
}

var _ appcatalog.StockFetcher = (*Client)(nil)

func New(baseURL string, timeout time.Duration, tel observability.Telemetry) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if tel == nil {
		tel = observability.Nop()
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc: &http.Client{
			// Timeouts are driven per request through the context.
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
			},
		},
		timeout: timeout,
		tel:     tel,
		log:     tel.Logger().With(observability.F("component", "stock_client")),
	}
}

type quantityResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// Quantity returns the ledger quantity for a product, or 0 on any failure.
func (c *Client) Quantity(ctx context.Context, productID string) int {
	ctx, span := c.tel.Tracer().Start(ctx, "stockclient.Quantity",
		attribute.String("product.id", productID))
	defer span.End()

	start := time.Now()
	qty, err := c.fetch(ctx, productID)
	c.tel.Histogram(observability.MStockLookupDuration).Observe(time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.tel.Counter(observability.MStockLookups).Add(1, observability.L("outcome", "degraded"))
		observability.Log(ctx, c.log).Warn("stock_lookup_degraded",
			observability.F("product_id", productID),
			observability.F("error", err.Error()),
		)
		return 0
	}
	c.tel.Counter(observability.MStockLookups).Add(1, observability.L("outcome", "ok"))
	return qty
}

func (c *Client) fetch(ctx context.Context, productID string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + "/api/inventory/" + url.PathEscape(productID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return 0, err
	}
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, &statusError{status: resp.Status}
	}

	var body quantityResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, err
	}
	if body.Quantity < 0 {
		return 0, &statusError{status: "negative quantity"}
	}
	return body.Quantity, nil
}

type statusError struct{ status string }

func (e *statusError) Error() string {
	return "stockclient: inventory responded " + e.status
}
