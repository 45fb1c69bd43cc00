package observability

// Metric names shared between the service wiring and the code that records them.
const (
	MHTTPRequests        = "http_requests_total"
	MHTTPRequestDuration = "http_request_duration_seconds"
	MStockLookups        = "stock_lookup_total"
	MStockLookupDuration = "stock_lookup_duration_seconds"
	MPaymentDecisions    = "payment_decisions_total"
)
