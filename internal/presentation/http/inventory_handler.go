package httppresentation

import (
	"errors"
	"net/http"

	appstock "github.com/bhavnakumari/ecommerce-microservices/internal/application/stock"
	domstock "github.com/bhavnakumari/ecommerce-microservices/internal/domain/stock"
	"github.com/bhavnakumari/ecommerce-microservices/internal/observability"
)

// InventoryHandler exposes the stock ledger over HTTP.
type InventoryHandler struct {
	plumbing
	stock *appstock.Service
}

func NewInventoryHandler(stock *appstock.Service, logger observability.Logger, tel observability.Telemetry) *InventoryHandler {
	return &InventoryHandler{
		plumbing: newPlumbing("inventory", logger, tel),
		stock:    stock,
	}
}

func (h *InventoryHandler) Router() http.Handler {
	mux := http.NewServeMux()

	h.handle(mux, http.MethodGet, "/api/inventory/{productId}", h.handleGetStock)
	h.handle(mux, http.MethodPut, "/api/inventory/{productId}", h.handleSetStock)
	h.handle(mux, http.MethodGet, "/health", h.handleHealth)
	h.handle(mux, http.MethodGet, "/health/deps", h.handleDepsHealth)

	return mux
}

type stockResponse struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

func (h *InventoryHandler) handleGetStock(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")

	qty, err := h.stock.GetQuantity(r.Context(), productID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "inventory store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, stockResponse{ProductID: productID, Quantity: qty})
}

type setStockRequest struct {
	// Pointer distinguishes a missing quantity from an explicit zero.
	Quantity *int `json:"quantity"`
}

func (h *InventoryHandler) handleSetStock(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("productId")

	var req setStockRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "'quantity' must be an integer")
		return
	}
	if req.Quantity == nil {
		writeError(w, http.StatusBadRequest, "missing 'quantity'")
		return
	}

	stored, err := h.stock.SetQuantity(r.Context(), productID, *req.Quantity)
	if err != nil {
		if errors.Is(err, domstock.ErrNegativeQuantity) {
			writeError(w, http.StatusBadRequest, "quantity cannot be negative")
			return
		}
		writeError(w, http.StatusInternalServerError, "inventory store unavailable")
		return
	}
	writeJSON(w, http.StatusOK, stockResponse{ProductID: productID, Quantity: stored})
}

func (h *InventoryHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Service: "inventory"})
}

// handleDepsHealth reports whether the Redis round-trip succeeds.
func (h *InventoryHandler) handleDepsHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.stock.Healthy(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, depsHealthResponse{
			Status: "fail", Backend: "redis", Error: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, depsHealthResponse{Status: "ok", Backend: "redis"})
}
