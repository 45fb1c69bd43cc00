package httppresentation

import (
	"errors"
	"net/http"
	"strings"

	appcatalog "github.com/bhavnakumari/ecommerce-microservices/internal/application/catalog"
	domcatalog "github.com/bhavnakumari/ecommerce-microservices/internal/domain/catalog"
	"github.com/bhavnakumari/ecommerce-microservices/internal/observability"
)

// ProductsHandler exposes the product catalog over HTTP, with live stock
// merged into every read response.
type ProductsHandler struct {
	plumbing
	catalog *appcatalog.Service
}

func NewProductsHandler(catalog *appcatalog.Service, logger observability.Logger, tel observability.Telemetry) *ProductsHandler {
	return &ProductsHandler{
		plumbing: newPlumbing("products", logger, tel),
		catalog:  catalog,
	}
}

func (h *ProductsHandler) Router() http.Handler {
	mux := http.NewServeMux()

	h.handle(mux, http.MethodGet, "/api/products", h.handleList)
	h.handle(mux, http.MethodPost, "/api/products", h.handleCreate)
	h.handle(mux, http.MethodGet, "/api/products/{id}", h.handleGet)
	h.handle(mux, http.MethodPatch, "/api/products/{id}", h.handleUpdate)
	h.handle(mux, http.MethodDelete, "/api/products/{id}", h.handleDelete)
	h.handle(mux, http.MethodGet, "/health", h.handleHealth)
	h.handle(mux, http.MethodGet, "/health/deps", h.handleDepsHealth)

	return mux
}

type productResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	SKU         string  `json:"sku"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Category    string  `json:"category"`
	ImageURL    string  `json:"imageUrl"`
}

func toProductResponse(v appcatalog.View) productResponse {
	return productResponse{
		ID:          v.ID,
		Name:        v.Name,
		SKU:         v.SKU,
		Description: v.Description,
		Price:       v.Price,
		Stock:       v.Stock,
		Category:    v.Category,
		ImageURL:    v.ImageURL,
	}
}

func (h *ProductsHandler) handleList(w http.ResponseWriter, r *http.Request) {
	views, err := h.catalog.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "catalog store unavailable")
		return
	}
	out := make([]productResponse, 0, len(views))
	for _, v := range views {
		out = append(out, toProductResponse(v))
	}
	writeJSON(w, http.StatusOK, out)
}

type createProductRequest struct {
	Name        *string  `json:"name"`
	SKU         *string  `json:"sku"`
	Description string   `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    string   `json:"category"`
	ImageURL    string   `json:"imageUrl"`
}

func (h *ProductsHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req createProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	var missing []string
	if req.Name == nil {
		missing = append(missing, "name")
	}
	if req.SKU == nil {
		missing = append(missing, "sku")
	}
	if req.Price == nil {
		missing = append(missing, "price")
	}
	if req.Stock == nil {
		missing = append(missing, "stock")
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	view, err := h.catalog.Create(r.Context(), appcatalog.CreateInput{
		Name:        *req.Name,
		SKU:         *req.SKU,
		Description: req.Description,
		Price:       *req.Price,
		Stock:       *req.Stock,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toProductResponse(view))
}

func (h *ProductsHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	view, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(view))
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	SKU         *string  `json:"sku"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	// Stock is accepted for wire compatibility but quantity lives in the
	// inventory service; it is not applied here.
	Stock    *int    `json:"stock"`
	Category *string `json:"category"`
	ImageURL *string `json:"imageUrl"`
}

func (h *ProductsHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var req updateProductRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	view, err := h.catalog.Update(r.Context(), r.PathValue("id"), domcatalog.Update{
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toProductResponse(view))
}

func (h *ProductsHandler) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.writeCatalogError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ProductsHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Service: "products"})
}

// handleDepsHealth reports whether the Mongo round-trip succeeds.
func (h *ProductsHandler) handleDepsHealth(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Healthy(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, depsHealthResponse{
			Status: "fail", Backend: "mongodb", Error: err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, depsHealthResponse{Status: "ok", Backend: "mongodb"})
}

func (h *ProductsHandler) writeCatalogError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domcatalog.ErrNotFound):
		writeError(w, http.StatusNotFound, "product not found")
	case errors.Is(err, domcatalog.ErrDuplicateSKU):
		writeError(w, http.StatusConflict, "SKU already exists")
	case errors.Is(err, domcatalog.ErrInvalid):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "catalog store unavailable")
	}
}
