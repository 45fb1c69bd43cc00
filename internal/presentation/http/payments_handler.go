package httppresentation

import (
	"errors"
	"net/http"
	"strings"

	apppayment "github.com/bhavnakumari/ecommerce-microservices/internal/application/payment"
	dompayment "github.com/bhavnakumari/ecommerce-microservices/internal/domain/payment"
	"github.com/bhavnakumari/ecommerce-microservices/internal/observability"
)

// PaymentsHandler exposes the static-rule payment authorization endpoint.
type PaymentsHandler struct {
	plumbing
	payments *apppayment.Service
}

func NewPaymentsHandler(payments *apppayment.Service, logger observability.Logger, tel observability.Telemetry) *PaymentsHandler {
	return &PaymentsHandler{
		plumbing: newPlumbing("payments", logger, tel),
		payments: payments,
	}
}

func (h *PaymentsHandler) Router() http.Handler {
	mux := http.NewServeMux()

	h.handle(mux, http.MethodPost, "/api/payments/charge", h.handleCharge)
	h.handle(mux, http.MethodGet, "/health", h.handleHealth)

	return mux
}

type chargeRequest struct {
	UserID      *int     `json:"userId"`
	Amount      *float64 `json:"amount"`
	Currency    string   `json:"currency"`
	CardNumber  *string  `json:"cardNumber"`
	ExpiryMonth *int     `json:"expiryMonth"`
	ExpiryYear  *int     `json:"expiryYear"`
	CVV         *string  `json:"cvv"`
}

type chargeResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transactionId"`
	Reason        string `json:"reason"`
}

func (h *PaymentsHandler) handleCharge(w http.ResponseWriter, r *http.Request) {
	var req chargeRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed request body")
		return
	}

	var missing []string
	if req.UserID == nil {
		missing = append(missing, "userId")
	}
	if req.Amount == nil {
		missing = append(missing, "amount")
	}
	if req.CardNumber == nil {
		missing = append(missing, "cardNumber")
	}
	if req.ExpiryMonth == nil {
		missing = append(missing, "expiryMonth")
	}
	if req.ExpiryYear == nil {
		missing = append(missing, "expiryYear")
	}
	if req.CVV == nil {
		missing = append(missing, "cvv")
	}
	if len(missing) > 0 {
		writeError(w, http.StatusBadRequest, "missing required fields: "+strings.Join(missing, ", "))
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	result, err := h.payments.Charge(r.Context(), dompayment.Charge{
		UserID:      *req.UserID,
		Amount:      *req.Amount,
		Currency:    currency,
		CardNumber:  *req.CardNumber,
		ExpiryMonth: *req.ExpiryMonth,
		ExpiryYear:  *req.ExpiryYear,
		CVV:         *req.CVV,
	})
	if err != nil {
		if errors.Is(err, dompayment.ErrInvalid) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, "payment processing failed")
		return
	}

	writeJSON(w, http.StatusOK, chargeResponse{
		Status:        string(result.Status),
		TransactionID: result.TransactionID,
		Reason:        result.Reason,
	})
}

func (h *PaymentsHandler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Service: "payments"})
}
