package httppresentation

import (
	"encoding/json"
	"net/http"
	"regexp"
	"testing"

	apppayment "github.com/bhavnakumari/ecommerce-microservices/internal/application/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPaymentsRouter() http.Handler {
	return NewPaymentsHandler(apppayment.NewService(nil), nil, nil).Router()
}

func TestChargeTestCardApproved(t *testing.T) {
	router := newPaymentsRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/payments/charge",
		`{"userId":1,"amount":49.99,"cardNumber":"4242424242424242","expiryMonth":12,"expiryYear":2030,"cvv":"123"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got chargeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "APPROVED", got.Status)
	assert.Equal(t, "Test card approved", got.Reason)
	assert.Regexp(t, regexp.MustCompile(`^pay_[0-9a-f]{12}$`), got.TransactionID)
}

func TestChargeOtherCardDeclined(t *testing.T) {
	router := newPaymentsRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/payments/charge",
		`{"userId":1,"amount":10,"cardNumber":"4000111122223333","expiryMonth":1,"expiryYear":2031,"cvv":"9999"}`)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var got chargeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	assert.Equal(t, "DECLINED", got.Status)
	assert.Equal(t, "Card declined by static rules", got.Reason)
	assert.NotEmpty(t, got.TransactionID)
}

func TestChargeMissingFields(t *testing.T) {
	router := newPaymentsRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/payments/charge", `{"userId":1}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "missing required fields")
	assert.Contains(t, rr.Body.String(), "cardNumber")
	assert.Contains(t, rr.Body.String(), "cvv")
}

func TestChargeValidation(t *testing.T) {
	router := newPaymentsRouter()

	cases := []struct {
		name string
		body string
	}{
		{"zero amount", `{"userId":1,"amount":0,"cardNumber":"4242424242424242","expiryMonth":12,"expiryYear":2030,"cvv":"123"}`},
		{"short card", `{"userId":1,"amount":5,"cardNumber":"4242","expiryMonth":12,"expiryYear":2030,"cvv":"123"}`},
		{"non digit card", `{"userId":1,"amount":5,"cardNumber":"4242-4242-4242-4242","expiryMonth":12,"expiryYear":2030,"cvv":"123"}`},
		{"bad month", `{"userId":1,"amount":5,"cardNumber":"4242424242424242","expiryMonth":13,"expiryYear":2030,"cvv":"123"}`},
		{"stale year", `{"userId":1,"amount":5,"cardNumber":"4242424242424242","expiryMonth":12,"expiryYear":2020,"cvv":"123"}`},
		{"bad cvv", `{"userId":1,"amount":5,"cardNumber":"4242424242424242","expiryMonth":12,"expiryYear":2030,"cvv":"12"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rr := doJSON(t, router, http.MethodPost, "/api/payments/charge", tc.body)
			assert.Equal(t, http.StatusBadRequest, rr.Code, rr.Body.String())
		})
	}
}

func TestChargeMalformedBody(t *testing.T) {
	router := newPaymentsRouter()

	rr := doJSON(t, router, http.MethodPost, "/api/payments/charge", `{"amount":"ten"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "malformed request body")

	// userId is numeric on the wire; a string does not decode.
	rr = doJSON(t, router, http.MethodPost, "/api/payments/charge",
		`{"userId":"u1","amount":5,"cardNumber":"4242424242424242","expiryMonth":12,"expiryYear":2030,"cvv":"123"}`)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "malformed request body")
}

func TestPaymentsHealth(t *testing.T) {
	router := newPaymentsRouter()

	rr := doJSON(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"ok","service":"payments"}`, rr.Body.String())
}
