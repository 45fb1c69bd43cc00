package payment

import (
	"context"
	"encoding/hex"

	dompayment "github.com/bhavnakumari/ecommerce-microservices/internal/domain/payment"
	"github.com/bhavnakumari/ecommerce-microservices/internal/observability"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
)

// Result is the outcome of a charge attempt. Declines carry a reason and a
// transaction id just like approvals.
type Result struct {
	Status        dompayment.Status
	TransactionID string
	Reason        string
}

// Service authorizes charges with the static rule set. It holds no state.
type Service struct {
	tel observability.Telemetry
	log observability.Logger
}

func NewService(tel observability.Telemetry) *Service {
	if tel == nil {
		tel = observability.Nop()
	}
	return &Service{
		tel: tel,
		log: tel.Logger().With(observability.F("component", "payment_service")),
	}
}

// Charge validates the request and applies the static card rules.
func (s *Service) Charge(ctx context.Context, c dompayment.Charge) (Result, error) {
	ctx, span := s.tel.Tracer().Start(ctx, "payment.Charge",
		attribute.Float64("payment.amount", c.Amount),
		attribute.String("payment.currency", c.Currency))
	defer span.End()

	if err := c.Validate(); err != nil {
		return Result{}, err
	}

	status, reason := dompayment.Decide(c)
	txn := newTransactionID()

	s.tel.Counter(observability.MPaymentDecisions).Add(1,
		observability.L("status", string(status)))
	observability.Log(ctx, s.log).Info("payment_decision",
		observability.F("transaction_id", txn),
		observability.F("status", string(status)),
	)

	return Result{Status: status, TransactionID: txn, Reason: reason}, nil
}

// newTransactionID yields ids shaped like pay_3f9c2a1b4d6e.
func newTransactionID() string {
	id := uuid.New()
	return "pay_" + hex.EncodeToString(id[:])[:12]
}
