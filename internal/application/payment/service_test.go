package payment

import (
	"context"
	"testing"

	dompayment "github.com/bhavnakumari/ecommerce-microservices/internal/domain/payment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCharge() dompayment.Charge {
	return dompayment.Charge{
		UserID:      1,
		Amount:      49.99,
		Currency:    "USD",
		CardNumber:  dompayment.TestCard,
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
	}
}

func TestChargeApprovesTestCard(t *testing.T) {
	svc := NewService(nil)

	res, err := svc.Charge(context.Background(), testCharge())
	require.NoError(t, err)
	assert.Equal(t, dompayment.StatusApproved, res.Status)
	assert.Equal(t, "Test card approved", res.Reason)
}

func TestChargeDeclinesOtherCards(t *testing.T) {
	svc := NewService(nil)

	c := testCharge()
	c.CardNumber = "4111111111111111"
	res, err := svc.Charge(context.Background(), c)
	require.NoError(t, err, "a decline is an outcome, not an error")
	assert.Equal(t, dompayment.StatusDeclined, res.Status)
}

func TestChargeValidationFailure(t *testing.T) {
	svc := NewService(nil)

	c := testCharge()
	c.Amount = 0
	_, err := svc.Charge(context.Background(), c)
	assert.ErrorIs(t, err, dompayment.ErrInvalid)
}

func TestTransactionIDShape(t *testing.T) {
	svc := NewService(nil)

	res, err := svc.Charge(context.Background(), testCharge())
	require.NoError(t, err)
	assert.Regexp(t, "^pay_[0-9a-f]{12}$", res.TransactionID)

	other, err := svc.Charge(context.Background(), testCharge())
	require.NoError(t, err)
	assert.NotEqual(t, res.TransactionID, other.TransactionID)
}
