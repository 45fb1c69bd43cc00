package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validCharge() Charge {
	return Charge{
		UserID:      1,
		Amount:      49.99,
		Currency:    "USD",
		CardNumber:  TestCard,
		ExpiryMonth: 12,
		ExpiryYear:  2030,
		CVV:         "123",
	}
}

func TestValidateAcceptsWellFormedCharge(t *testing.T) {
	assert.NoError(t, validCharge().Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Charge)
	}{
		{"zero amount", func(c *Charge) { c.Amount = 0 }},
		{"negative amount", func(c *Charge) { c.Amount = -1 }},
		{"card too short", func(c *Charge) { c.CardNumber = "411111111111" }},
		{"card too long", func(c *Charge) { c.CardNumber = "41111111111111111111" }},
		{"card with letters", func(c *Charge) { c.CardNumber = "4242abc242424242" }},
		{"month zero", func(c *Charge) { c.ExpiryMonth = 0 }},
		{"month thirteen", func(c *Charge) { c.ExpiryMonth = 13 }},
		{"year in the past", func(c *Charge) { c.ExpiryYear = 2020 }},
		{"cvv too short", func(c *Charge) { c.CVV = "12" }},
		{"cvv too long", func(c *Charge) { c.CVV = "12345" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := validCharge()
			tc.mutate(&c)
			err := c.Validate()
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestDecide(t *testing.T) {
	status, reason := Decide(validCharge())
	assert.Equal(t, StatusApproved, status)
	assert.Equal(t, "Test card approved", reason)

	c := validCharge()
	c.CardNumber = "4111111111111111"
	status, reason = Decide(c)
	assert.Equal(t, StatusDeclined, status)
	assert.Equal(t, "Card declined by static rules", reason)
}
