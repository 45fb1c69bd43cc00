package payment

import (
	"errors"
	"fmt"
	"strings"
)

// TestCard is the single card number the static rule set approves.
const TestCard = "4242424242424242"

const minExpiryYear = 2024

type Status string

const (
	StatusApproved Status = "APPROVED"
	StatusDeclined Status = "DECLINED"
)

// ErrInvalid is the root of all charge validation failures.
var ErrInvalid = errors.New("payment: invalid charge")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Charge is a payment authorization request.
type Charge struct {
	UserID      int
	Amount      float64
	Currency    string
	CardNumber  string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string
}

func (c Charge) Validate() error {
	if c.Amount <= 0 {
		return invalidf("amount must be greater than zero")
	}
	card := strings.TrimSpace(c.CardNumber)
	if n := len(card); n < 13 || n > 19 {
		return invalidf("cardNumber must be 13 to 19 digits")
	}
	for _, r := range card {
		if r < '0' || r > '9' {
			return invalidf("cardNumber must contain only digits")
		}
	}
	if c.ExpiryMonth < 1 || c.ExpiryMonth > 12 {
		return invalidf("expiryMonth must be between 1 and 12")
	}
	if c.ExpiryYear < minExpiryYear {
		return invalidf("expiryYear must be %d or later", minExpiryYear)
	}
	cvv := strings.TrimSpace(c.CVV)
	if n := len(cvv); n < 3 || n > 4 {
		return invalidf("cvv must be 3 or 4 digits")
	}
	return nil
}

// Decide applies the static rule set: the test card approves, everything else
// declines. Declines are ordinary outcomes, not errors.
func Decide(c Charge) (Status, string) {
	if strings.TrimSpace(c.CardNumber) == TestCard {
		return StatusApproved, "Test card approved"
	}
	return StatusDeclined, "Card declined by static rules"
}
