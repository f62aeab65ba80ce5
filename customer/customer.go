// Package customer models the paying customer and their balance.
package customer

import (
	"strings"

	"github.com/shopspring/decimal"

	"shop/errs"
)

const (
	ErrMsgNameRequired    = "Customer name is required"
	ErrMsgBalanceNegative = "Balance cannot be negative"
	ErrMsgAmountNegative  = "Amount cannot be negative"
)

type Customer struct {
	Name    string
	Balance decimal.Decimal
}

func New(name string, balance decimal.Decimal) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errs.NewInvalidArgument(ErrMsgNameRequired)
	}
	if balance.IsNegative() {
		return nil, errs.NewInvalidArgument(ErrMsgBalanceNegative)
	}
	return &Customer{Name: name, Balance: balance}, nil
}

func (c *Customer) CanAfford(amount decimal.Decimal) bool {
	return c.Balance.GreaterThanOrEqual(amount)
}

// Pay debits amount from the balance. The balance never goes negative:
// an unaffordable amount is rejected and the balance is left as is.
func (c *Customer) Pay(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return errs.NewInvalidArgument(ErrMsgAmountNegative)
	}
	if !c.CanAfford(amount) {
		return errs.NewInsufficientBalance(c.Balance, amount)
	}
	c.Balance = c.Balance.Sub(amount)
	return nil
}
