// Package catalog holds the products a shop can sell and their stock on hand.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"shop/errs"
)

// Error message constants for the catalog domain.
const (
	ErrMsgNameRequired     = "Product name is required"
	ErrMsgPriceNegative    = "Price cannot be negative"
	ErrMsgQuantityNegative = "Quantity cannot be negative"
	ErrMsgWeightNegative   = "Weight cannot be negative"
	ErrMsgDuplicateProduct = "Product %s already exists"
	ErrMsgProductNotFound  = "Product %s not found"
)

// Product is a catalog entry. Expiry and shipping are plain flags: a
// product that needs shipping carries its weight, one that doesn't
// leaves WeightKg at zero.
type Product struct {
	Name             string
	UnitPrice        decimal.Decimal
	QuantityOnHand   int
	Expired          bool
	RequiresShipping bool
	WeightKg         float64
}

// Option adjusts a product at construction time.
type Option func(*Product)

// Expired marks the product as past its expiry date.
func Expired() Option {
	return func(p *Product) { p.Expired = true }
}

// Shippable marks the product as requiring shipping at the given unit weight.
func Shippable(weightKg float64) Option {
	return func(p *Product) {
		p.RequiresShipping = true
		p.WeightKg = weightKg
	}
}

// NewProduct validates and builds a product.
func NewProduct(name string, unitPrice decimal.Decimal, quantity int, opts ...Option) (*Product, error) {
	p := &Product{
		Name:           strings.TrimSpace(name),
		UnitPrice:      unitPrice,
		QuantityOnHand: quantity,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.Name == "" {
		return nil, errs.NewInvalidArgument(ErrMsgNameRequired)
	}
	if p.UnitPrice.IsNegative() {
		return nil, errs.NewInvalidArgument(ErrMsgPriceNegative)
	}
	if p.QuantityOnHand < 0 {
		return nil, errs.NewInvalidArgument(ErrMsgQuantityNegative)
	}
	if p.WeightKg < 0 {
		return nil, errs.NewInvalidArgument(ErrMsgWeightNegative)
	}
	return p, nil
}

func (p *Product) IsAvailable(quantity int) bool {
	return quantity <= p.QuantityOnHand
}

// Reduce takes quantity units out of stock. Only a committed checkout
// calls it, after the availability check has passed.
func (p *Product) Reduce(quantity int) error {
	if quantity <= 0 {
		return errs.NewInvalidQuantity(quantity)
	}
	if !p.IsAvailable(quantity) {
		return errs.NewOutOfStock(p.Name)
	}
	p.QuantityOnHand -= quantity
	return nil
}

// Restock puts quantity units back, undoing a Reduce.
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewInvalidQuantity(quantity)
	}
	p.QuantityOnHand += quantity
	return nil
}
