// Package cart collects the products a customer intends to buy.
package cart

import (
	"github.com/shopspring/decimal"

	"shop/catalog"
	"shop/errs"
)

// Line is one entry in a cart. It references the catalog product without
// owning it.
type Line struct {
	Product  *catalog.Product
	Quantity int
}

func (l *Line) Total() decimal.Decimal {
	return l.Product.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart keeps lines in insertion order; receipts list them the same way.
type Cart struct {
	lines []*Line
}

func New() *Cart {
	return &Cart{}
}

// Add checks the requested quantity against stock on hand and appends a
// line. Stock is not reserved here; checkout re-checks and decrements it.
func (c *Cart) Add(product *catalog.Product, quantity int) error {
	if quantity <= 0 {
		return errs.NewInvalidQuantity(quantity)
	}
	if !product.IsAvailable(quantity) {
		return errs.NewInsufficientStock(product.Name, product.QuantityOnHand, quantity)
	}

	c.lines = append(c.lines, &Line{Product: product, Quantity: quantity})
	return nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Len() int {
	return len(c.lines)
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []*Line {
	out := make([]*Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Subtotal sums the line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, line := range c.lines {
		subtotal = subtotal.Add(line.Total())
	}
	return subtotal
}
