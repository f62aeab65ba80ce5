package checkout

import (
	"github.com/shopspring/decimal"

	"shop/cart"
	"shop/catalog"
	"shop/customer"
	"shop/errs"
	"shop/shipping"
)

// order is a fully priced cart that passed every check.
type order struct {
	lines    []*cart.Line
	units    []shipping.Unit
	subtotal decimal.Decimal
	shipping decimal.Decimal
	total    decimal.Decimal
	notice   *shipping.Notice
}

// price runs the read-only checks in order: empty cart, then per line
// expiry and stock, then the customer's balance against the total.
func (p *Processor) price(c *customer.Customer, crt *cart.Cart) (*order, error) {
	if crt.IsEmpty() {
		return nil, errs.NewEmptyCart()
	}

	o := &order{lines: crt.Lines(), subtotal: decimal.Zero}
	// The same product may sit on several lines; stock is checked
	// against what the cart asks for in total.
	demand := make(map[*catalog.Product]int)
	for _, line := range o.lines {
		product := line.Product
		if product.Expired {
			return nil, errs.NewExpiredProduct(product.Name)
		}
		demand[product] += line.Quantity
		if !product.IsAvailable(demand[product]) {
			return nil, errs.NewOutOfStock(product.Name)
		}

		o.subtotal = o.subtotal.Add(line.Total())
		if product.RequiresShipping {
			for i := 0; i < line.Quantity; i++ {
				o.units = append(o.units, shipping.Unit{Name: product.Name, WeightKg: product.WeightKg})
			}
		}
	}

	o.shipping = p.fees.Fee(o.units)
	o.total = o.subtotal.Add(o.shipping)

	if !c.CanAfford(o.total) {
		return nil, errs.NewInsufficientBalance(c.Balance, o.total)
	}
	o.notice = shipping.NewNotice(o.units)
	return o, nil
}

// commit reduces stock line by line and debits the customer last. Any
// failure puts back the stock already taken, so nothing changes.
func (p *Processor) commit(c *customer.Customer, o *order) error {
	for i, line := range o.lines {
		if err := line.Product.Reduce(line.Quantity); err != nil {
			restock(o.lines[:i])
			return err
		}
	}
	if err := c.Pay(o.total); err != nil {
		restock(o.lines)
		return err
	}
	return nil
}

func restock(lines []*cart.Line) {
	for _, line := range lines {
		_ = line.Product.Restock(line.Quantity)
	}
}
