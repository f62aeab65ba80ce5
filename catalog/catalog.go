package catalog

import "shop/errs"

// Catalog keeps products in registration order and indexes them by name.
type Catalog struct {
	products []*Product
	byName   map[string]*Product
}

func New() *Catalog {
	return &Catalog{byName: make(map[string]*Product)}
}

func (c *Catalog) Add(p *Product) error {
	if _, exists := c.byName[p.Name]; exists {
		return errs.NewInvalidArgumentf(ErrMsgDuplicateProduct, p.Name)
	}
	c.products = append(c.products, p)
	c.byName[p.Name] = p
	return nil
}

func (c *Catalog) Get(name string) (*Product, error) {
	p, ok := c.byName[name]
	if !ok {
		return nil, errs.NewInvalidArgumentf(ErrMsgProductNotFound, name)
	}
	return p, nil
}

// Products returns the products in the order they were added.
func (c *Catalog) Products() []*Product {
	out := make([]*Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}
