// Package config loads a shop scenario: the catalog, the customer, what
// goes into the cart and how shipping is charged.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"shop/catalog"
	"shop/customer"
	"shop/shipping"
)

//go:embed default.yaml
var defaultScenario []byte

type Scenario struct {
	Shipping Shipping   `yaml:"shipping"`
	Products []Product  `yaml:"products"`
	Customer Customer   `yaml:"customer"`
	Cart     []CartLine `yaml:"cart"`
}

type Shipping struct {
	Policy string `yaml:"policy"`
	Rate   string `yaml:"rate"`
}

// Amounts are strings so they reach decimal.Decimal without passing
// through float64.
type Product struct {
	Name             string  `yaml:"name"`
	Price            string  `yaml:"price"`
	Quantity         int     `yaml:"quantity"`
	Expired          bool    `yaml:"expired"`
	RequiresShipping bool    `yaml:"requires_shipping"`
	WeightKg         float64 `yaml:"weight_kg"`
}

type Customer struct {
	Name    string `yaml:"name"`
	Balance string `yaml:"balance"`
}

type CartLine struct {
	Product  string `yaml:"product"`
	Quantity int    `yaml:"quantity"`
}

// Default returns the built-in demo scenario.
func Default() (*Scenario, error) {
	return Parse(defaultScenario)
}

// LoadFile loads and parses a YAML scenario from path.
func LoadFile(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses YAML data into a Scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario YAML: %w", err)
	}
	applyDefaults(&s)
	return &s, nil
}

func applyDefaults(s *Scenario) {
	if s.Shipping.Policy == "" {
		s.Shipping.Policy = shipping.PolicyPerUnit
	}
	if s.Shipping.Rate == "" {
		s.Shipping.Rate = shipping.DefaultRate.String()
	}
	if s.Customer.Balance == "" {
		s.Customer.Balance = "0"
	}
}

// FeePolicy builds the configured shipping fee policy.
func (s *Scenario) FeePolicy() (shipping.FeePolicy, error) {
	rate, err := decimal.NewFromString(s.Shipping.Rate)
	if err != nil {
		return nil, fmt.Errorf("invalid shipping rate %q: %w", s.Shipping.Rate, err)
	}
	return shipping.NewFeePolicy(s.Shipping.Policy, rate)
}

// BuildCatalog creates every configured product in file order.
func (s *Scenario) BuildCatalog() (*catalog.Catalog, error) {
	c := catalog.New()
	for _, p := range s.Products {
		price, err := decimal.NewFromString(p.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for product %s: %w", p.Price, p.Name, err)
		}
		var opts []catalog.Option
		if p.Expired {
			opts = append(opts, catalog.Expired())
		}
		if p.RequiresShipping {
			opts = append(opts, catalog.Shippable(p.WeightKg))
		}
		product, err := catalog.NewProduct(p.Name, price, p.Quantity, opts...)
		if err != nil {
			return nil, fmt.Errorf("product %q: %w", p.Name, err)
		}
		if err := c.Add(product); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (s *Scenario) BuildCustomer() (*customer.Customer, error) {
	balance, err := decimal.NewFromString(s.Customer.Balance)
	if err != nil {
		return nil, fmt.Errorf("invalid balance %q: %w", s.Customer.Balance, err)
	}
	return customer.New(s.Customer.Name, balance)
}
