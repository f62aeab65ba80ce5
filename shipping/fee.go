package shipping

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultRate is the shipping charge per unit (or per kilogram).
var DefaultRate = decimal.NewFromInt(10)

const (
	PolicyPerUnit     = "per_unit"
	PolicyPerKilogram = "per_kg"
)

// FeePolicy prices the shippable units of one checkout.
type FeePolicy interface {
	Name() string
	Fee(units []Unit) decimal.Decimal
}

// PerUnit charges Rate for every unit shipped.
type PerUnit struct {
	Rate decimal.Decimal
}

func (p PerUnit) Name() string { return PolicyPerUnit }

func (p PerUnit) Fee(units []Unit) decimal.Decimal {
	return p.Rate.Mul(decimal.NewFromInt(int64(len(units))))
}

// PerKilogram charges Rate for every kilogram of package weight.
type PerKilogram struct {
	Rate decimal.Decimal
}

func (p PerKilogram) Name() string { return PolicyPerKilogram }

func (p PerKilogram) Fee(units []Unit) decimal.Decimal {
	return p.Rate.Mul(TotalWeight(units))
}

// NewFeePolicy resolves a policy by name. An empty name selects per-unit.
func NewFeePolicy(name string, rate decimal.Decimal) (FeePolicy, error) {
	if rate.IsNegative() {
		return nil, fmt.Errorf("shipping rate cannot be negative: %s", rate)
	}
	switch name {
	case "", PolicyPerUnit:
		return PerUnit{Rate: rate}, nil
	case PolicyPerKilogram:
		return PerKilogram{Rate: rate}, nil
	default:
		return nil, fmt.Errorf("unknown shipping policy %q", name)
	}
}
