// Package shipping groups shippable units into a package and prices shipping.
package shipping

import (
	"github.com/shopspring/decimal"
)

var gramsPerKilogram = decimal.NewFromInt(1000)

// Unit is one physical unit of a product that has to be shipped.
type Unit struct {
	Name     string
	WeightKg float64
}

// Group is every unit of one product in a package.
type Group struct {
	Name         string
	UnitWeightKg float64
	Count        int
}

func (g Group) Weight() decimal.Decimal {
	return weight(g.UnitWeightKg).Mul(decimal.NewFromInt(int64(g.Count)))
}

// Grams is the group weight in grams, truncated toward zero.
func (g Group) Grams() int64 {
	return g.Weight().Mul(gramsPerKilogram).IntPart()
}

// Aggregate groups units by product name. Groups come out in the order
// their name was first seen; the unit weight is the first occurrence's.
func Aggregate(units []Unit) []Group {
	var groups []Group
	index := make(map[string]int)
	for _, u := range units {
		if i, ok := index[u.Name]; ok {
			groups[i].Count++
			continue
		}
		index[u.Name] = len(groups)
		groups = append(groups, Group{Name: u.Name, UnitWeightKg: u.WeightKg, Count: 1})
	}
	return groups
}

// TotalWeight sums unit weights in kilograms.
func TotalWeight(units []Unit) decimal.Decimal {
	total := decimal.Zero
	for _, u := range units {
		total = total.Add(weight(u.WeightKg))
	}
	return total
}

// weight converts through the shortest decimal representation so 0.2
// stays 0.2 instead of its binary approximation.
func weight(kg float64) decimal.Decimal {
	return decimal.NewFromFloat(kg)
}
