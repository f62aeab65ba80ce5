package shipping

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const NoticeHeader = "** Shipment notice **"

// Notice is the shipment summary emitted after a committed checkout.
type Notice struct {
	Groups        []Group
	TotalWeightKg decimal.Decimal
	Units         int
}

// NewNotice returns nil when nothing needs shipping.
func NewNotice(units []Unit) *Notice {
	if len(units) == 0 {
		return nil
	}
	return &Notice{
		Groups:        Aggregate(units),
		TotalWeightKg: TotalWeight(units),
		Units:         len(units),
	}
}

func (n *Notice) Format() string {
	var lines []string
	lines = append(lines, NoticeHeader)
	for _, g := range n.Groups {
		lines = append(lines, fmt.Sprintf("%dx %s %dg", g.Count, g.Name, g.Grams()))
	}
	lines = append(lines, fmt.Sprintf("Total package weight %skg", n.TotalWeightKg.String()))
	return strings.Join(lines, "\n")
}
