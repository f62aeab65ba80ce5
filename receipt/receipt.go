// Package receipt holds the record a successful checkout hands back.
package receipt

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shop/shipping"
)

const (
	Header    = "** Checkout receipt **"
	Separator = "----------------------"
)

type Line struct {
	Quantity int
	Name     string
	Total    decimal.Decimal
}

// Receipt keeps exact amounts; Format truncates them for display.
type Receipt struct {
	ID           uuid.UUID
	Customer     string
	Lines        []Line
	Subtotal     decimal.Decimal
	Shipping     decimal.Decimal
	Total        decimal.Decimal
	BalanceAfter decimal.Decimal
	Shipment     *shipping.Notice
	IssuedAt     time.Time
}

// Format renders the receipt block. Amounts are truncated toward zero.
func (r *Receipt) Format() string {
	var lines []string
	lines = append(lines, Header)
	for _, l := range r.Lines {
		lines = append(lines, fmt.Sprintf("%dx %s %d", l.Quantity, l.Name, DisplayAmount(l.Total)))
	}
	lines = append(lines, Separator)
	lines = append(lines, fmt.Sprintf("Subtotal %d", DisplayAmount(r.Subtotal)))
	lines = append(lines, fmt.Sprintf("Shipping %d", DisplayAmount(r.Shipping)))
	lines = append(lines, fmt.Sprintf("Amount %d", DisplayAmount(r.Total)))
	return strings.Join(lines, "\n")
}

// DisplayAmount drops the fractional part of an amount.
func DisplayAmount(d decimal.Decimal) int64 {
	return d.IntPart()
}

// FormatError renders a failed operation the way the console reports it.
func FormatError(err error) string {
	return "Error: " + err.Error()
}
