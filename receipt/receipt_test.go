package receipt

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	r := &Receipt{
		Customer: "Malak",
		Lines: []Line{
			{Quantity: 2, Name: "Cheese", Total: decimal.NewFromInt(200)},
			{Quantity: 1, Name: "Biscuits", Total: decimal.NewFromInt(150)},
		},
		Subtotal: decimal.NewFromInt(350),
		Shipping: decimal.NewFromInt(30),
		Total:    decimal.NewFromInt(380),
	}

	want := "** Checkout receipt **\n" +
		"2x Cheese 200\n" +
		"1x Biscuits 150\n" +
		"----------------------\n" +
		"Subtotal 350\n" +
		"Shipping 30\n" +
		"Amount 380"
	assert.Equal(t, want, r.Format())
}

func TestFormat_TruncatesAmounts(t *testing.T) {
	r := &Receipt{
		Lines:    []Line{{Quantity: 3, Name: "Gum", Total: decimal.RequireFromString("4.99")}},
		Subtotal: decimal.RequireFromString("4.99"),
		Shipping: decimal.RequireFromString("10.5"),
		Total:    decimal.RequireFromString("15.49"),
	}

	assert.Contains(t, r.Format(), "3x Gum 4\n")
	assert.Contains(t, r.Format(), "Shipping 10\n")
	assert.Contains(t, r.Format(), "Amount 15")
}

func TestDisplayAmount(t *testing.T) {
	assert.Equal(t, int64(0), DisplayAmount(decimal.RequireFromString("0.99")))
	assert.Equal(t, int64(-1), DisplayAmount(decimal.RequireFromString("-1.5")))
	assert.Equal(t, int64(380), DisplayAmount(decimal.NewFromInt(380)))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "Error: Cart is empty", FormatError(errors.New("Cart is empty")))
}
