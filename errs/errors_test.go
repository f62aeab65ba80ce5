package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestStatusCode_String(t *testing.T) {
	assert.Equal(t, "INVALID_ARGUMENT", StatusInvalidArgument.String())
	assert.Equal(t, "FAILED_PRECONDITION", StatusFailedPrecondition.String())
	assert.Equal(t, "UNKNOWN", StatusCode(99).String())
}

func TestReason_StringsAreDistinct(t *testing.T) {
	reasons := []Reason{
		ReasonInvalidQuantity, ReasonInsufficientStock, ReasonExpiredProduct,
		ReasonOutOfStock, ReasonEmptyCart, ReasonInsufficientBalance,
	}
	seen := make(map[string]bool)
	for _, r := range reasons {
		name := r.String()
		assert.NotEqual(t, "Unknown", name)
		assert.False(t, seen[name], "duplicate reason name %s", name)
		seen[name] = true
	}
}

func TestCommandError_IsMatchesReason(t *testing.T) {
	err := NewExpiredProduct("Cheese")

	assert.True(t, errors.Is(err, ErrExpiredProduct))
	assert.False(t, errors.Is(err, ErrOutOfStock))
	assert.Equal(t, "Product Cheese is expired", err.Error())
	assert.Equal(t, "Cheese", err.Product)
}

func TestCommandError_IsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("checkout: %w", NewOutOfStock("Biscuits"))

	assert.True(t, errors.Is(wrapped, ErrOutOfStock))
	assert.Equal(t, ReasonOutOfStock, ReasonOf(wrapped))
}

func TestReasonOf_ForeignError(t *testing.T) {
	assert.Equal(t, ReasonUnknown, ReasonOf(errors.New("boom")))
	assert.Equal(t, ReasonUnknown, ReasonOf(nil))
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *CommandError
		code   StatusCode
		reason Reason
	}{
		{"invalid quantity", NewInvalidQuantity(0), StatusInvalidArgument, ReasonInvalidQuantity},
		{"insufficient stock", NewInsufficientStock("Cheese", 1, 5), StatusFailedPrecondition, ReasonInsufficientStock},
		{"empty cart", NewEmptyCart(), StatusFailedPrecondition, ReasonEmptyCart},
		{"insufficient balance", NewInsufficientBalance(decimal.NewFromInt(5), decimal.NewFromInt(10)), StatusFailedPrecondition, ReasonInsufficientBalance},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.reason, tt.err.Reason)
		})
	}
}

func TestNewInsufficientBalance_Message(t *testing.T) {
	err := NewInsufficientBalance(decimal.NewFromInt(100), decimal.NewFromInt(380))
	assert.Equal(t, "Insufficient balance: have 100, need 380", err.Error())
}
