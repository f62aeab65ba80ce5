// Package errs defines the validation failures shared by the cart and
// checkout domains.
package errs

import (
	"errors"
	"fmt"
)

type StatusCode int

const (
	StatusInvalidArgument StatusCode = iota
	StatusFailedPrecondition
)

func (s StatusCode) String() string {
	switch s {
	case StatusInvalidArgument:
		return "INVALID_ARGUMENT"
	case StatusFailedPrecondition:
		return "FAILED_PRECONDITION"
	default:
		return "UNKNOWN"
	}
}

// Reason identifies which business rule rejected a command.
type Reason int

const (
	ReasonUnknown Reason = iota
	ReasonInvalidQuantity
	ReasonInsufficientStock
	ReasonExpiredProduct
	ReasonOutOfStock
	ReasonEmptyCart
	ReasonInsufficientBalance
)

func (r Reason) String() string {
	switch r {
	case ReasonInvalidQuantity:
		return "InvalidQuantity"
	case ReasonInsufficientStock:
		return "InsufficientStock"
	case ReasonExpiredProduct:
		return "ExpiredProduct"
	case ReasonOutOfStock:
		return "OutOfStock"
	case ReasonEmptyCart:
		return "EmptyCart"
	case ReasonInsufficientBalance:
		return "InsufficientBalance"
	default:
		return "Unknown"
	}
}

// Error message constants for the cart and checkout domains.
const (
	ErrMsgQuantityPositive    = "Quantity must be positive"
	ErrMsgInsufficientStock   = "Quantity exceeds available stock"
	ErrMsgProductExpired      = "Product %s is expired"
	ErrMsgProductOutOfStock   = "Product %s is out of stock"
	ErrMsgCartEmpty           = "Cart is empty"
	ErrMsgInsufficientBalance = "Insufficient balance"
)

type CommandError struct {
	Code    StatusCode
	Reason  Reason
	Product string
	Message string
}

func (e *CommandError) Error() string {
	return e.Message
}

// Is matches on Reason so callers can compare against the sentinels below.
func (e *CommandError) Is(target error) bool {
	t, ok := target.(*CommandError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

var (
	ErrInvalidQuantity     = &CommandError{Code: StatusInvalidArgument, Reason: ReasonInvalidQuantity, Message: ErrMsgQuantityPositive}
	ErrInsufficientStock   = &CommandError{Code: StatusFailedPrecondition, Reason: ReasonInsufficientStock, Message: ErrMsgInsufficientStock}
	ErrExpiredProduct      = &CommandError{Code: StatusFailedPrecondition, Reason: ReasonExpiredProduct, Message: "Product is expired"}
	ErrOutOfStock          = &CommandError{Code: StatusFailedPrecondition, Reason: ReasonOutOfStock, Message: "Product is out of stock"}
	ErrEmptyCart           = &CommandError{Code: StatusFailedPrecondition, Reason: ReasonEmptyCart, Message: ErrMsgCartEmpty}
	ErrInsufficientBalance = &CommandError{Code: StatusFailedPrecondition, Reason: ReasonInsufficientBalance, Message: ErrMsgInsufficientBalance}
)

func NewInvalidArgument(message string) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: message}
}

func NewInvalidArgumentf(format string, args ...interface{}) *CommandError {
	return &CommandError{Code: StatusInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

func NewInvalidQuantity(quantity int) *CommandError {
	return &CommandError{
		Code:    StatusInvalidArgument,
		Reason:  ReasonInvalidQuantity,
		Message: fmt.Sprintf("%s: got %d", ErrMsgQuantityPositive, quantity),
	}
}

func NewInsufficientStock(product string, available, requested int) *CommandError {
	return &CommandError{
		Code:    StatusFailedPrecondition,
		Reason:  ReasonInsufficientStock,
		Product: product,
		Message: fmt.Sprintf("%s: %s available %d, requested %d", ErrMsgInsufficientStock, product, available, requested),
	}
}

func NewExpiredProduct(product string) *CommandError {
	return &CommandError{
		Code:    StatusFailedPrecondition,
		Reason:  ReasonExpiredProduct,
		Product: product,
		Message: fmt.Sprintf(ErrMsgProductExpired, product),
	}
}

func NewOutOfStock(product string) *CommandError {
	return &CommandError{
		Code:    StatusFailedPrecondition,
		Reason:  ReasonOutOfStock,
		Product: product,
		Message: fmt.Sprintf(ErrMsgProductOutOfStock, product),
	}
}

func NewEmptyCart() *CommandError {
	return &CommandError{Code: StatusFailedPrecondition, Reason: ReasonEmptyCart, Message: ErrMsgCartEmpty}
}

func NewInsufficientBalance(balance, total fmt.Stringer) *CommandError {
	return &CommandError{
		Code:    StatusFailedPrecondition,
		Reason:  ReasonInsufficientBalance,
		Message: fmt.Sprintf("%s: have %s, need %s", ErrMsgInsufficientBalance, balance, total),
	}
}

// ReasonOf returns the rejection reason carried by err, or ReasonUnknown.
func ReasonOf(err error) Reason {
	var cmdErr *CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Reason
	}
	return ReasonUnknown
}
