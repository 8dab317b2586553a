package invoice

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Generation errors. All of them are terminal for the call: no partial
// document is ever returned.
var (
	// ErrInvalidAdjustment marks a negative percentage, rejected before
	// any computation.
	ErrInvalidAdjustment = errors.New("invoice: invalid adjustment percentage")

	// ErrLayoutOverflow marks a content area too small for even one item
	// row below the header and summary block.
	ErrLayoutOverflow = errors.New("invoice: page layout overflow")

	// ErrPaymentSlip wraps a failure of the payment-slip renderer.
	ErrPaymentSlip = errors.New("invoice: payment slip rendering failed")

	// ErrMissingField marks an absent creditor/debtor identity field,
	// rejected at entry validation.
	ErrMissingField = errors.New("invoice: missing required field")
)

func invalidAdjustment(name string, pct decimal.Decimal) error {
	return fmt.Errorf("%w: %s %s%%", ErrInvalidAdjustment, name, pct.String())
}

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}
