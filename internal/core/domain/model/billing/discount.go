package billing

import (
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// DiscountType distinguishes how a discount value is interpreted.
type DiscountType int

const (
	// DiscountTypeUnknown represents an invalid or undefined type.
	DiscountTypeUnknown DiscountType = iota

	// DiscountTypePercentage interprets the value as a percentage of the subtotal.
	DiscountTypePercentage

	// DiscountTypeFixed interprets the value as a fixed currency amount.
	DiscountTypeFixed
)

func getDiscountTypeStrings() map[DiscountType]string {
	return map[DiscountType]string{
		DiscountTypeUnknown:    "unknown",
		DiscountTypePercentage: "percentage",
		DiscountTypeFixed:      "fixed",
	}
}

// DiscountTypeFromString parses a discount type from its wire name.
func DiscountTypeFromString(s string) (DiscountType, error) {
	for discountType, str := range getDiscountTypeStrings() {
		if discountType != DiscountTypeUnknown && str == s {
			return discountType, nil
		}
	}
	return DiscountTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"discountType", fmt.Errorf("%q is not a valid discount type", s))
}

// Validate checks the type is a recognized value.
func (t DiscountType) Validate() error {
	if t != DiscountTypePercentage && t != DiscountTypeFixed {
		return errs.NewValueIsInvalidErrorWithCause(
			"discountType", fmt.Errorf("%d is not a valid discount type", t))
	}
	return nil
}

// String returns the wire name of the type.
func (t DiscountType) String() string {
	if str, ok := getDiscountTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// ErrDiscountIsNotConstructed is returned when using a zero-value Discount.
var ErrDiscountIsNotConstructed = errs.NewValueIsRequiredError(
	"discount must be created via NewDiscount constructor")

// Discount reduces a pricing subtotal. Percentage discounts contribute
// subtotal multiplied by value over 100; fixed discounts contribute their
// value directly. Discounts accumulate in list order into a single discount
// amount.
type Discount struct { //nolint:recvcheck //using for validation
	discountType DiscountType
	value        float64
	description  string

	guard guard.ConstructorGuard
}

// NewDiscount creates a validated Discount. Value must be non-negative.
func NewDiscount(discountType DiscountType, value float64, description string) (Discount, error) {
	discount := Discount{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := discount.setType(discountType); err != nil {
		return Discount{}, err
	}
	if err := discount.setValue(value); err != nil {
		return Discount{}, err
	}

	return discount, nil
}

// Validate checks that the discount was created through its constructor.
func (d Discount) Validate() error {
	return d.guard.Validate(ErrDiscountIsNotConstructed)
}

// Type returns how the discount value is interpreted.
func (d Discount) Type() DiscountType {
	return d.discountType
}

// Value returns the percentage or fixed amount, per Type.
func (d Discount) Value() float64 {
	return d.value
}

// Description returns the human-readable reason for the discount.
func (d Discount) Description() string {
	return d.description
}

// AmountOn returns this discount's contribution for the given subtotal.
func (d Discount) AmountOn(subtotal float64) float64 {
	if d.discountType == DiscountTypePercentage {
		return subtotal * d.value / 100
	}
	return d.value
}

func (d *Discount) setType(discountType DiscountType) error {
	if err := discountType.Validate(); err != nil {
		return err
	}
	d.discountType = discountType
	return nil
}

func (d *Discount) setValue(value float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"discountValue", fmt.Errorf("%g is negative", value))
	}
	d.value = value
	return nil
}
