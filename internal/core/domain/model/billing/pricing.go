package billing

import (
	"errors"
	"fmt"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrPricingIsNotConstructed is returned when using a zero-value Pricing.
var ErrPricingIsNotConstructed = errs.NewValueIsRequiredError(
	"pricing must be created via NewPricing constructor")

// Pricing is the computed charge breakdown of a quote or shipment.
//
// Invariants: baseCharge, distanceCharge, specialCharges, subtotal,
// discountAmount, and taxAmount are never negative. totalPrice equals
// subtotal minus discountAmount plus taxAmount and MAY be negative when
// discounts exceed the subtotal; that is surfaced, not clamped.
type Pricing struct { //nolint:recvcheck //using for validation
	baseCharge     float64
	distanceCharge float64
	specialCharges float64
	subtotal       float64
	discountAmount float64
	taxAmount      float64
	totalPrice     float64
	currency       string

	guard guard.ConstructorGuard
}

// NewPricing creates a validated Pricing breakdown.
// An empty currency defaults to USD.
func NewPricing(
	baseCharge, distanceCharge, specialCharges float64,
	subtotal, discountAmount, taxAmount, totalPrice float64,
	currency string,
) (Pricing, error) {
	pricing := Pricing{
		totalPrice: totalPrice,
		guard:      guard.NewConstructorGuard(),
	}

	if currency == "" {
		currency = "USD"
	}
	pricing.currency = currency

	if err := errors.Join(
		pricing.setNonNegative("baseCharge", baseCharge, &pricing.baseCharge),
		pricing.setNonNegative("distanceCharge", distanceCharge, &pricing.distanceCharge),
		pricing.setNonNegative("specialCharges", specialCharges, &pricing.specialCharges),
		pricing.setNonNegative("subtotal", subtotal, &pricing.subtotal),
		pricing.setNonNegative("discountAmount", discountAmount, &pricing.discountAmount),
		pricing.setNonNegative("taxAmount", taxAmount, &pricing.taxAmount),
	); err != nil {
		return Pricing{}, err
	}

	return pricing, nil
}

// Validate checks that the breakdown was created through its constructor.
func (p Pricing) Validate() error {
	return p.guard.Validate(ErrPricingIsNotConstructed)
}

// BaseCharge returns the weight-or-volume charge, whichever was higher.
func (p Pricing) BaseCharge() float64 {
	return p.baseCharge
}

// DistanceCharge returns the per-kilometer route charge.
func (p Pricing) DistanceCharge() float64 {
	return p.distanceCharge
}

// SpecialCharges returns the sum of per-item handling surcharges.
func (p Pricing) SpecialCharges() float64 {
	return p.specialCharges
}

// Subtotal returns base plus distance plus special charges.
func (p Pricing) Subtotal() float64 {
	return p.subtotal
}

// DiscountAmount returns the accumulated discount total.
func (p Pricing) DiscountAmount() float64 {
	return p.discountAmount
}

// TaxAmount returns the tax on the discounted subtotal.
func (p Pricing) TaxAmount() float64 {
	return p.taxAmount
}

// TotalPrice returns subtotal - discountAmount + taxAmount.
func (p Pricing) TotalPrice() float64 {
	return p.totalPrice
}

// Currency returns the currency code of all amounts.
func (p Pricing) Currency() string {
	return p.currency
}

func (p *Pricing) setNonNegative(name string, value float64, target *float64) error {
	if value < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%g is negative", value))
	}
	*target = value
	return nil
}
