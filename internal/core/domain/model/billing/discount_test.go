package billing_test

import (
	"testing"

	"shipping/internal/core/domain/model/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiscount_Valid(t *testing.T) {
	discount, err := billing.NewDiscount(billing.DiscountTypePercentage, 10, "loyalty")
	require.NoError(t, err)
	assert.Equal(t, billing.DiscountTypePercentage, discount.Type())
	assert.Equal(t, 10.0, discount.Value())
	assert.Equal(t, "loyalty", discount.Description())
}

func TestNewDiscount_InvalidType(t *testing.T) {
	_, err := billing.NewDiscount(billing.DiscountTypeUnknown, 10, "")
	require.Error(t, err)
}

func TestNewDiscount_NegativeValue(t *testing.T) {
	_, err := billing.NewDiscount(billing.DiscountTypeFixed, -5, "")
	require.Error(t, err)
}

func TestDiscount_AmountOn(t *testing.T) {
	percentage, err := billing.NewDiscount(billing.DiscountTypePercentage, 10, "")
	require.NoError(t, err)
	assert.InDelta(t, 100, percentage.AmountOn(1000), 1e-9)

	fixed, err := billing.NewDiscount(billing.DiscountTypeFixed, 50, "")
	require.NoError(t, err)
	assert.InDelta(t, 50, fixed.AmountOn(1000), 1e-9)
}

func TestDiscountTypeFromString(t *testing.T) {
	discountType, err := billing.DiscountTypeFromString("percentage")
	require.NoError(t, err)
	assert.Equal(t, billing.DiscountTypePercentage, discountType)

	discountType, err = billing.DiscountTypeFromString("fixed")
	require.NoError(t, err)
	assert.Equal(t, billing.DiscountTypeFixed, discountType)

	_, err = billing.DiscountTypeFromString("bogus")
	require.Error(t, err)
}

func TestNewPricing_RejectsNegativeComponents(t *testing.T) {
	_, err := billing.NewPricing(-1, 0, 0, 0, 0, 0, 0, "USD")
	require.Error(t, err)

	_, err = billing.NewPricing(0, 0, 0, -1, 0, 0, 0, "USD")
	require.Error(t, err)

	_, err = billing.NewPricing(0, 0, 0, 0, -1, 0, 0, "USD")
	require.Error(t, err)
}

func TestNewPricing_NegativeTotalAllowed(t *testing.T) {
	// Over-discounting may drive the total below zero; it is surfaced, not clamped.
	pricing, err := billing.NewPricing(100, 0, 0, 100, 200, 0, -100, "USD")
	require.NoError(t, err)
	assert.InDelta(t, -100, pricing.TotalPrice(), 1e-9)
}

func TestPricing_Validate_ZeroValue(t *testing.T) {
	var pricing billing.Pricing
	require.ErrorIs(t, pricing.Validate(), billing.ErrPricingIsNotConstructed)
}
