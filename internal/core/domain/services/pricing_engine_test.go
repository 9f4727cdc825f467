package services_test

import (
	"testing"

	"shipping/internal/core/domain/model/billing"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func priceItem(t *testing.T, quantity int, weightKg, sideCm float64, flags cargo.Flags) cargo.Item {
	t.Helper()
	value, err := cargo.NewMoney(100, "USD")
	require.NoError(t, err)
	item, err := cargo.NewItem(
		cargo.CategoryMachinery,
		quantity,
		cargo.Dimensions{Length: sideCm, Width: sideCm, Height: sideCm, Unit: cargo.DimensionUnitCentimeters},
		cargo.Weight{Value: weightKg, Unit: cargo.WeightUnitKilograms},
		value,
		flags,
	)
	require.NoError(t, err)
	return item
}

func percentDiscount(t *testing.T, value float64) billing.Discount {
	t.Helper()
	discount, err := billing.NewDiscount(billing.DiscountTypePercentage, value, "seasonal")
	require.NoError(t, err)
	return discount
}

func fixedDiscount(t *testing.T, value float64) billing.Discount {
	t.Helper()
	discount, err := billing.NewDiscount(billing.DiscountTypeFixed, value, "loyalty")
	require.NoError(t, err)
	return discount
}

func TestPricingEngine_BaseCharge_HigherOfWeightOrVolume(t *testing.T) {
	engine := services.NewPricingEngine()

	// 10 kg air at 8/kg beats 0.008 m3 at 150/m3.
	heavy := []cargo.Item{priceItem(t, 1, 10, 20, cargo.Flags{})}
	pricing, err := engine.Calculate(kernel.ServiceTypeAir, nil, nil, heavy, nil)
	require.NoError(t, err)
	assert.InDelta(t, 80, pricing.BaseCharge(), 1e-9)

	// 1 m3 air at 150/m3 beats 2 kg at 8/kg.
	bulky := []cargo.Item{priceItem(t, 1, 2, 100, cargo.Flags{})}
	pricing, err = engine.Calculate(kernel.ServiceTypeAir, nil, nil, bulky, nil)
	require.NoError(t, err)
	assert.InDelta(t, 150, pricing.BaseCharge(), 1e-9)
}

func TestPricingEngine_DiscountsAndTax(t *testing.T) {
	engine := services.NewPricingEngine()

	// 250 kg land at 4/kg gives a subtotal of exactly 1000 with no
	// coordinates and no surcharges.
	items := []cargo.Item{priceItem(t, 1, 250, 10, cargo.Flags{})}
	discounts := []billing.Discount{percentDiscount(t, 10), fixedDiscount(t, 50)}

	pricing, err := engine.Calculate(kernel.ServiceTypeLand, nil, nil, items, discounts)
	require.NoError(t, err)

	assert.InDelta(t, 1000, pricing.Subtotal(), 1e-9)
	assert.InDelta(t, 150, pricing.DiscountAmount(), 1e-9)
	assert.InDelta(t, 144.5, pricing.TaxAmount(), 1e-9)
	assert.InDelta(t, 994.5, pricing.TotalPrice(), 1e-9)
	assert.Equal(t, "USD", pricing.Currency())
}

func TestPricingEngine_PercentageDiscountUsesUndiscountedSubtotal(t *testing.T) {
	engine := services.NewPricingEngine()

	items := []cargo.Item{priceItem(t, 1, 250, 10, cargo.Flags{})}
	discounts := []billing.Discount{fixedDiscount(t, 500), percentDiscount(t, 10)}

	pricing, err := engine.Calculate(kernel.ServiceTypeLand, nil, nil, items, discounts)
	require.NoError(t, err)

	// 10% of 1000, not of the 500 remaining after the fixed discount.
	assert.InDelta(t, 600, pricing.DiscountAmount(), 1e-9)
}

func TestPricingEngine_SpecialChargesOncePerItem(t *testing.T) {
	engine := services.NewPricingEngine()

	items := []cargo.Item{
		priceItem(t, 3, 1, 10, cargo.Flags{Fragile: true, Hazardous: true, TemperatureControlled: true}),
		priceItem(t, 1, 1, 10, cargo.Flags{Fragile: true}),
	}

	pricing, err := engine.Calculate(kernel.ServiceTypeSea, nil, nil, items, nil)
	require.NoError(t, err)

	// Quantity 3 does not triple the first item's surcharges.
	assert.InDelta(t, 400, pricing.SpecialCharges(), 1e-9)
}

func TestPricingEngine_DistanceCharge(t *testing.T) {
	engine := services.NewPricingEngine()

	origin, err := kernel.NewGeoPoint(0, 0)
	require.NoError(t, err)
	destination, err := kernel.NewGeoPoint(0, 1)
	require.NoError(t, err)

	items := []cargo.Item{priceItem(t, 1, 1, 10, cargo.Flags{})}
	pricing, err := engine.Calculate(kernel.ServiceTypeSea, &origin, &destination, items, nil)
	require.NoError(t, err)

	// One degree along the equator is about 111.19 km.
	assert.InDelta(t, 55.6, pricing.DistanceCharge(), 0.05)
}

func TestPricingEngine_MissingCoordinatesZeroDistance(t *testing.T) {
	engine := services.NewPricingEngine()

	origin, err := kernel.NewGeoPoint(10, 10)
	require.NoError(t, err)

	items := []cargo.Item{priceItem(t, 1, 1, 10, cargo.Flags{})}
	pricing, err := engine.Calculate(kernel.ServiceTypeSea, &origin, nil, items, nil)
	require.NoError(t, err)

	assert.Zero(t, pricing.DistanceCharge())
}

func TestPricingEngine_TaxFlooredWhenOverDiscounted(t *testing.T) {
	engine := services.NewPricingEngine()

	items := []cargo.Item{priceItem(t, 1, 250, 10, cargo.Flags{})}
	discounts := []billing.Discount{fixedDiscount(t, 2000)}

	pricing, err := engine.Calculate(kernel.ServiceTypeLand, nil, nil, items, discounts)
	require.NoError(t, err)

	assert.Zero(t, pricing.TaxAmount())
	assert.InDelta(t, -1000, pricing.TotalPrice(), 1e-9)
}

func TestPricingEngine_InvalidServiceType(t *testing.T) {
	engine := services.NewPricingEngine()

	_, err := engine.Calculate(kernel.ServiceTypeUnknown, nil, nil, nil, nil)
	require.Error(t, err)
}
