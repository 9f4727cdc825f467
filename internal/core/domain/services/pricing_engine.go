package services

import (
	"math"

	"shipping/internal/core/domain/model/billing"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
)

// Pricing constants shared by all service types.
const (
	// DistanceRatePerKm is charged per kilometer of great-circle distance
	// between origin and destination.
	DistanceRatePerKm = 0.5

	// TaxRate is the fixed tax applied to the discounted subtotal.
	TaxRate = 0.17

	// Per-item handling surcharges. Each applies once per qualifying item
	// regardless of quantity, and they stack when an item carries several
	// flags.
	FragileSurcharge               = 50.0
	HazardousSurcharge             = 200.0
	TemperatureControlledSurcharge = 100.0
)

// serviceRate holds the per-kilogram and per-cubic-meter base rates of a
// transport mode.
type serviceRate struct {
	perKg float64
	perM3 float64
}

func getServiceRates() map[kernel.ServiceType]serviceRate {
	return map[kernel.ServiceType]serviceRate{
		kernel.ServiceTypeAir:        {perKg: 8, perM3: 150},
		kernel.ServiceTypeSea:        {perKg: 2, perM3: 50},
		kernel.ServiceTypeLand:       {perKg: 4, perM3: 80},
		kernel.ServiceTypeMultimodal: {perKg: 5, perM3: 100},
	}
}

// PricingEngine is a domain service that computes the full pricing breakdown
// for a cargo movement.
//
// The computation is a fixed pipeline, each step feeding the next:
//  1. Total weight (kg) and volume (m3) are summed over items, quantity-weighted.
//  2. The base charge is the higher of the weight-based and volume-based
//     charge for the service type, never both.
//  3. The distance charge is the great-circle distance times DistanceRatePerKm.
//     Missing coordinates contribute a zero distance, not an error.
//  4. Handling surcharges are added once per qualifying item.
//  5. Discounts are applied in list order, each computed against the
//     undiscounted subtotal. The accumulated amount is not clamped to the
//     subtotal, so a negative total price is possible and surfaces as a
//     data-quality signal rather than being hidden.
//  6. Tax is TaxRate of the discounted subtotal, floored at zero.
//
// Example usage:
//
//	engine := services.NewPricingEngine()
//	pricing, err := engine.Calculate(serviceType, origin, destination, items, discounts)
//	if err != nil {
//	    // Handle invalid inputs
//	}
//	_ = quote.SetPricing(pricing)
type PricingEngine struct{}

// NewPricingEngine creates a new PricingEngine instance.
func NewPricingEngine() PricingEngine {
	return PricingEngine{}
}

// Calculate computes the pricing breakdown for the given cargo and route.
// Origin and destination may be nil when coordinates are unknown.
func (e PricingEngine) Calculate(
	serviceType kernel.ServiceType,
	origin *kernel.GeoPoint,
	destination *kernel.GeoPoint,
	items []cargo.Item,
	discounts []billing.Discount,
) (billing.Pricing, error) {
	if err := serviceType.Validate(); err != nil {
		return billing.Pricing{}, err
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return billing.Pricing{}, err
		}
	}
	for _, discount := range discounts {
		if err := discount.Validate(); err != nil {
			return billing.Pricing{}, err
		}
	}

	rate := getServiceRates()[serviceType]
	baseCharge := math.Max(
		cargo.TotalWeightKg(items)*rate.perKg,
		cargo.TotalVolumeM3(items)*rate.perM3,
	)

	distanceKm, err := kernel.DistanceBetween(origin, destination)
	if err != nil {
		return billing.Pricing{}, err
	}
	distanceCharge := distanceKm * DistanceRatePerKm
	specialCharges := e.specialCharges(items)

	subtotal := baseCharge + distanceCharge + specialCharges

	var discountAmount float64
	for _, discount := range discounts {
		discountAmount += discount.AmountOn(subtotal)
	}

	taxable := subtotal - discountAmount
	if taxable < 0 {
		taxable = 0
	}
	taxAmount := taxable * TaxRate

	totalPrice := subtotal - discountAmount + taxAmount

	return billing.NewPricing(
		baseCharge, distanceCharge, specialCharges,
		subtotal, discountAmount, taxAmount, totalPrice,
		cargo.DefaultCurrency,
	)
}

func (e PricingEngine) specialCharges(items []cargo.Item) float64 {
	var charges float64
	for _, item := range items {
		flags := item.Flags()
		if flags.Fragile {
			charges += FragileSurcharge
		}
		if flags.Hazardous {
			charges += HazardousSurcharge
		}
		if flags.TemperatureControlled {
			charges += TemperatureControlledSurcharge
		}
	}
	return charges
}
