// Package quoterepo provides data transfer objects and mapping functions for
// quote persistence. This package implements the repository pattern for the
// quote domain aggregate, handling the conversion between domain entities and
// database representations.
package quoterepo

import (
	"encoding/json"
	"time"

	"shipping/internal/core/domain/model/billing"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"

	"github.com/google/uuid"
)

// QuoteDTO represents the database structure for persisting quote aggregates.
// The unique index on code is the final authority on code uniqueness; the
// generator's pre-check only reduces the chance of hitting it.
type QuoteDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code        string     `gorm:"type:varchar(16);uniqueIndex"`
	Status      string     `gorm:"type:varchar(16);index"`
	ServiceType string     `gorm:"type:varchar(16)"`
	Origin      AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Items       []byte     `gorm:"type:jsonb"`
	Discounts   []byte     `gorm:"type:jsonb"`
	Pricing     PricingDTO `gorm:"embedded;embeddedPrefix:pricing_"`
	ExpiresAt   time.Time  `gorm:"index"`
	IsValid     bool
}

// TableName specifies the database table name for quote entities.
// Overrides GORM's default naming convention to use "quotes".
func (QuoteDTO) TableName() string {
	return "quotes"
}

// AddressDTO represents an embedded address within the quote table.
// Coordinates are optional; addresses without geocoding store NULLs.
type AddressDTO struct {
	Country   string `gorm:"type:varchar(64)"`
	City      string `gorm:"type:varchar(64)"`
	Street    string `gorm:"type:varchar(128)"`
	Latitude  *float64
	Longitude *float64
}

// PricingDTO represents the embedded pricing breakdown within the quote table.
type PricingDTO struct {
	BaseCharge     float64
	DistanceCharge float64
	SpecialCharges float64
	Subtotal       float64
	DiscountAmount float64
	TaxAmount      float64
	TotalPrice     float64
	Currency       string `gorm:"type:varchar(8)"`
}

// ItemDTO is the JSON document shape of a single cargo item.
type ItemDTO struct {
	Category              string  `json:"category"`
	Quantity              int     `json:"quantity"`
	Length                float64 `json:"length"`
	Width                 float64 `json:"width"`
	Height                float64 `json:"height"`
	DimensionUnit         string  `json:"dimension_unit"`
	WeightValue           float64 `json:"weight_value"`
	WeightUnit            string  `json:"weight_unit"`
	ValueAmount           float64 `json:"value_amount"`
	ValueCurrency         string  `json:"value_currency"`
	Fragile               bool    `json:"fragile"`
	Hazardous             bool    `json:"hazardous"`
	TemperatureControlled bool    `json:"temperature_controlled"`
	InsuranceRequired     bool    `json:"insurance_required"`
}

// DiscountDTO is the JSON document shape of a single discount.
type DiscountDTO struct {
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

func addressToDTO(address kernel.Address) AddressDTO {
	dto := AddressDTO{
		Country: address.Country(),
		City:    address.City(),
		Street:  address.Street(),
	}
	if point := address.Point(); point != nil {
		latitude := point.Latitude()
		longitude := point.Longitude()
		dto.Latitude = &latitude
		dto.Longitude = &longitude
	}
	return dto
}

func addressFromDTO(dto AddressDTO) (kernel.Address, error) {
	var point *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		p, err := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if err != nil {
			return kernel.Address{}, err
		}
		point = &p
	}
	return kernel.NewAddress(dto.Country, dto.City, dto.Street, point)
}

func itemsToJSON(items []cargo.Item) ([]byte, error) {
	dtos := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		dtos = append(dtos, ItemDTO{
			Category:              item.Category().String(),
			Quantity:              item.Quantity(),
			Length:                item.Dimensions().Length,
			Width:                 item.Dimensions().Width,
			Height:                item.Dimensions().Height,
			DimensionUnit:         item.Dimensions().Unit.String(),
			WeightValue:           item.Weight().Value,
			WeightUnit:            item.Weight().Unit.String(),
			ValueAmount:           item.DeclaredValue().Amount(),
			ValueCurrency:         item.DeclaredValue().Currency(),
			Fragile:               item.Flags().Fragile,
			Hazardous:             item.Flags().Hazardous,
			TemperatureControlled: item.Flags().TemperatureControlled,
			InsuranceRequired:     item.Flags().InsuranceRequired,
		})
	}
	return json.Marshal(dtos)
}

func itemsFromJSON(doc []byte) ([]cargo.Item, error) {
	if len(doc) == 0 {
		return nil, nil
	}

	var dtos []ItemDTO
	if err := json.Unmarshal(doc, &dtos); err != nil {
		return nil, err
	}

	items := make([]cargo.Item, 0, len(dtos))
	for _, dto := range dtos {
		category, err := cargo.CategoryFromString(dto.Category)
		if err != nil {
			return nil, err
		}
		dimensionUnit, err := cargo.DimensionUnitFromString(dto.DimensionUnit)
		if err != nil {
			return nil, err
		}
		weightUnit, err := cargo.WeightUnitFromString(dto.WeightUnit)
		if err != nil {
			return nil, err
		}
		value, err := cargo.NewMoney(dto.ValueAmount, dto.ValueCurrency)
		if err != nil {
			return nil, err
		}

		item, err := cargo.NewItem(
			category,
			dto.Quantity,
			cargo.Dimensions{Length: dto.Length, Width: dto.Width, Height: dto.Height, Unit: dimensionUnit},
			cargo.Weight{Value: dto.WeightValue, Unit: weightUnit},
			value,
			cargo.Flags{
				Fragile:               dto.Fragile,
				Hazardous:             dto.Hazardous,
				TemperatureControlled: dto.TemperatureControlled,
				InsuranceRequired:     dto.InsuranceRequired,
			},
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func discountsToJSON(discounts []billing.Discount) ([]byte, error) {
	dtos := make([]DiscountDTO, 0, len(discounts))
	for _, discount := range discounts {
		dtos = append(dtos, DiscountDTO{
			Type:        discount.Type().String(),
			Value:       discount.Value(),
			Description: discount.Description(),
		})
	}
	return json.Marshal(dtos)
}

func discountsFromJSON(doc []byte) ([]billing.Discount, error) {
	if len(doc) == 0 {
		return nil, nil
	}

	var dtos []DiscountDTO
	if err := json.Unmarshal(doc, &dtos); err != nil {
		return nil, err
	}

	discounts := make([]billing.Discount, 0, len(dtos))
	for _, dto := range dtos {
		discountType, err := billing.DiscountTypeFromString(dto.Type)
		if err != nil {
			return nil, err
		}
		discount, err := billing.NewDiscount(discountType, dto.Value, dto.Description)
		if err != nil {
			return nil, err
		}
		discounts = append(discounts, discount)
	}
	return discounts, nil
}

// fromDomain converts a quote domain aggregate to its database representation.
func fromDomain(aggregate *quote.Quote) (QuoteDTO, error) {
	items, err := itemsToJSON(aggregate.Items())
	if err != nil {
		return QuoteDTO{}, err
	}
	discounts, err := discountsToJSON(aggregate.Discounts())
	if err != nil {
		return QuoteDTO{}, err
	}

	pricing := aggregate.Pricing()

	return QuoteDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code().String(),
		Status:      aggregate.Status().String(),
		ServiceType: aggregate.ServiceType().String(),
		Origin:      addressToDTO(aggregate.Origin()),
		Destination: addressToDTO(aggregate.Destination()),
		Items:       items,
		Discounts:   discounts,
		Pricing: PricingDTO{
			BaseCharge:     pricing.BaseCharge(),
			DistanceCharge: pricing.DistanceCharge(),
			SpecialCharges: pricing.SpecialCharges(),
			Subtotal:       pricing.Subtotal(),
			DiscountAmount: pricing.DiscountAmount(),
			TaxAmount:      pricing.TaxAmount(),
			TotalPrice:     pricing.TotalPrice(),
			Currency:       pricing.Currency(),
		},
		ExpiresAt: aggregate.ExpiresAt(),
		IsValid:   aggregate.IsValid(),
	}, nil
}

// toDomain converts a database DTO to a quote domain aggregate using
// RestoreQuote.
func toDomain(dto QuoteDTO) (*quote.Quote, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	code, err := kernel.NewQuoteCode(dto.Code)
	if err != nil {
		return nil, err
	}
	status, err := quote.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}
	serviceType, err := kernel.ServiceTypeFromString(dto.ServiceType)
	if err != nil {
		return nil, err
	}
	origin, err := addressFromDTO(dto.Origin)
	if err != nil {
		return nil, err
	}
	destination, err := addressFromDTO(dto.Destination)
	if err != nil {
		return nil, err
	}
	items, err := itemsFromJSON(dto.Items)
	if err != nil {
		return nil, err
	}
	discounts, err := discountsFromJSON(dto.Discounts)
	if err != nil {
		return nil, err
	}
	pricing, err := billing.NewPricing(
		dto.Pricing.BaseCharge,
		dto.Pricing.DistanceCharge,
		dto.Pricing.SpecialCharges,
		dto.Pricing.Subtotal,
		dto.Pricing.DiscountAmount,
		dto.Pricing.TaxAmount,
		dto.Pricing.TotalPrice,
		dto.Pricing.Currency,
	)
	if err != nil {
		return nil, err
	}

	return quote.RestoreQuote(
		id, code, status, origin, destination, serviceType,
		items, discounts, pricing, dto.ExpiresAt, dto.IsValid,
	)
}
