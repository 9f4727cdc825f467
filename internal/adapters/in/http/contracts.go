package http

import (
	"time"

	"shipping/internal/core/domain/model/billing"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
)

// Error is the uniform error body returned by all endpoints.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddressRequest carries an address with optional coordinates.
type AddressRequest struct {
	Country   string   `json:"country"`
	City      string   `json:"city"`
	Street    string   `json:"street"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// ItemRequest carries one cargo line of a quote or shipment.
type ItemRequest struct {
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

// DiscountRequest carries one discount applied to a quote.
type DiscountRequest struct {
	Type        string  `json:"type"`
	Value       float64 `json:"value"`
	Description string  `json:"description"`
}

// CreateQuoteRequest is the body of POST /api/v1/quotes.
type CreateQuoteRequest struct {
	Origin      AddressRequest    `json:"origin"`
	Destination AddressRequest    `json:"destination"`
	ServiceType string            `json:"service_type"`
	Items       []ItemRequest     `json:"items"`
	Discounts   []DiscountRequest `json:"discounts,omitempty"`
}

// CreateQuoteResponse returns the issued quote code.
type CreateQuoteResponse struct {
	Code string `json:"code"`
}

// AddQuoteItemRequest is the body of POST /api/v1/quotes/:code/items.
type AddQuoteItemRequest struct {
	Item ItemRequest `json:"item"`
}

// UpdateQuoteStatusRequest is the body of PATCH /api/v1/quotes/:code/status.
type UpdateQuoteStatusRequest struct {
	Status string `json:"status"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	Origin              AddressRequest `json:"origin"`
	Destination         AddressRequest `json:"destination"`
	ServiceType         string         `json:"service_type"`
	Items               []ItemRequest  `json:"items"`
	RequestedPickupAt   *time.Time     `json:"requested_pickup_at,omitempty"`
	EstimatedDeliveryAt *time.Time     `json:"estimated_delivery_at,omitempty"`
}

// CreateShipmentResponse returns the issued tracking code.
type CreateShipmentResponse struct {
	Code string `json:"code"`
}

// ChangeShipmentStatusRequest is the body of PATCH /api/v1/shipments/:code/status.
type ChangeShipmentStatusRequest struct {
	Status string `json:"status"`
}

// UpdateShipmentLocationRequest is the body of POST /api/v1/shipments/:code/location.
type UpdateShipmentLocationRequest struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Address    string    `json:"address"`
	RecordedAt time.Time `json:"recorded_at"`
}

// AddShipmentMilestoneRequest is the body of POST /api/v1/shipments/:code/milestones.
type AddShipmentMilestoneRequest struct {
	Event       string `json:"event"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

func toAddress(request AddressRequest) (kernel.Address, error) {
	var point *kernel.GeoPoint
	if request.Latitude != nil && request.Longitude != nil {
		p, err := kernel.NewGeoPoint(*request.Latitude, *request.Longitude)
		if err != nil {
			return kernel.Address{}, err
		}
		point = &p
	}
	return kernel.NewAddress(request.Country, request.City, request.Street, point)
}

func toItem(request ItemRequest) (cargo.Item, error) {
	category, err := cargo.CategoryFromString(request.Category)
	if err != nil {
		return cargo.Item{}, err
	}
	dimensionUnit, err := cargo.DimensionUnitFromString(request.DimensionUnit)
	if err != nil {
		return cargo.Item{}, err
	}
	weightUnit, err := cargo.WeightUnitFromString(request.WeightUnit)
	if err != nil {
		return cargo.Item{}, err
	}

	currency := request.ValueCurrency
	if currency == "" {
		currency = cargo.DefaultCurrency
	}
	value, err := cargo.NewMoney(request.ValueAmount, currency)
	if err != nil {
		return cargo.Item{}, err
	}

	return cargo.NewItem(
		category,
		request.Quantity,
		cargo.Dimensions{
			Length: request.Length,
			Width:  request.Width,
			Height: request.Height,
			Unit:   dimensionUnit,
		},
		cargo.Weight{Value: request.WeightValue, Unit: weightUnit},
		value,
		cargo.Flags{
			Fragile:               request.Fragile,
			Hazardous:             request.Hazardous,
			TemperatureControlled: request.TemperatureControlled,
			InsuranceRequired:     request.InsuranceRequired,
		},
	)
}

func toItems(requests []ItemRequest) ([]cargo.Item, error) {
	items := make([]cargo.Item, 0, len(requests))
	for _, request := range requests {
		item, err := toItem(request)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func toDiscounts(requests []DiscountRequest) ([]billing.Discount, error) {
	discounts := make([]billing.Discount, 0, len(requests))
	for _, request := range requests {
		discountType, err := billing.DiscountTypeFromString(request.Type)
		if err != nil {
			return nil, err
		}
		discount, err := billing.NewDiscount(discountType, request.Value, request.Description)
		if err != nil {
			return nil, err
		}
		discounts = append(discounts, discount)
	}
	return discounts, nil
}
