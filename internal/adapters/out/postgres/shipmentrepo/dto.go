// Package shipmentrepo provides data transfer objects and mapping functions
// for shipment persistence. This package implements the repository pattern for
// the shipment domain aggregate, handling the conversion between domain
// entities and database representations.
package shipmentrepo

import (
	"encoding/json"
	"time"

	"shipping/internal/core/domain/model/billing"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment
// aggregates. Route, milestones, and the current location are stored as JSON
// documents so the tracking read model can return them without joins.
type ShipmentDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code        string     `gorm:"type:varchar(16);uniqueIndex"`
	Status      string     `gorm:"type:varchar(32);index"`
	ServiceType string     `gorm:"type:varchar(16)"`
	Origin      AddressDTO `gorm:"embedded;embeddedPrefix:origin_"`
	Destination AddressDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Items       []byte     `gorm:"type:jsonb"`
	Pricing     PricingDTO `gorm:"embedded;embeddedPrefix:pricing_"`

	RequestedPickupAt   *time.Time
	ActualPickupAt      *time.Time
	EstimatedDeliveryAt *time.Time
	ActualDeliveryAt    *time.Time
	Milestones          []byte `gorm:"type:jsonb"`

	CurrentLocation    []byte `gorm:"type:jsonb"`
	Route              []byte `gorm:"type:jsonb"`
	EstimatedArrivalAt *time.Time

	RiskScore       int    `gorm:"index"`
	Recommendations []byte `gorm:"type:jsonb"`
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// AddressDTO represents an embedded address within the shipment table.
// Coordinates are optional; addresses without geocoding store NULLs.
type AddressDTO struct {
	Country   string `gorm:"type:varchar(64)"`
	City      string `gorm:"type:varchar(64)"`
	Street    string `gorm:"type:varchar(128)"`
	Latitude  *float64
	Longitude *float64
}

// PricingDTO represents the embedded pricing breakdown within the shipment
// table. An empty currency marks a shipment persisted before pricing was
// computed.
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

// BreadcrumbDTO is the JSON document shape of a single route sample. Field
// names double as the tracking read model contract.
type BreadcrumbDTO struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Address    string    `json:"address"`
	RecordedAt time.Time `json:"recorded_at"`
}

// MilestoneDTO is the JSON document shape of a single timeline event. Field
// names double as the tracking read model contract.
type MilestoneDTO struct {
	Event       string    `json:"event"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
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

func breadcrumbToDTO(breadcrumb shipment.Breadcrumb) BreadcrumbDTO {
	return BreadcrumbDTO{
		Latitude:   breadcrumb.Point.Latitude(),
		Longitude:  breadcrumb.Point.Longitude(),
		Address:    breadcrumb.Address,
		RecordedAt: breadcrumb.RecordedAt,
	}
}

func breadcrumbFromDTO(dto BreadcrumbDTO) (shipment.Breadcrumb, error) {
	point, err := kernel.NewGeoPoint(dto.Latitude, dto.Longitude)
	if err != nil {
		return shipment.Breadcrumb{}, err
	}
	return shipment.Breadcrumb{
		Point:      point,
		Address:    dto.Address,
		RecordedAt: dto.RecordedAt,
	}, nil
}

func routeToJSON(route []shipment.Breadcrumb) ([]byte, error) {
	dtos := make([]BreadcrumbDTO, 0, len(route))
	for _, breadcrumb := range route {
		dtos = append(dtos, breadcrumbToDTO(breadcrumb))
	}
	return json.Marshal(dtos)
}

func routeFromJSON(doc []byte) ([]shipment.Breadcrumb, error) {
	if len(doc) == 0 {
		return nil, nil
	}

	var dtos []BreadcrumbDTO
	if err := json.Unmarshal(doc, &dtos); err != nil {
		return nil, err
	}

	route := make([]shipment.Breadcrumb, 0, len(dtos))
	for _, dto := range dtos {
		breadcrumb, err := breadcrumbFromDTO(dto)
		if err != nil {
			return nil, err
		}
		route = append(route, breadcrumb)
	}
	return route, nil
}

func currentLocationToJSON(breadcrumb *shipment.Breadcrumb) ([]byte, error) {
	if breadcrumb == nil {
		return nil, nil
	}
	dto := breadcrumbToDTO(*breadcrumb)
	return json.Marshal(dto)
}

func currentLocationFromJSON(doc []byte) (*shipment.Breadcrumb, error) {
	if len(doc) == 0 {
		return nil, nil
	}

	var dto BreadcrumbDTO
	if err := json.Unmarshal(doc, &dto); err != nil {
		return nil, err
	}
	breadcrumb, err := breadcrumbFromDTO(dto)
	if err != nil {
		return nil, err
	}
	return &breadcrumb, nil
}

func milestonesToJSON(milestones []shipment.Milestone) ([]byte, error) {
	dtos := make([]MilestoneDTO, 0, len(milestones))
	for _, milestone := range milestones {
		dtos = append(dtos, MilestoneDTO{
			Event:       milestone.Event,
			Location:    milestone.Location,
			Description: milestone.Description,
			Status:      milestone.Status,
			OccurredAt:  milestone.OccurredAt,
		})
	}
	return json.Marshal(dtos)
}

func milestonesFromJSON(doc []byte) ([]shipment.Milestone, error) {
	if len(doc) == 0 {
		return nil, nil
	}

	var dtos []MilestoneDTO
	if err := json.Unmarshal(doc, &dtos); err != nil {
		return nil, err
	}

	milestones := make([]shipment.Milestone, 0, len(dtos))
	for _, dto := range dtos {
		milestones = append(milestones, shipment.Milestone{
			Event:       dto.Event,
			Location:    dto.Location,
			Description: dto.Description,
			Status:      dto.Status,
			OccurredAt:  dto.OccurredAt,
		})
	}
	return milestones, nil
}

// fromDomain converts a shipment domain aggregate to its database
// representation.
func fromDomain(aggregate *shipment.Shipment) (ShipmentDTO, error) {
	items, err := itemsToJSON(aggregate.Items())
	if err != nil {
		return ShipmentDTO{}, err
	}
	milestones, err := milestonesToJSON(aggregate.Milestones())
	if err != nil {
		return ShipmentDTO{}, err
	}
	route, err := routeToJSON(aggregate.Route())
	if err != nil {
		return ShipmentDTO{}, err
	}
	currentLocation, err := currentLocationToJSON(aggregate.CurrentLocation())
	if err != nil {
		return ShipmentDTO{}, err
	}

	dto := ShipmentDTO{
		ID:          aggregate.ID().Bytes(),
		Code:        aggregate.Code().String(),
		Status:      aggregate.Status().String(),
		ServiceType: aggregate.ServiceType().String(),
		Origin:      addressToDTO(aggregate.Origin()),
		Destination: addressToDTO(aggregate.Destination()),
		Items:       items,

		RequestedPickupAt:   aggregate.RequestedPickupAt(),
		ActualPickupAt:      aggregate.ActualPickupAt(),
		EstimatedDeliveryAt: aggregate.EstimatedDeliveryAt(),
		ActualDeliveryAt:    aggregate.ActualDeliveryAt(),
		Milestones:          milestones,

		CurrentLocation:    currentLocation,
		Route:              route,
		EstimatedArrivalAt: aggregate.EstimatedArrivalAt(),
	}

	if pricing := aggregate.Pricing(); pricing.Validate() == nil {
		dto.Pricing = PricingDTO{
			BaseCharge:     pricing.BaseCharge(),
			DistanceCharge: pricing.DistanceCharge(),
			SpecialCharges: pricing.SpecialCharges(),
			Subtotal:       pricing.Subtotal(),
			DiscountAmount: pricing.DiscountAmount(),
			TaxAmount:      pricing.TaxAmount(),
			TotalPrice:     pricing.TotalPrice(),
			Currency:       pricing.Currency(),
		}
	}
	if insight := aggregate.Insight(); insight.Validate() == nil {
		recommendations, err := json.Marshal(insight.Recommendations())
		if err != nil {
			return ShipmentDTO{}, err
		}
		dto.RiskScore = insight.RiskScore()
		dto.Recommendations = recommendations
	}

	return dto, nil
}

// toDomain converts a database DTO to a shipment domain aggregate using
// RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	code, err := kernel.NewTrackingCode(dto.Code)
	if err != nil {
		return nil, err
	}
	status, err := shipment.StatusFromString(dto.Status)
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
	milestones, err := milestonesFromJSON(dto.Milestones)
	if err != nil {
		return nil, err
	}
	route, err := routeFromJSON(dto.Route)
	if err != nil {
		return nil, err
	}
	currentLocation, err := currentLocationFromJSON(dto.CurrentLocation)
	if err != nil {
		return nil, err
	}

	params := shipment.RestoreShipmentParams{
		ID:          id,
		Code:        code,
		Status:      status,
		Origin:      origin,
		Destination: destination,
		ServiceType: serviceType,
		Items:       items,

		RequestedPickupAt:   dto.RequestedPickupAt,
		ActualPickupAt:      dto.ActualPickupAt,
		EstimatedDeliveryAt: dto.EstimatedDeliveryAt,
		ActualDeliveryAt:    dto.ActualDeliveryAt,
		Milestones:          milestones,

		CurrentLocation:    currentLocation,
		Route:              route,
		EstimatedArrivalAt: dto.EstimatedArrivalAt,
	}

	if dto.Pricing.Currency != "" {
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
		params.Pricing = &pricing
	}
	if len(dto.Recommendations) > 0 {
		var recommendations []string
		if err := json.Unmarshal(dto.Recommendations, &recommendations); err != nil {
			return nil, err
		}
		insight, err := shipment.NewInsight(dto.RiskScore, recommendations)
		if err != nil {
			return nil, err
		}
		params.Insight = &insight
	}

	return shipment.RestoreShipment(params)
}
