// Package queries contains read-only operations against the storage layer.
// Implements the Query side of the CQRS architecture: handlers read
// projection-friendly rows directly instead of rehydrating full aggregates.
package queries

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrGetShipmentTrackingQueryIsNotConstructed = errors.New(
	"GetShipmentTrackingQuery must be created via NewGetShipmentTrackingQuery constructor",
)

// GetShipmentTrackingQuery retrieves the tracking view of a single shipment:
// its status, current location, route history, milestones, and arrival
// estimate.
//
// Example:
//
//	code, _ := kernel.NewTrackingCode("VIP1234567890")
//	query, _ := NewGetShipmentTrackingQuery(code)
//	handler := NewGetShipmentTrackingQueryHandler(db)
//
//	tracking, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get tracking: %w", err)
//	}
//	fmt.Printf("Shipment %s is %s\n", tracking.Code, tracking.Status)
type GetShipmentTrackingQuery struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode

	guard guard.ConstructorGuard
}

// NewGetShipmentTrackingQuery creates a query for a shipment's tracking view.
func NewGetShipmentTrackingQuery(trackingCode kernel.TrackingCode) (GetShipmentTrackingQuery, error) {
	if err := trackingCode.Validate(); err != nil {
		return GetShipmentTrackingQuery{}, err
	}

	return GetShipmentTrackingQuery{
		trackingCode: trackingCode,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShipmentTrackingQuery) Validate() error {
	return q.guard.Validate(ErrGetShipmentTrackingQueryIsNotConstructed)
}

// TrackingCode returns the code of the shipment to look up.
func (q GetShipmentTrackingQuery) TrackingCode() kernel.TrackingCode {
	return q.trackingCode
}

// TrackingLocationResponse is a single location sample in the tracking view.
// The JSON tags match the storage representation of route breadcrumbs.
type TrackingLocationResponse struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Address    string    `json:"address"`
	RecordedAt time.Time `json:"recorded_at"`
}

// TrackingMilestoneResponse is a single timeline event in the tracking view.
type TrackingMilestoneResponse struct {
	Event       string    `json:"event"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// GetShipmentTrackingQueryResponse represents the tracking state of a
// shipment as stored, without rehydrating the aggregate.
type GetShipmentTrackingQueryResponse struct {
	Code               string
	Status             string
	CurrentLocation    *TrackingLocationResponse
	Route              []TrackingLocationResponse
	Milestones         []TrackingMilestoneResponse
	EstimatedArrivalAt *time.Time
}
