package queries

import (
	"context"
	"database/sql"
	"encoding/json"

	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetShipmentTrackingQueryHandler reads a shipment's tracking view from the
// database. Location and timeline columns are stored as JSON documents and
// decoded straight into response types.
type GetShipmentTrackingQueryHandler struct {
	db *gorm.DB
}

// NewGetShipmentTrackingQueryHandler creates a handler for tracking lookups.
// Requires a GORM database connection for query execution.
func NewGetShipmentTrackingQueryHandler(db *gorm.DB) GetShipmentTrackingQueryHandler {
	return GetShipmentTrackingQueryHandler{db: db}
}

// Handle executes the tracking lookup.
// Returns errs.ErrObjectNotFound when no shipment carries the requested code.
func (h GetShipmentTrackingQueryHandler) Handle(
	ctx context.Context,
	query GetShipmentTrackingQuery,
) (GetShipmentTrackingQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			status,
			current_location,
			route,
			milestones,
			estimated_arrival_at
		FROM shipments
		WHERE code = ?
	`, query.TrackingCode().String()).Rows()
	if err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetShipmentTrackingQueryResponse{}, err
		}
		return GetShipmentTrackingQueryResponse{},
			errs.NewObjectNotFoundError("trackingCode", query.TrackingCode().String())
	}

	var (
		response           GetShipmentTrackingQueryResponse
		currentLocationDoc []byte
		routeDoc           []byte
		milestonesDoc      []byte
		estimatedArrivalAt sql.NullTime
	)

	err = rows.Scan(
		&response.Code,
		&response.Status,
		&currentLocationDoc,
		&routeDoc,
		&milestonesDoc,
		&estimatedArrivalAt,
	)
	if err != nil {
		return GetShipmentTrackingQueryResponse{}, err
	}

	if len(currentLocationDoc) > 0 {
		var currentLocation TrackingLocationResponse
		if err = json.Unmarshal(currentLocationDoc, &currentLocation); err != nil {
			return GetShipmentTrackingQueryResponse{}, err
		}
		response.CurrentLocation = &currentLocation
	}
	if len(routeDoc) > 0 {
		if err = json.Unmarshal(routeDoc, &response.Route); err != nil {
			return GetShipmentTrackingQueryResponse{}, err
		}
	}
	if len(milestonesDoc) > 0 {
		if err = json.Unmarshal(milestonesDoc, &response.Milestones); err != nil {
			return GetShipmentTrackingQueryResponse{}, err
		}
	}
	if estimatedArrivalAt.Valid {
		response.EstimatedArrivalAt = &estimatedArrivalAt.Time
	}

	return response, nil
}
