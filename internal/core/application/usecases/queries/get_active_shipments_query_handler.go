package queries

import (
	"context"

	"shipping/internal/core/domain/model/shipment"

	"gorm.io/gorm"
)

// GetActiveShipmentsQueryHandler retrieves in-flight shipments from the
// database. Terminal shipments are filtered out to show the active workload.
type GetActiveShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveShipmentsQueryHandler creates a handler for active shipment queries.
// Requires a GORM database connection for query execution.
func NewGetActiveShipmentsQueryHandler(db *gorm.DB) GetActiveShipmentsQueryHandler {
	return GetActiveShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all non-terminal shipments.
// Results are sorted by code for consistent output.
func (h GetActiveShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetActiveShipmentsQuery,
) ([]GetActiveShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetActiveShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			code,
			status,
			service_type,
			destination_country,
			destination_city,
			risk_score
		FROM shipments
		WHERE status NOT IN (?, ?, ?)
		ORDER BY code
	`,
		shipment.StatusDelivered.String(),
		shipment.StatusCancelled.String(),
		shipment.StatusReturned.String(),
	).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var shipmentResp GetActiveShipmentsQueryResponse

		err = rows.Scan(
			&shipmentResp.Code,
			&shipmentResp.Status,
			&shipmentResp.ServiceType,
			&shipmentResp.DestinationCountry,
			&shipmentResp.DestinationCity,
			&shipmentResp.RiskScore,
		)
		if err != nil {
			return nil, err
		}

		shipments = append(shipments, shipmentResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
