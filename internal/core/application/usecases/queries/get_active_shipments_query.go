package queries

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrGetActiveShipmentsQueryIsNotConstructed = errors.New(
	"GetActiveShipmentsQuery must be created via NewGetActiveShipmentsQuery constructor",
)

// GetActiveShipmentsQuery retrieves all shipments still in flight.
// Returns every shipment not yet delivered, cancelled, or returned,
// for operational monitoring.
//
// Example:
//
//	query := NewGetActiveShipmentsQuery()
//	handler := NewGetActiveShipmentsQueryHandler(db)
//
//	active, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get active shipments: %w", err)
//	}
//	fmt.Printf("%d shipments in flight\n", len(active))
type GetActiveShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetActiveShipmentsQuery creates a query to retrieve in-flight shipments.
// This is a parameterless query that fetches all non-terminal shipments.
func NewGetActiveShipmentsQuery() GetActiveShipmentsQuery {
	return GetActiveShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetActiveShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveShipmentsQueryIsNotConstructed)
}

// GetActiveShipmentsQueryResponse represents one in-flight shipment row.
type GetActiveShipmentsQueryResponse struct {
	Code               string
	Status             string
	ServiceType        string
	DestinationCountry string
	DestinationCity    string
	RiskScore          int
}
