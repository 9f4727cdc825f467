package ports

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment
// aggregates. Provides methods for storing, retrieving, and querying
// shipments by their tracking code and lifecycle state.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetByCode retrieves a shipment aggregate by its tracking code.
	GetByCode(ctx context.Context, code kernel.TrackingCode) (*shipment.Shipment, error)

	// ExistsByCode reports whether any shipment carries the given code.
	// Used by the code generator as a best-effort collision pre-check.
	ExistsByCode(ctx context.Context, code string) (bool, error)
}
