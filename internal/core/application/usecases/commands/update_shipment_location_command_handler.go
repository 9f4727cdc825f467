package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// UpdateShipmentLocationCommandHandler records tracking updates.
// The breadcrumb appended to the route keeps the source timestamp while the
// current location is stamped with the handler's clock, so the two effects
// stay distinguishable after the fact.
type UpdateShipmentLocationCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

// NewUpdateShipmentLocationCommandHandler creates a handler for tracking updates.
func NewUpdateShipmentLocationCommandHandler(
	uowFactory ShipmentUoWFactory, clock ports.Clock,
) UpdateShipmentLocationCommandHandler {
	return UpdateShipmentLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the tracking update command.
func (h UpdateShipmentLocationCommandHandler) Handle(ctx context.Context, cmd UpdateShipmentLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	aggregate, err := shipmentRepo.GetByCode(ctx, cmd.TrackingCode())
	if err != nil {
		return err
	}

	if err = aggregate.RecordLocation(cmd.Point(), cmd.Address(), cmd.RecordedAt(), h.clock.Now()); err != nil {
		return err
	}

	if err = shipmentRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
