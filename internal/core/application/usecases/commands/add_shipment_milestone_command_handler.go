package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// AddShipmentMilestoneCommandHandler records timeline events against a
// shipment. Milestones are append-only; the aggregate never removes or
// reorders earlier ones.
type AddShipmentMilestoneCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

// NewAddShipmentMilestoneCommandHandler creates a handler for milestone
// additions.
func NewAddShipmentMilestoneCommandHandler(
	uowFactory ShipmentUoWFactory, clock ports.Clock,
) AddShipmentMilestoneCommandHandler {
	return AddShipmentMilestoneCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the milestone command, stamping the event with the
// handler's clock.
func (h AddShipmentMilestoneCommandHandler) Handle(ctx context.Context, cmd AddShipmentMilestoneCommand) error {
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

	if err = aggregate.AddMilestone(cmd.Event(), cmd.Location(), cmd.Description(), cmd.Status(), h.clock.Now()); err != nil {
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
