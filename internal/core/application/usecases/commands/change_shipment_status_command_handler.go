package commands

import (
	"context"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// ChangeShipmentStatusCommandHandler advances a shipment through its
// lifecycle. Status changes affect the risk timeline (pickup and delivery
// stamps), so the insight is re-scored after the transition.
type ChangeShipmentStatusCommandHandler struct {
	uowFactory ShipmentUoWFactory
	clock      ports.Clock
}

// NewChangeShipmentStatusCommandHandler creates a handler for shipment
// status changes.
func NewChangeShipmentStatusCommandHandler(
	uowFactory ShipmentUoWFactory, clock ports.Clock,
) ChangeShipmentStatusCommandHandler {
	return ChangeShipmentStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the status change command.
// Transitions the shipment, re-scores its risk with the updated timeline,
// and persists both in one transaction. Transitions out of a terminal status
// are rejected by the aggregate.
func (h ChangeShipmentStatusCommandHandler) Handle(ctx context.Context, cmd ChangeShipmentStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()

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

	if err = aggregate.ChangeStatus(cmd.Status(), now); err != nil {
		return err
	}

	insight, err := services.NewRiskScorer().Assess(aggregate, now)
	if err != nil {
		return err
	}
	if err = aggregate.SetInsight(insight); err != nil {
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
