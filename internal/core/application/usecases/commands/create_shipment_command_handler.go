package commands

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// CreateShipmentCommandHandler handles the business logic for shipment
// booking. Issues a unique tracking code, prices the cargo, scores the
// initial risk, and persists the shipment in quote_requested status.
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
	generator  services.CodeGenerator
	clock      ports.Clock
}

// NewCreateShipmentCommandHandler creates a handler for shipment booking
// operations.
func NewCreateShipmentCommandHandler(
	uowFactory ShipmentUoWFactory,
	generator services.CodeGenerator,
	clock ports.Clock,
) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
		clock:      clock,
	}
}

// Handle processes the shipment booking command and returns the issued
// tracking code. Pricing and risk insight are computed up front so the
// stored shipment is immediately quotable.
func (h CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) (kernel.TrackingCode, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TrackingCode{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.TrackingCode{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()

	code, err := h.generator.GenerateTrackingCode(ctx,
		services.CodeExistenceCheckerFunc(shipmentRepo.ExistsByCode))
	if err != nil {
		return kernel.TrackingCode{}, err
	}

	newShipment, err := shipment.NewShipment(
		cmd.ShipmentID(),
		code,
		cmd.Origin(),
		cmd.Destination(),
		cmd.ServiceType(),
		cmd.Items(),
		cmd.RequestedPickupAt(),
		cmd.EstimatedDeliveryAt(),
	)
	if err != nil {
		return kernel.TrackingCode{}, err
	}

	pricing, err := services.NewPricingEngine().Calculate(
		newShipment.ServiceType(),
		newShipment.Origin().Point(),
		newShipment.Destination().Point(),
		newShipment.Items(),
		nil,
	)
	if err != nil {
		return kernel.TrackingCode{}, err
	}
	if err = newShipment.SetPricing(pricing); err != nil {
		return kernel.TrackingCode{}, err
	}

	insight, err := services.NewRiskScorer().Assess(newShipment, h.clock.Now())
	if err != nil {
		return kernel.TrackingCode{}, err
	}
	if err = newShipment.SetInsight(insight); err != nil {
		return kernel.TrackingCode{}, err
	}

	if err = shipmentRepo.Add(ctx, newShipment); err != nil {
		return kernel.TrackingCode{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.TrackingCode{}, err
	}

	return code, nil
}
