package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/guard"
)

var ErrChangeShipmentStatusCommandIsNotConstructed = errors.New(
	"ChangeShipmentStatusCommand must be created via NewChangeShipmentStatusCommand constructor",
)

// ChangeShipmentStatusCommand represents a request to advance a shipment
// through its delivery lifecycle.
type ChangeShipmentStatusCommand struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode
	status       shipment.Status

	guard guard.ConstructorGuard
}

// NewChangeShipmentStatusCommand creates a command to change a shipment's status.
func NewChangeShipmentStatusCommand(
	trackingCode kernel.TrackingCode, status shipment.Status,
) (ChangeShipmentStatusCommand, error) {
	statusCommand := ChangeShipmentStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setTrackingCode(trackingCode),
		statusCommand.setStatus(status),
	); err != nil {
		return ChangeShipmentStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeShipmentStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeShipmentStatusCommandIsNotConstructed)
}

// TrackingCode returns the code of the shipment to modify.
func (c ChangeShipmentStatusCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}

// Status returns the requested status.
func (c ChangeShipmentStatusCommand) Status() shipment.Status {
	return c.status
}

func (c *ChangeShipmentStatusCommand) setTrackingCode(trackingCode kernel.TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *ChangeShipmentStatusCommand) setStatus(status shipment.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
