package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrAddShipmentMilestoneCommandIsNotConstructed = errors.New(
	"AddShipmentMilestoneCommand must be created via NewAddShipmentMilestoneCommand constructor",
)

// AddShipmentMilestoneCommand represents a request to record a lifecycle
// event on a shipment's timeline.
type AddShipmentMilestoneCommand struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode
	event        string
	location     string
	description  string
	status       string

	guard guard.ConstructorGuard
}

// NewAddShipmentMilestoneCommand creates a command to append a milestone.
// Only the event name is mandatory; location, description, and status are
// free-form annotations.
func NewAddShipmentMilestoneCommand(
	trackingCode kernel.TrackingCode,
	event, location, description, status string,
) (AddShipmentMilestoneCommand, error) {
	milestoneCommand := AddShipmentMilestoneCommand{
		location:    location,
		description: description,
		status:      status,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		milestoneCommand.setTrackingCode(trackingCode),
		milestoneCommand.setEvent(event),
	); err != nil {
		return AddShipmentMilestoneCommand{}, err
	}

	return milestoneCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddShipmentMilestoneCommand) Validate() error {
	return c.guard.Validate(ErrAddShipmentMilestoneCommandIsNotConstructed)
}

// TrackingCode returns the code of the shipment to update.
func (c AddShipmentMilestoneCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}

// Event returns the milestone event name.
func (c AddShipmentMilestoneCommand) Event() string {
	return c.event
}

// Location returns where the event happened.
func (c AddShipmentMilestoneCommand) Location() string {
	return c.location
}

// Description returns the free-form event description.
func (c AddShipmentMilestoneCommand) Description() string {
	return c.description
}

// Status returns the status annotation attached to the event.
func (c AddShipmentMilestoneCommand) Status() string {
	return c.status
}

func (c *AddShipmentMilestoneCommand) setTrackingCode(trackingCode kernel.TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *AddShipmentMilestoneCommand) setEvent(event string) error {
	if event == "" {
		return errs.NewValueIsRequiredError("event")
	}

	c.event = event
	return nil
}
