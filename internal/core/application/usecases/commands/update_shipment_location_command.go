package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

var ErrUpdateShipmentLocationCommandIsNotConstructed = errors.New(
	"UpdateShipmentLocationCommand must be created via NewUpdateShipmentLocationCommand constructor",
)

// UpdateShipmentLocationCommand represents a tracking update: a geolocation
// sample to append to a shipment's route. RecordedAt is the moment the
// sample was taken at the source, which may lag its arrival here.
type UpdateShipmentLocationCommand struct { //nolint:recvcheck //using for validation
	trackingCode kernel.TrackingCode
	point        kernel.GeoPoint
	address      string
	recordedAt   time.Time

	guard guard.ConstructorGuard
}

// NewUpdateShipmentLocationCommand creates a command to record a shipment's
// position.
func NewUpdateShipmentLocationCommand(
	trackingCode kernel.TrackingCode,
	point kernel.GeoPoint,
	address string,
	recordedAt time.Time,
) (UpdateShipmentLocationCommand, error) {
	locationCommand := UpdateShipmentLocationCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		locationCommand.setTrackingCode(trackingCode),
		locationCommand.setPoint(point),
		locationCommand.setRecordedAt(recordedAt),
	); err != nil {
		return UpdateShipmentLocationCommand{}, err
	}

	return locationCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateShipmentLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateShipmentLocationCommandIsNotConstructed)
}

// TrackingCode returns the code of the shipment to update.
func (c UpdateShipmentLocationCommand) TrackingCode() kernel.TrackingCode {
	return c.trackingCode
}

// Point returns the sampled coordinates.
func (c UpdateShipmentLocationCommand) Point() kernel.GeoPoint {
	return c.point
}

// Address returns the human-readable position description.
func (c UpdateShipmentLocationCommand) Address() string {
	return c.address
}

// RecordedAt returns when the sample was taken.
func (c UpdateShipmentLocationCommand) RecordedAt() time.Time {
	return c.recordedAt
}

func (c *UpdateShipmentLocationCommand) setTrackingCode(trackingCode kernel.TrackingCode) error {
	if err := trackingCode.Validate(); err != nil {
		return err
	}

	c.trackingCode = trackingCode
	return nil
}

func (c *UpdateShipmentLocationCommand) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.point = point
	return nil
}

func (c *UpdateShipmentLocationCommand) setRecordedAt(recordedAt time.Time) error {
	if recordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}

	c.recordedAt = recordedAt
	return nil
}
