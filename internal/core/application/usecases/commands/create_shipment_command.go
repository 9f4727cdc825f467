package commands

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to book a new shipment.
// Encapsulates the route, cargo, and the customer's requested pickup and
// delivery windows.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, origin, destination, serviceType, items, &pickupAt, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory, generator, clock)
//	code, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
//	fmt.Printf("Shipment %s awaiting quote", code)
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID          kernel.UUID
	origin              kernel.Address
	destination         kernel.Address
	serviceType         kernel.ServiceType
	items               []cargo.Item
	requestedPickupAt   *time.Time
	estimatedDeliveryAt *time.Time

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to book a new shipment.
// Pickup and delivery times are optional at booking.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	origin kernel.Address,
	destination kernel.Address,
	serviceType kernel.ServiceType,
	items []cargo.Item,
	requestedPickupAt *time.Time,
	estimatedDeliveryAt *time.Time,
) (CreateShipmentCommand, error) {
	shipmentCommand := CreateShipmentCommand{
		requestedPickupAt:   requestedPickupAt,
		estimatedDeliveryAt: estimatedDeliveryAt,
		guard:               guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		shipmentCommand.setShipmentID(shipmentID),
		shipmentCommand.setOrigin(origin),
		shipmentCommand.setDestination(destination),
		shipmentCommand.setServiceType(serviceType),
		shipmentCommand.setItems(items),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return shipmentCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// Origin returns the pickup address.
func (c CreateShipmentCommand) Origin() kernel.Address {
	return c.origin
}

// Destination returns the delivery address.
func (c CreateShipmentCommand) Destination() kernel.Address {
	return c.destination
}

// ServiceType returns the requested transport mode.
func (c CreateShipmentCommand) ServiceType() kernel.ServiceType {
	return c.serviceType
}

// Items returns the cargo to ship.
func (c CreateShipmentCommand) Items() []cargo.Item {
	return c.items
}

// RequestedPickupAt returns the customer's requested pickup time, if any.
func (c CreateShipmentCommand) RequestedPickupAt() *time.Time {
	return c.requestedPickupAt
}

// EstimatedDeliveryAt returns the promised delivery estimate, if any.
func (c CreateShipmentCommand) EstimatedDeliveryAt() *time.Time {
	return c.estimatedDeliveryAt
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	c.origin = origin
	return nil
}

func (c *CreateShipmentCommand) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *CreateShipmentCommand) setServiceType(serviceType kernel.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateShipmentCommand) setItems(items []cargo.Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
