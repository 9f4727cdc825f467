package commands

import (
	"errors"

	"shipping/internal/core/domain/model/billing"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var (
	ErrCreateQuoteCommandIsNotConstructed = errors.New(
		"CreateQuoteCommand must be created via NewCreateQuoteCommand constructor",
	)
	ErrItemsAreRequired = errors.New("at least one item is required")
)

// CreateQuoteCommand represents a request to create a new shipping quote.
// Encapsulates the route, service type, cargo, and any discounts to apply.
//
// Example:
//
//	quoteID := kernel.NewUUID()
//	cmd, err := NewCreateQuoteCommand(quoteID, origin, destination, serviceType, items, discounts)
//	if err != nil {
//	    return fmt.Errorf("invalid quote data: %w", err)
//	}
//
//	handler := NewCreateQuoteCommandHandler(uowFactory, generator, clock)
//	code, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to create quote: %w", err)
//	}
//	fmt.Printf("Quote %s created", code)
type CreateQuoteCommand struct { //nolint:recvcheck //using for validation
	quoteID     kernel.UUID
	origin      kernel.Address
	destination kernel.Address
	serviceType kernel.ServiceType
	items       []cargo.Item
	discounts   []billing.Discount

	guard guard.ConstructorGuard
}

// NewCreateQuoteCommand creates a command to register a new shipping quote.
// Validates the route addresses, service type, and that at least one item is
// present. Returns an error if any validation fails.
func NewCreateQuoteCommand(
	quoteID kernel.UUID,
	origin kernel.Address,
	destination kernel.Address,
	serviceType kernel.ServiceType,
	items []cargo.Item,
	discounts []billing.Discount,
) (CreateQuoteCommand, error) {
	quoteCommand := CreateQuoteCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		quoteCommand.setQuoteID(quoteID),
		quoteCommand.setOrigin(origin),
		quoteCommand.setDestination(destination),
		quoteCommand.setServiceType(serviceType),
		quoteCommand.setItems(items),
		quoteCommand.setDiscounts(discounts),
	); err != nil {
		return CreateQuoteCommand{}, err
	}

	return quoteCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateQuoteCommandIsNotConstructed if validation fails.
func (c CreateQuoteCommand) Validate() error {
	return c.guard.Validate(ErrCreateQuoteCommandIsNotConstructed)
}

// QuoteID returns the unique identifier for the quote.
func (c CreateQuoteCommand) QuoteID() kernel.UUID {
	return c.quoteID
}

// Origin returns the pickup address.
func (c CreateQuoteCommand) Origin() kernel.Address {
	return c.origin
}

// Destination returns the delivery address.
func (c CreateQuoteCommand) Destination() kernel.Address {
	return c.destination
}

// ServiceType returns the requested transport mode.
func (c CreateQuoteCommand) ServiceType() kernel.ServiceType {
	return c.serviceType
}

// Items returns the cargo to be quoted.
func (c CreateQuoteCommand) Items() []cargo.Item {
	return c.items
}

// Discounts returns the discounts to apply, in order.
func (c CreateQuoteCommand) Discounts() []billing.Discount {
	return c.discounts
}

func (c *CreateQuoteCommand) setQuoteID(quoteID kernel.UUID) error {
	if err := quoteID.Validate(); err != nil {
		return err
	}

	c.quoteID = quoteID
	return nil
}

func (c *CreateQuoteCommand) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}

	c.origin = origin
	return nil
}

func (c *CreateQuoteCommand) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}

	c.destination = destination
	return nil
}

func (c *CreateQuoteCommand) setServiceType(serviceType kernel.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}

	c.serviceType = serviceType
	return nil
}

func (c *CreateQuoteCommand) setItems(items []cargo.Item) error {
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

func (c *CreateQuoteCommand) setDiscounts(discounts []billing.Discount) error {
	for _, discount := range discounts {
		if err := discount.Validate(); err != nil {
			return err
		}
	}

	c.discounts = discounts
	return nil
}
