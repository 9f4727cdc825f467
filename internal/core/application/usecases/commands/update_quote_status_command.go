package commands

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/pkg/guard"
)

var ErrUpdateQuoteStatusCommandIsNotConstructed = errors.New(
	"UpdateQuoteStatusCommand must be created via NewUpdateQuoteStatusCommand constructor",
)

// UpdateQuoteStatusCommand represents a request to move a quote to a new
// negotiation status.
type UpdateQuoteStatusCommand struct { //nolint:recvcheck //using for validation
	quoteCode kernel.QuoteCode
	status    quote.Status

	guard guard.ConstructorGuard
}

// NewUpdateQuoteStatusCommand creates a command to change a quote's status.
func NewUpdateQuoteStatusCommand(quoteCode kernel.QuoteCode, status quote.Status) (UpdateQuoteStatusCommand, error) {
	statusCommand := UpdateQuoteStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setQuoteCode(quoteCode),
		statusCommand.setStatus(status),
	); err != nil {
		return UpdateQuoteStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateQuoteStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateQuoteStatusCommandIsNotConstructed)
}

// QuoteCode returns the code of the quote to modify.
func (c UpdateQuoteStatusCommand) QuoteCode() kernel.QuoteCode {
	return c.quoteCode
}

// Status returns the requested status.
func (c UpdateQuoteStatusCommand) Status() quote.Status {
	return c.status
}

func (c *UpdateQuoteStatusCommand) setQuoteCode(quoteCode kernel.QuoteCode) error {
	if err := quoteCode.Validate(); err != nil {
		return err
	}

	c.quoteCode = quoteCode
	return nil
}

func (c *UpdateQuoteStatusCommand) setStatus(status quote.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.status = status
	return nil
}
