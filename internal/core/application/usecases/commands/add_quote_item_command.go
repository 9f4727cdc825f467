package commands

import (
	"errors"

	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/guard"
)

var ErrAddQuoteItemCommandIsNotConstructed = errors.New(
	"AddQuoteItemCommand must be created via NewAddQuoteItemCommand constructor",
)

// AddQuoteItemCommand represents a request to append an item to an existing
// quote. The quote is re-priced as part of handling.
type AddQuoteItemCommand struct { //nolint:recvcheck //using for validation
	quoteCode kernel.QuoteCode
	item      cargo.Item

	guard guard.ConstructorGuard
}

// NewAddQuoteItemCommand creates a command to append cargo to a quote.
func NewAddQuoteItemCommand(quoteCode kernel.QuoteCode, item cargo.Item) (AddQuoteItemCommand, error) {
	itemCommand := AddQuoteItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemCommand.setQuoteCode(quoteCode),
		itemCommand.setItem(item),
	); err != nil {
		return AddQuoteItemCommand{}, err
	}

	return itemCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddQuoteItemCommand) Validate() error {
	return c.guard.Validate(ErrAddQuoteItemCommandIsNotConstructed)
}

// QuoteCode returns the code of the quote to modify.
func (c AddQuoteItemCommand) QuoteCode() kernel.QuoteCode {
	return c.quoteCode
}

// Item returns the item to append.
func (c AddQuoteItemCommand) Item() cargo.Item {
	return c.item
}

func (c *AddQuoteItemCommand) setQuoteCode(quoteCode kernel.QuoteCode) error {
	if err := quoteCode.Validate(); err != nil {
		return err
	}

	c.quoteCode = quoteCode
	return nil
}

func (c *AddQuoteItemCommand) setItem(item cargo.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.item = item
	return nil
}
