package commands

import (
	"errors"

	"shipping/internal/pkg/guard"
)

var ErrExpireQuotesCommandIsNotConstructed = errors.New(
	"ExpireQuotesCommand must be created via NewExpireQuotesCommand constructor",
)

// ExpireQuotesCommand represents a request to sweep quotes whose expiration
// date has passed. Carries no parameters; the sweep moment comes from the
// handler's clock.
type ExpireQuotesCommand struct {
	guard guard.ConstructorGuard
}

// NewExpireQuotesCommand creates a command to expire stale quotes.
func NewExpireQuotesCommand() ExpireQuotesCommand {
	return ExpireQuotesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c ExpireQuotesCommand) Validate() error {
	return c.guard.Validate(ErrExpireQuotesCommandIsNotConstructed)
}
