package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// UpdateQuoteStatusCommandHandler moves a quote through its negotiation
// lifecycle. Expiration is evaluated before the change, so a stale quote
// flips to expired and rejects the requested status instead.
type UpdateQuoteStatusCommandHandler struct {
	uowFactory QuoteUoWFactory
	clock      ports.Clock
}

// NewUpdateQuoteStatusCommandHandler creates a handler for quote status changes.
func NewUpdateQuoteStatusCommandHandler(uowFactory QuoteUoWFactory, clock ports.Clock) UpdateQuoteStatusCommandHandler {
	return UpdateQuoteStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the status change command.
// The expiration flip, when it happens, is persisted even if the requested
// status is then rejected, keeping storage consistent with what the caller
// observed.
func (h UpdateQuoteStatusCommandHandler) Handle(ctx context.Context, cmd UpdateQuoteStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()

	aggregate, err := quoteRepo.GetByCode(ctx, cmd.QuoteCode())
	if err != nil {
		return err
	}

	expired := aggregate.EvaluateExpiration(h.clock.Now())

	changeErr := aggregate.ChangeStatus(cmd.Status())
	if changeErr != nil && !expired {
		return changeErr
	}

	if err = quoteRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return changeErr
}
