package commands

import (
	"context"

	"shipping/internal/core/ports"
)

// ExpireQuotesCommandHandler reclassifies stale quotes to expired status.
// Run periodically by the background job so quotes flip even when nobody
// reads them.
type ExpireQuotesCommandHandler struct {
	uowFactory QuoteUoWFactory
	clock      ports.Clock
}

// NewExpireQuotesCommandHandler creates a handler for the expiration sweep.
func NewExpireQuotesCommandHandler(uowFactory QuoteUoWFactory, clock ports.Clock) ExpireQuotesCommandHandler {
	return ExpireQuotesCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the expiration sweep.
// Loads all quotes past their expiration date, evaluates each, and persists
// only the ones that actually flipped. Re-evaluating an already expired
// quote is a no-op.
func (h ExpireQuotesCommandHandler) Handle(ctx context.Context, cmd ExpireQuotesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	now := h.clock.Now()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()

	quotes, err := quoteRepo.GetAllExpiring(ctx, now)
	if err != nil {
		return err
	}

	for _, aggregate := range quotes {
		if !aggregate.EvaluateExpiration(now) {
			continue
		}
		if err = quoteRepo.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
