package commands

import (
	"context"

	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// AddQuoteItemCommandHandler appends cargo to a quote and recomputes its
// pricing breakdown. Expiration is evaluated first, so stale quotes reject
// the change instead of silently re-pricing.
type AddQuoteItemCommandHandler struct {
	uowFactory QuoteUoWFactory
	clock      ports.Clock
}

// NewAddQuoteItemCommandHandler creates a handler for quote item additions.
func NewAddQuoteItemCommandHandler(uowFactory QuoteUoWFactory, clock ports.Clock) AddQuoteItemCommandHandler {
	return AddQuoteItemCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the item addition command.
// Loads the quote, evaluates expiration, appends the item, recomputes pricing
// from the full item list, and persists the result in one transaction.
func (h AddQuoteItemCommandHandler) Handle(ctx context.Context, cmd AddQuoteItemCommand) error {
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

	aggregate.EvaluateExpiration(h.clock.Now())

	if err = aggregate.AddItem(cmd.Item()); err != nil {
		return err
	}

	pricing, err := services.NewPricingEngine().Calculate(
		aggregate.ServiceType(),
		aggregate.Origin().Point(),
		aggregate.Destination().Point(),
		aggregate.Items(),
		aggregate.Discounts(),
	)
	if err != nil {
		return err
	}
	if err = aggregate.SetPricing(pricing); err != nil {
		return err
	}

	if err = quoteRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
