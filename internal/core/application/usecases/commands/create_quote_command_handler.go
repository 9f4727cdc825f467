package commands

import (
	"context"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
)

// CreateQuoteCommandHandler handles the business logic for quote creation.
// Issues a unique quote code, prices the cargo, and persists the new quote in
// draft status.
//
// Example:
//
//	handler := NewCreateQuoteCommandHandler(uowFactory, services.NewCodeGenerator(nil), ports.SystemClock{})
//	cmd, _ := NewCreateQuoteCommand(kernel.NewUUID(), origin, destination, serviceType, items, nil)
//
//	code, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("quote creation failed: %w", err)
//	}
//	// Quote is now created and identified by code
type CreateQuoteCommandHandler struct {
	uowFactory QuoteUoWFactory
	generator  services.CodeGenerator
	clock      ports.Clock
}

// NewCreateQuoteCommandHandler creates a handler for quote creation operations.
// Requires a QuoteUoWFactory for transactional persistence, a code generator,
// and a clock for the expiration timestamp.
func NewCreateQuoteCommandHandler(
	uowFactory QuoteUoWFactory,
	generator services.CodeGenerator,
	clock ports.Clock,
) CreateQuoteCommandHandler {
	return CreateQuoteCommandHandler{
		uowFactory: uowFactory,
		generator:  generator,
		clock:      clock,
	}
}

// Handle processes the quote creation command and returns the issued code.
// Draws a collision-checked code, computes the pricing breakdown, and stores
// the quote within a transaction. The repository's uniqueness constraint
// remains the final authority on code uniqueness.
func (h CreateQuoteCommandHandler) Handle(ctx context.Context, cmd CreateQuoteCommand) (kernel.QuoteCode, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.QuoteCode{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.QuoteCode{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	quoteRepo := uow.QuoteRepository()

	code, err := h.generator.GenerateQuoteCode(ctx,
		services.CodeExistenceCheckerFunc(quoteRepo.ExistsByCode))
	if err != nil {
		return kernel.QuoteCode{}, err
	}

	newQuote, err := quote.NewQuote(
		cmd.QuoteID(),
		code,
		cmd.Origin(),
		cmd.Destination(),
		cmd.ServiceType(),
		cmd.Items(),
		cmd.Discounts(),
		h.clock.Now(),
	)
	if err != nil {
		return kernel.QuoteCode{}, err
	}

	pricing, err := services.NewPricingEngine().Calculate(
		newQuote.ServiceType(),
		newQuote.Origin().Point(),
		newQuote.Destination().Point(),
		newQuote.Items(),
		newQuote.Discounts(),
	)
	if err != nil {
		return kernel.QuoteCode{}, err
	}
	if err = newQuote.SetPricing(pricing); err != nil {
		return kernel.QuoteCode{}, err
	}

	if err = quoteRepo.Add(ctx, newQuote); err != nil {
		return kernel.QuoteCode{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.QuoteCode{}, err
	}

	return code, nil
}
