package ports

import (
	"context"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
)

// QuoteRepository defines the persistence contract for quote aggregates.
// Provides methods for storing, retrieving, and querying quotes by their
// human-readable code and expiration state.
type QuoteRepository interface {
	// Add persists a new quote aggregate to storage.
	// The quote must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *quote.Quote) error

	// Update persists changes to an existing quote aggregate.
	// The quote must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *quote.Quote) error

	// Get retrieves a quote aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error)

	// GetByCode retrieves a quote aggregate by its human-readable code.
	GetByCode(ctx context.Context, code kernel.QuoteCode) (*quote.Quote, error)

	// ExistsByCode reports whether any quote carries the given code.
	// Used by the code generator as a best-effort collision pre-check.
	ExistsByCode(ctx context.Context, code string) (bool, error)

	// GetAllExpiring retrieves non-expired quotes whose expiration
	// timestamp has passed as of the given moment.
	// Used by the expiration job to sweep stale quotes.
	GetAllExpiring(ctx context.Context, now time.Time) ([]*quote.Quote, error)
}
