package quoterepo

import (
	"context"
	"errors"
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/quote"
	"shipping/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormQuoteRepository implements QuoteRepository using GORM.
type GormQuoteRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormQuoteRepository creates a new GORM quote repository.
func NewGormQuoteRepository(db *gorm.DB, tracker aggregateTracker) *GormQuoteRepository {
	return &GormQuoteRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new quote to the database.
func (r *GormQuoteRepository) Add(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing quote to the database.
func (r *GormQuoteRepository) Update(ctx context.Context, aggregate *quote.Quote) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	// Select("*") forces zero-valued columns (e.g. is_valid=false) to be written.
	result := r.db.WithContext(ctx).Model(&QuoteDTO{}).Where("id = ?", dto.ID).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a quote by ID.
func (r *GormQuoteRepository) Get(ctx context.Context, id kernel.UUID) (*quote.Quote, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a quote by its human-readable code.
func (r *GormQuoteRepository) GetByCode(ctx context.Context, code kernel.QuoteCode) (*quote.Quote, error) {
	if err := code.Validate(); err != nil {
		return nil, err
	}

	var dto QuoteDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code.String()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("quote", code.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByCode reports whether any quote carries the given code.
func (r *GormQuoteRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&QuoteDTO{}).Where("code = ?", code).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetAllExpiring retrieves non-expired quotes whose expiration timestamp has
// passed as of now.
func (r *GormQuoteRepository) GetAllExpiring(ctx context.Context, now time.Time) ([]*quote.Quote, error) {
	var dtos []QuoteDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "expires_at < ? AND status != ?", now, quote.StatusExpired.String()).Error
	if err != nil {
		return nil, err
	}

	quotes := make([]*quote.Quote, 0, len(dtos))
	for _, dto := range dtos {
		q, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}

	return quotes, nil
}
