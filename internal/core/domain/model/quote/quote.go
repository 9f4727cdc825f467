package quote

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/billing"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ValidityPeriod is the default lifetime of a quote from creation to
// expiration.
const ValidityPeriod = 30 * 24 * time.Hour

var (
	// ErrQuoteIsNotConstructed is returned when a Quote was not created
	// through NewQuote or RestoreQuote.
	ErrQuoteIsNotConstructed = errors.New("Quote must be created via NewQuote or RestoreQuote constructor")

	// ErrQuoteIsExpired is returned when mutating a quote that has passed
	// its expiration date.
	ErrQuoteIsExpired = errors.New("quote is expired")
)

// Quote is the aggregate root for a shipping offer.
//
// Invariants:
//   - The business code is assigned once at creation and never changes.
//   - Total weight, volume, and declared value are derived from the current
//     item list, never stored.
//   - Once the expiration date passes, the next evaluation reclassifies the
//     quote to StatusExpired and marks it invalid; the reclassification is
//     idempotent and further mutations are rejected.
type Quote struct {
	id          kernel.UUID
	code        kernel.QuoteCode
	status      Status
	origin      kernel.Address
	destination kernel.Address
	serviceType kernel.ServiceType
	items       []cargo.Item
	discounts   []billing.Discount
	pricing     billing.Pricing
	expiresAt   time.Time
	isValid     bool

	isConstructed bool
}

// NewQuote creates a Quote in draft status expiring ValidityPeriod after now.
// The pricing breakdown is attached separately via SetPricing once computed.
func NewQuote(
	id kernel.UUID,
	code kernel.QuoteCode,
	origin kernel.Address,
	destination kernel.Address,
	serviceType kernel.ServiceType,
	items []cargo.Item,
	discounts []billing.Discount,
	now time.Time,
) (*Quote, error) {
	quote := &Quote{
		status:        StatusDraft,
		expiresAt:     now.Add(ValidityPeriod),
		isValid:       true,
		isConstructed: true,
	}

	if err := errors.Join(
		quote.setID(id),
		quote.setCode(code),
		quote.setOrigin(origin),
		quote.setDestination(destination),
		quote.setServiceType(serviceType),
		quote.setItems(items),
		quote.setDiscounts(discounts),
	); err != nil {
		return nil, err
	}

	return quote, nil
}

// RestoreQuote reconstructs a Quote from persistence. Status and validity are
// taken as stored; value objects are still validated.
func RestoreQuote(
	id kernel.UUID,
	code kernel.QuoteCode,
	status Status,
	origin kernel.Address,
	destination kernel.Address,
	serviceType kernel.ServiceType,
	items []cargo.Item,
	discounts []billing.Discount,
	pricing billing.Pricing,
	expiresAt time.Time,
	isValid bool,
) (*Quote, error) {
	quote := &Quote{
		expiresAt:     expiresAt,
		isValid:       isValid,
		isConstructed: true,
	}

	if err := errors.Join(
		quote.setID(id),
		quote.setCode(code),
		quote.setStatus(status),
		quote.setOrigin(origin),
		quote.setDestination(destination),
		quote.setServiceType(serviceType),
		quote.setItems(items),
		quote.setDiscounts(discounts),
		quote.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	return quote, nil
}

// Validate ensures the Quote was created through a constructor.
func (q *Quote) Validate() error {
	if q == nil || !q.isConstructed {
		return ErrQuoteIsNotConstructed
	}
	return nil
}

// IsEqual compares two quotes by their unique identifiers.
func (q *Quote) IsEqual(other *Quote) bool {
	return other != nil && q.id.IsEqual(other.id)
}

// ID returns the surrogate identifier.
func (q *Quote) ID() kernel.UUID {
	return q.id
}

// Code returns the immutable business code.
func (q *Quote) Code() kernel.QuoteCode {
	return q.code
}

// Status returns the current negotiation status.
func (q *Quote) Status() Status {
	return q.status
}

// Origin returns the pickup address.
func (q *Quote) Origin() kernel.Address {
	return q.origin
}

// Destination returns the delivery address.
func (q *Quote) Destination() kernel.Address {
	return q.destination
}

// ServiceType returns the transport mode being quoted.
func (q *Quote) ServiceType() kernel.ServiceType {
	return q.serviceType
}

// Items returns a copy of the ordered item list.
func (q *Quote) Items() []cargo.Item {
	items := make([]cargo.Item, len(q.items))
	copy(items, q.items)
	return items
}

// Discounts returns a copy of the ordered discount list.
func (q *Quote) Discounts() []billing.Discount {
	discounts := make([]billing.Discount, len(q.discounts))
	copy(discounts, q.discounts)
	return discounts
}

// Pricing returns the attached pricing breakdown.
// Zero until SetPricing is called.
func (q *Quote) Pricing() billing.Pricing {
	return q.pricing
}

// ExpiresAt returns the expiration timestamp.
func (q *Quote) ExpiresAt() time.Time {
	return q.expiresAt
}

// IsValid reports whether the quote is still actionable.
func (q *Quote) IsValid() bool {
	return q.isValid
}

// IsExpired reports whether now is past the expiration date.
// Pure function over the entity; the stored status may lag until the next
// EvaluateExpiration.
func (q *Quote) IsExpired(now time.Time) bool {
	return now.After(q.expiresAt)
}

// TotalWeightKg returns the derived total weight of all items in kilograms.
func (q *Quote) TotalWeightKg() float64 {
	return cargo.TotalWeightKg(q.items)
}

// TotalVolumeM3 returns the derived total volume of all items in cubic meters.
func (q *Quote) TotalVolumeM3() float64 {
	return cargo.TotalVolumeM3(q.items)
}

// TotalValue returns the derived total declared value of all items.
func (q *Quote) TotalValue() float64 {
	return cargo.TotalValue(q.items)
}

// EvaluateExpiration reclassifies an overdue quote to StatusExpired and marks
// it invalid. Returns true when the state changed. Re-evaluating an already
// expired quote is a no-op.
func (q *Quote) EvaluateExpiration(now time.Time) bool {
	if q.status == StatusExpired {
		return false
	}
	if !q.IsExpired(now) {
		return false
	}

	q.status = StatusExpired
	q.isValid = false
	return true
}

// AddItem appends an item to the quote. The caller is responsible for
// recomputing pricing afterwards.
func (q *Quote) AddItem(item cargo.Item) error {
	if q.status == StatusExpired {
		return ErrQuoteIsExpired
	}
	if err := item.Validate(); err != nil {
		return err
	}

	q.items = append(q.items, item)
	return nil
}

// AddDiscount appends a discount to the quote. The caller is responsible for
// recomputing pricing afterwards.
func (q *Quote) AddDiscount(discount billing.Discount) error {
	if q.status == StatusExpired {
		return ErrQuoteIsExpired
	}
	if err := discount.Validate(); err != nil {
		return err
	}

	q.discounts = append(q.discounts, discount)
	return nil
}

// SetPricing attaches a freshly computed pricing breakdown.
func (q *Quote) SetPricing(pricing billing.Pricing) error {
	return q.setPricing(pricing)
}

// ChangeStatus moves the quote to the requested status. Expired quotes reject
// all changes except the idempotent move to StatusExpired.
func (q *Quote) ChangeStatus(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	if q.status == StatusExpired {
		if next == StatusExpired {
			return nil
		}
		return ErrQuoteIsExpired
	}

	q.status = next
	return nil
}

func (q *Quote) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	q.id = id
	return nil
}

func (q *Quote) setCode(code kernel.QuoteCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	q.code = code
	return nil
}

func (q *Quote) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	q.status = status
	return nil
}

func (q *Quote) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	q.origin = origin
	return nil
}

func (q *Quote) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	q.destination = destination
	return nil
}

func (q *Quote) setServiceType(serviceType kernel.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	q.serviceType = serviceType
	return nil
}

func (q *Quote) setItems(items []cargo.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	q.items = make([]cargo.Item, len(items))
	copy(q.items, items)
	return nil
}

func (q *Quote) setDiscounts(discounts []billing.Discount) error {
	for _, discount := range discounts {
		if err := discount.Validate(); err != nil {
			return err
		}
	}
	q.discounts = make([]billing.Discount, len(discounts))
	copy(q.discounts, discounts)
	return nil
}

func (q *Quote) setPricing(pricing billing.Pricing) error {
	if err := pricing.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pricing", err)
	}
	q.pricing = pricing
	return nil
}
