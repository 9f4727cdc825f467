package shipment

import (
	"errors"
	"time"

	"shipping/internal/core/domain/model/billing"
	"shipping/internal/core/domain/model/cargo"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through NewShipment or RestoreShipment.
	ErrShipmentIsNotConstructed = errors.New(
		"Shipment must be created via NewShipment or RestoreShipment constructor")
)

// Shipment is the aggregate root for a booked movement of goods.
//
// Invariants:
//   - The tracking code is assigned once at creation and never changes.
//   - Total weight, volume, and declared value are derived from the current
//     item list, never stored.
//   - Milestones and route breadcrumbs are append-only.
//   - Terminal statuses (delivered, cancelled, returned) absorb: no further
//     transitions or cargo mutations are accepted.
type Shipment struct {
	id          kernel.UUID
	code        kernel.TrackingCode
	status      Status
	origin      kernel.Address
	destination kernel.Address
	serviceType kernel.ServiceType
	items       []cargo.Item
	pricing     billing.Pricing

	// timeline
	requestedPickupAt   *time.Time
	actualPickupAt      *time.Time
	estimatedDeliveryAt *time.Time
	actualDeliveryAt    *time.Time
	milestones          []Milestone

	// tracking
	currentLocation    *Breadcrumb
	route              []Breadcrumb
	estimatedArrivalAt *time.Time

	insight Insight

	isConstructed bool
}

// NewShipment creates a Shipment in quote_requested status.
// Pricing and risk insight are attached separately once computed.
func NewShipment(
	id kernel.UUID,
	code kernel.TrackingCode,
	origin kernel.Address,
	destination kernel.Address,
	serviceType kernel.ServiceType,
	items []cargo.Item,
	requestedPickupAt *time.Time,
	estimatedDeliveryAt *time.Time,
) (*Shipment, error) {
	shipment := &Shipment{
		status:              StatusQuoteRequested,
		requestedPickupAt:   requestedPickupAt,
		estimatedDeliveryAt: estimatedDeliveryAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setCode(code),
		shipment.setOrigin(origin),
		shipment.setDestination(destination),
		shipment.setServiceType(serviceType),
		shipment.setItems(items),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RestoreShipmentParams carries the persisted state needed to reconstruct a
// Shipment from storage.
type RestoreShipmentParams struct {
	ID          kernel.UUID
	Code        kernel.TrackingCode
	Status      Status
	Origin      kernel.Address
	Destination kernel.Address
	ServiceType kernel.ServiceType
	Items       []cargo.Item

	// Pricing and Insight are nil for shipments persisted before quoting
	// completed.
	Pricing *billing.Pricing
	Insight *Insight

	RequestedPickupAt   *time.Time
	ActualPickupAt      *time.Time
	EstimatedDeliveryAt *time.Time
	ActualDeliveryAt    *time.Time
	Milestones          []Milestone

	CurrentLocation    *Breadcrumb
	Route              []Breadcrumb
	EstimatedArrivalAt *time.Time
}

// RestoreShipment reconstructs a Shipment from persistence. Status and
// timeline are taken as stored; value objects are still validated.
func RestoreShipment(params RestoreShipmentParams) (*Shipment, error) {
	shipment := &Shipment{
		requestedPickupAt:   params.RequestedPickupAt,
		actualPickupAt:      params.ActualPickupAt,
		estimatedDeliveryAt: params.EstimatedDeliveryAt,
		actualDeliveryAt:    params.ActualDeliveryAt,
		estimatedArrivalAt:  params.EstimatedArrivalAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		shipment.setID(params.ID),
		shipment.setCode(params.Code),
		shipment.setStatus(params.Status),
		shipment.setOrigin(params.Origin),
		shipment.setDestination(params.Destination),
		shipment.setServiceType(params.ServiceType),
		shipment.setItems(params.Items),
		shipment.setOptionalPricing(params.Pricing),
		shipment.setOptionalInsight(params.Insight),
		shipment.setMilestones(params.Milestones),
		shipment.setRoute(params.Route, params.CurrentLocation),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// Validate ensures the Shipment was created through a constructor.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the surrogate identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Code returns the immutable tracking code.
func (s *Shipment) Code() kernel.TrackingCode {
	return s.code
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// Origin returns the pickup address.
func (s *Shipment) Origin() kernel.Address {
	return s.origin
}

// Destination returns the delivery address.
func (s *Shipment) Destination() kernel.Address {
	return s.destination
}

// ServiceType returns the transport mode.
func (s *Shipment) ServiceType() kernel.ServiceType {
	return s.serviceType
}

// Items returns a copy of the ordered item list.
func (s *Shipment) Items() []cargo.Item {
	items := make([]cargo.Item, len(s.items))
	copy(items, s.items)
	return items
}

// Pricing returns the attached pricing breakdown.
func (s *Shipment) Pricing() billing.Pricing {
	return s.pricing
}

// RequestedPickupAt returns when the customer asked for pickup, if set.
func (s *Shipment) RequestedPickupAt() *time.Time {
	return s.requestedPickupAt
}

// ActualPickupAt returns when the carrier collected the goods, if recorded.
func (s *Shipment) ActualPickupAt() *time.Time {
	return s.actualPickupAt
}

// EstimatedDeliveryAt returns the promised delivery estimate, if set.
func (s *Shipment) EstimatedDeliveryAt() *time.Time {
	return s.estimatedDeliveryAt
}

// ActualDeliveryAt returns when delivery was recorded, if at all.
func (s *Shipment) ActualDeliveryAt() *time.Time {
	return s.actualDeliveryAt
}

// Milestones returns a copy of the append-only timeline.
func (s *Shipment) Milestones() []Milestone {
	milestones := make([]Milestone, len(s.milestones))
	copy(milestones, s.milestones)
	return milestones
}

// CurrentLocation returns the latest known position, or nil before the first
// tracking update.
func (s *Shipment) CurrentLocation() *Breadcrumb {
	return s.currentLocation
}

// Route returns a copy of the ordered breadcrumb history.
func (s *Shipment) Route() []Breadcrumb {
	route := make([]Breadcrumb, len(s.route))
	copy(route, s.route)
	return route
}

// EstimatedArrivalAt returns the tracking-level arrival estimate, if set.
func (s *Shipment) EstimatedArrivalAt() *time.Time {
	return s.estimatedArrivalAt
}

// Insight returns the attached risk assessment.
// Zero until SetInsight is called.
func (s *Shipment) Insight() Insight {
	return s.insight
}

// TotalWeightKg returns the derived total weight of all items in kilograms.
func (s *Shipment) TotalWeightKg() float64 {
	return cargo.TotalWeightKg(s.items)
}

// TotalVolumeM3 returns the derived total volume of all items in cubic meters.
func (s *Shipment) TotalVolumeM3() float64 {
	return cargo.TotalVolumeM3(s.items)
}

// TotalValue returns the derived total declared value of all items.
func (s *Shipment) TotalValue() float64 {
	return cargo.TotalValue(s.items)
}

// IsCrossBorder reports whether origin and destination countries differ.
func (s *Shipment) IsCrossBorder() bool {
	return s.origin.Country() != s.destination.Country()
}

// ChangeStatus transitions the shipment to the requested status.
// Terminal states reject all transitions. Moving to picked_up records the
// actual pickup time and moving to delivered records the actual delivery
// time, each only once.
func (s *Shipment) ChangeStatus(next Status, now time.Time) error {
	newStatus, err := s.status.TransitionTo(next)
	if err != nil {
		return err
	}

	s.status = newStatus

	if newStatus == StatusPickedUp && s.actualPickupAt == nil {
		pickupAt := now
		s.actualPickupAt = &pickupAt
	}
	if newStatus == StatusDelivered && s.actualDeliveryAt == nil {
		deliveredAt := now
		s.actualDeliveryAt = &deliveredAt
	}

	return nil
}

// RecordLocation appends a breadcrumb to the route and overwrites the
// current location with the same data stamped at now. Both effects happen in
// one call so callers observe them atomically.
func (s *Shipment) RecordLocation(point kernel.GeoPoint, address string, recordedAt, now time.Time) error {
	breadcrumb := Breadcrumb{Point: point, Address: address, RecordedAt: recordedAt}
	if err := breadcrumb.Validate(); err != nil {
		return err
	}

	s.route = append(s.route, breadcrumb)
	s.currentLocation = &Breadcrumb{Point: point, Address: address, RecordedAt: now}
	return nil
}

// AddMilestone appends a timeline event stamped at now. Prior milestones are
// never removed or reordered.
func (s *Shipment) AddMilestone(event, location, description, status string, now time.Time) error {
	milestone := Milestone{
		Event:       event,
		Location:    location,
		Description: description,
		Status:      status,
		OccurredAt:  now,
	}
	if err := milestone.Validate(); err != nil {
		return err
	}

	s.milestones = append(s.milestones, milestone)
	return nil
}

// AddItem appends an item to the shipment. Rejected once the shipment is in
// a terminal status. The caller is responsible for recomputing pricing and
// risk afterwards.
func (s *Shipment) AddItem(item cargo.Item) error {
	if s.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("shipmentStatus",
			errors.New(s.status.String()+" shipment does not accept cargo changes"))
	}
	if err := item.Validate(); err != nil {
		return err
	}

	s.items = append(s.items, item)
	return nil
}

// SetPricing attaches a freshly computed pricing breakdown.
func (s *Shipment) SetPricing(pricing billing.Pricing) error {
	return s.setPricing(pricing)
}

// SetInsight replaces the risk assessment with a freshly computed one.
func (s *Shipment) SetInsight(insight Insight) error {
	return s.setInsight(insight)
}

// SetEstimatedArrival updates the tracking-level arrival estimate.
func (s *Shipment) SetEstimatedArrival(at time.Time) {
	s.estimatedArrivalAt = &at
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setCode(code kernel.TrackingCode) error {
	if err := code.Validate(); err != nil {
		return err
	}
	s.code = code
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setOrigin(origin kernel.Address) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *Shipment) setDestination(destination kernel.Address) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	s.destination = destination
	return nil
}

func (s *Shipment) setServiceType(serviceType kernel.ServiceType) error {
	if err := serviceType.Validate(); err != nil {
		return err
	}
	s.serviceType = serviceType
	return nil
}

func (s *Shipment) setItems(items []cargo.Item) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	s.items = make([]cargo.Item, len(items))
	copy(s.items, items)
	return nil
}

func (s *Shipment) setOptionalPricing(pricing *billing.Pricing) error {
	if pricing == nil {
		return nil
	}
	return s.setPricing(*pricing)
}

func (s *Shipment) setOptionalInsight(insight *Insight) error {
	if insight == nil {
		return nil
	}
	return s.setInsight(*insight)
}

func (s *Shipment) setPricing(pricing billing.Pricing) error {
	if err := pricing.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pricing", err)
	}
	s.pricing = pricing
	return nil
}

func (s *Shipment) setInsight(insight Insight) error {
	if err := insight.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("insight", err)
	}
	s.insight = insight
	return nil
}

func (s *Shipment) setMilestones(milestones []Milestone) error {
	for _, milestone := range milestones {
		if err := milestone.Validate(); err != nil {
			return err
		}
	}
	s.milestones = make([]Milestone, len(milestones))
	copy(s.milestones, milestones)
	return nil
}

func (s *Shipment) setRoute(route []Breadcrumb, currentLocation *Breadcrumb) error {
	for _, breadcrumb := range route {
		if err := breadcrumb.Validate(); err != nil {
			return err
		}
	}
	if currentLocation != nil {
		if err := currentLocation.Validate(); err != nil {
			return err
		}
	}

	s.route = make([]Breadcrumb, len(route))
	copy(s.route, route)
	s.currentLocation = currentLocation
	return nil
}
