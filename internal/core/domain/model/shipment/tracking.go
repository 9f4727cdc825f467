package shipment

import (
	"time"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// Breadcrumb is a single timestamped location sample on a shipment's route.
// Breadcrumbs are append-only; the most recent one also becomes the current
// location with a fresh timestamp.
type Breadcrumb struct {
	Point      kernel.GeoPoint
	Address    string
	RecordedAt time.Time
}

// Validate checks the breadcrumb carries a constructed point and a timestamp.
func (b Breadcrumb) Validate() error {
	if err := b.Point.Validate(); err != nil {
		return err
	}
	if b.RecordedAt.IsZero() {
		return errs.NewValueIsRequiredError("recordedAt")
	}
	return nil
}

// Milestone is a discrete lifecycle event on a shipment's timeline,
// independent of location breadcrumbs. Milestones are append-only and never
// reordered.
type Milestone struct {
	Event       string
	Location    string
	Description string
	Status      string
	OccurredAt  time.Time
}

// Validate checks the milestone names an event and carries a timestamp.
func (m Milestone) Validate() error {
	if m.Event == "" {
		return errs.NewValueIsRequiredError("event")
	}
	if m.OccurredAt.IsZero() {
		return errs.NewValueIsRequiredError("occurredAt")
	}
	return nil
}
