package shipment

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the lifecycle state of a shipment.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusQuoteRequested is the initial state of a new shipment.
	StatusQuoteRequested

	// StatusQuoteProvided indicates a price was quoted to the customer.
	StatusQuoteProvided

	// StatusBooked indicates the customer confirmed the shipment.
	StatusBooked

	// StatusPickupScheduled indicates pickup has been arranged.
	StatusPickupScheduled

	// StatusPickedUp indicates the carrier collected the goods.
	StatusPickedUp

	// StatusInTransit indicates the goods are moving between hubs.
	StatusInTransit

	// StatusCustomsClearance indicates the goods are held at customs.
	StatusCustomsClearance

	// StatusOutForDelivery indicates final-mile delivery is underway.
	StatusOutForDelivery

	// StatusDelivered indicates the goods reached the consignee. Terminal.
	StatusDelivered

	// StatusException indicates a handling problem needing intervention.
	// Reachable from any non-terminal state; not itself terminal.
	StatusException

	// StatusCancelled indicates the shipment was called off. Terminal.
	StatusCancelled

	// StatusReturned indicates the goods went back to the shipper. Terminal.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:          "unknown",
		StatusQuoteRequested:   "quote_requested",
		StatusQuoteProvided:    "quote_provided",
		StatusBooked:           "booked",
		StatusPickupScheduled:  "pickup_scheduled",
		StatusPickedUp:         "picked_up",
		StatusInTransit:        "in_transit",
		StatusCustomsClearance: "customs_clearance",
		StatusOutForDelivery:   "out_for_delivery",
		StatusDelivered:        "delivered",
		StatusException:        "exception",
		StatusCancelled:        "cancelled",
		StatusReturned:         "returned",
	}
}

// StatusFromString parses a status from its wire name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != StatusUnknown && str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
		"shipmentStatus", fmt.Errorf("%q is not a valid shipment status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"shipmentStatus", fmt.Errorf("%d is not a valid shipment status", s))
	}
	return nil
}

// String returns the wire name of the status.
// Implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}

// TransitionTo validates a move from this status to next.
// The only enforced rule is that terminal states are absorbing; forward-only
// ordering is intentionally not enforced.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return StatusUnknown, err
	}

	if s.IsTerminal() {
		return StatusUnknown, errs.NewValueIsInvalidErrorWithCause(
			"shipmentStatus",
			fmt.Errorf("%s is terminal and cannot transition to %s", s, next),
		)
	}

	return next, nil
}
