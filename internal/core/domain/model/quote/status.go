package quote

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Status represents the negotiation state of a quote.
//
// Statuses do not follow a strict progression — sales flows jump between
// sent, viewed, and negotiating freely. The one enforced rule is expiration:
// once a quote passes its expiration date it is reclassified to Expired and
// no further status changes are accepted.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusDraft is the initial status of a freshly created quote.
	StatusDraft

	// StatusSent indicates the quote was delivered to the customer.
	StatusSent

	// StatusViewed indicates the customer opened the quote.
	StatusViewed

	// StatusAccepted indicates the customer accepted the offer.
	StatusAccepted

	// StatusRejected indicates the customer declined the offer.
	StatusRejected

	// StatusExpired indicates the quote passed its expiration date.
	StatusExpired

	// StatusNegotiating indicates terms are being renegotiated.
	StatusNegotiating
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusDraft:       "draft",
		StatusSent:        "sent",
		StatusViewed:      "viewed",
		StatusAccepted:    "accepted",
		StatusRejected:    "rejected",
		StatusExpired:     "expired",
		StatusNegotiating: "negotiating",
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
		"quoteStatus", fmt.Errorf("%q is not a valid quote status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"quoteStatus", fmt.Errorf("%d is not a valid quote status", s))
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
