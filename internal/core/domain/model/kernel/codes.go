package kernel

import (
	"regexp"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// Business identifier formats. Codes are assigned once at creation and are
// globally unique within their kind; the persistence layer enforces
// uniqueness as the final authority.
const (
	// QuoteCodePrefix starts every quote code.
	QuoteCodePrefix = "QUO"
	// QuoteCodeDigits is the width of the numeric quote code suffix.
	QuoteCodeDigits = 8

	// TrackingCodePrefix starts every shipment tracking code.
	TrackingCodePrefix = "VIP"
	// TrackingCodeDigits is the width of the numeric tracking code suffix.
	TrackingCodeDigits = 10
)

var (
	quoteCodePattern    = regexp.MustCompile(`^QUO[0-9]{8}$`)
	trackingCodePattern = regexp.MustCompile(`^VIP[0-9]{10}$`)
)

// ErrQuoteCodeIsNotConstructed is returned when using a zero-value QuoteCode.
var ErrQuoteCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"quote code must be created via NewQuoteCode constructor")

// ErrTrackingCodeIsNotConstructed is returned when using a zero-value TrackingCode.
var ErrTrackingCodeIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking code must be created via NewTrackingCode constructor")

// QuoteCode is the human-readable unique identifier of a quote, in the format
// QUO followed by exactly eight digits (e.g. QUO04518290). The format is
// validated before acceptance; lowercase prefixes and wrong widths are
// rejected.
type QuoteCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewQuoteCode validates and wraps a quote code string.
func NewQuoteCode(value string) (QuoteCode, error) {
	if !quoteCodePattern.MatchString(value) {
		return QuoteCode{}, errs.NewValueIsInvalidError("quoteCode")
	}

	return QuoteCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the code was created through its constructor.
func (c QuoteCode) Validate() error {
	return c.guard.Validate(ErrQuoteCodeIsNotConstructed)
}

// String returns the code text, e.g. "QUO04518290".
func (c QuoteCode) String() string {
	return c.value
}

// IsEqual compares two quote codes by value.
func (c QuoteCode) IsEqual(other QuoteCode) bool {
	return c.value == other.value
}

// TrackingCode is the human-readable unique identifier of a shipment, in the
// format VIP followed by exactly ten digits (e.g. VIP0045182903).
type TrackingCode struct {
	value string
	guard guard.ConstructorGuard
}

// NewTrackingCode validates and wraps a tracking code string.
func NewTrackingCode(value string) (TrackingCode, error) {
	if !trackingCodePattern.MatchString(value) {
		return TrackingCode{}, errs.NewValueIsInvalidError("trackingCode")
	}

	return TrackingCode{value: value, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks that the code was created through its constructor.
func (c TrackingCode) Validate() error {
	return c.guard.Validate(ErrTrackingCodeIsNotConstructed)
}

// String returns the code text, e.g. "VIP0045182903".
func (c TrackingCode) String() string {
	return c.value
}

// IsEqual compares two tracking codes by value.
func (c TrackingCode) IsEqual(other TrackingCode) bool {
	return c.value == other.value
}
