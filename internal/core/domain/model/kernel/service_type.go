package kernel

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// ServiceType represents the transport mode of a quote or shipment.
// The pricing engine selects per-kilogram and per-cubic-meter rates by
// service type.
type ServiceType int

const (
	// ServiceTypeUnknown represents an invalid or undefined service type.
	ServiceTypeUnknown ServiceType = iota

	// ServiceTypeAir is air freight.
	ServiceTypeAir

	// ServiceTypeSea is ocean freight.
	ServiceTypeSea

	// ServiceTypeLand is road or rail freight.
	ServiceTypeLand

	// ServiceTypeMultimodal combines several transport modes on one route.
	ServiceTypeMultimodal
)

func getServiceTypeStrings() map[ServiceType]string {
	return map[ServiceType]string{
		ServiceTypeUnknown:    "unknown",
		ServiceTypeAir:        "air",
		ServiceTypeSea:        "sea",
		ServiceTypeLand:       "land",
		ServiceTypeMultimodal: "multimodal",
	}
}

func getValidServiceTypeStrings() map[ServiceType]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[ServiceType]string{
		ServiceTypeAir:        "air",
		ServiceTypeSea:        "sea",
		ServiceTypeLand:       "land",
		ServiceTypeMultimodal: "multimodal",
	}
}

// ServiceTypeFromString parses a service type from its wire representation.
// Returns an error for unrecognized values.
func ServiceTypeFromString(s string) (ServiceType, error) {
	for serviceType, str := range getValidServiceTypeStrings() {
		if str == s {
			return serviceType, nil
		}
	}
	return ServiceTypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"serviceType", fmt.Errorf("%q is not a valid service type", s))
}

// Validate checks if the ServiceType value is valid.
// Valid types are: air, sea, land, multimodal.
func (s ServiceType) Validate() error {
	if _, ok := getValidServiceTypeStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"serviceType", fmt.Errorf("%d is not a valid service type", s))
	}
	return nil
}

// String returns the wire name of the service type.
// Implements fmt.Stringer and is safe on invalid values.
func (s ServiceType) String() string {
	if str, ok := getServiceTypeStrings()[s]; ok {
		return str
	}
	return "unknown"
}
