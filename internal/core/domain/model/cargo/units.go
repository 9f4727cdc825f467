package cargo

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// DimensionUnit is the length unit of item dimensions.
type DimensionUnit int

const (
	// DimensionUnitUnknown represents an invalid or undefined unit.
	DimensionUnitUnknown DimensionUnit = iota

	// DimensionUnitCentimeters measures dimensions in centimeters.
	DimensionUnitCentimeters

	// DimensionUnitMeters measures dimensions in meters.
	DimensionUnitMeters

	// DimensionUnitInches measures dimensions in inches.
	DimensionUnitInches
)

func getDimensionUnits() map[DimensionUnit]struct {
	name     string
	toMeters float64
} {
	return map[DimensionUnit]struct {
		name     string
		toMeters float64
	}{
		DimensionUnitCentimeters: {"cm", 0.01},
		DimensionUnitMeters:      {"m", 1},
		DimensionUnitInches:      {"in", 0.0254},
	}
}

// DimensionUnitFromString parses a dimension unit from its wire name.
func DimensionUnitFromString(s string) (DimensionUnit, error) {
	for unit, def := range getDimensionUnits() {
		if def.name == s {
			return unit, nil
		}
	}
	return DimensionUnitUnknown, errs.NewValueIsInvalidErrorWithCause(
		"dimensionUnit", fmt.Errorf("%q is not a valid dimension unit", s))
}

// Validate checks the unit is a recognized value.
func (u DimensionUnit) Validate() error {
	if _, ok := getDimensionUnits()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"dimensionUnit", fmt.Errorf("%d is not a valid dimension unit", u))
	}
	return nil
}

// String returns the wire name of the unit.
func (u DimensionUnit) String() string {
	if def, ok := getDimensionUnits()[u]; ok {
		return def.name
	}
	return "unknown"
}

// toMeters returns the factor converting this unit to meters.
func (u DimensionUnit) toMeters() float64 {
	return getDimensionUnits()[u].toMeters
}

// WeightUnit is the mass unit of item weights.
type WeightUnit int

const (
	// WeightUnitUnknown represents an invalid or undefined unit.
	WeightUnitUnknown WeightUnit = iota

	// WeightUnitKilograms measures weight in kilograms.
	WeightUnitKilograms

	// WeightUnitPounds measures weight in pounds.
	WeightUnitPounds

	// WeightUnitGrams measures weight in grams.
	WeightUnitGrams
)

func getWeightUnits() map[WeightUnit]struct {
	name        string
	toKilograms float64
} {
	return map[WeightUnit]struct {
		name        string
		toKilograms float64
	}{
		WeightUnitKilograms: {"kg", 1},
		WeightUnitPounds:    {"lb", 0.453592},
		WeightUnitGrams:     {"g", 0.001},
	}
}

// WeightUnitFromString parses a weight unit from its wire name.
func WeightUnitFromString(s string) (WeightUnit, error) {
	for unit, def := range getWeightUnits() {
		if def.name == s {
			return unit, nil
		}
	}
	return WeightUnitUnknown, errs.NewValueIsInvalidErrorWithCause(
		"weightUnit", fmt.Errorf("%q is not a valid weight unit", s))
}

// Validate checks the unit is a recognized value.
func (u WeightUnit) Validate() error {
	if _, ok := getWeightUnits()[u]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"weightUnit", fmt.Errorf("%d is not a valid weight unit", u))
	}
	return nil
}

// String returns the wire name of the unit.
func (u WeightUnit) String() string {
	if def, ok := getWeightUnits()[u]; ok {
		return def.name
	}
	return "unknown"
}

// toKilograms returns the factor converting this unit to kilograms.
func (u WeightUnit) toKilograms() float64 {
	return getWeightUnits()[u].toKilograms
}
