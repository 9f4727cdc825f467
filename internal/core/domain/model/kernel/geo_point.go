package kernel

import (
	"errors"
	"fmt"
	"math"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// EarthRadiusKm is the mean Earth radius used for great-circle distance.
const EarthRadiusKm = 6371.0

// Coordinate bounds in decimal degrees.
const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrGeoPointIsNotConstructed is returned when attempting to use an improperly
// initialized GeoPoint. Points must be created via NewGeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint represents a geographic coordinate in decimal degrees.
// GeoPoint is an immutable value object that guarantees latitude and
// longitude are always within valid bounds. The zero value is invalid;
// use NewGeoPoint to create instances.
//
// Example:
//
//	jerusalem, err := kernel.NewGeoPoint(31.7683, 35.2137)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(jerusalem) // Output: GeoPoint(31.7683,35.2137)
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with the given coordinates.
// Latitude must be within [-90, 90] and longitude within [-180, 180];
// an out-of-range value yields a ValueIsOutOfRangeError.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLatitude(latitude), point.setLongitude(longitude)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate checks that the GeoPoint was created through its constructor.
// Returns ErrGeoPointIsNotConstructed for zero-value instances.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.latitude, p.longitude)
}

// IsEqual compares two points for coordinate equality.
// Both points must be properly constructed.
func (p GeoPoint) IsEqual(other GeoPoint) (bool, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return p.latitude == other.latitude && p.longitude == other.longitude, nil
}

// DistanceKm calculates the great-circle distance to another point in
// kilometers using the haversine formula with EarthRadiusKm.
// The distance is symmetric and zero for identical points.
func (p GeoPoint) DistanceKm(other GeoPoint) (float64, error) {
	if err := errors.Join(p.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	latFrom := toRadians(p.latitude)
	latTo := toRadians(other.latitude)
	deltaLat := toRadians(other.latitude - p.latitude)
	deltaLon := toRadians(other.longitude - p.longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(latFrom)*math.Cos(latTo)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c, nil
}

// DistanceBetween returns the great-circle distance between two optional
// points. When either point is absent the distance is defined as 0, not an
// error. The pricing engine relies on this default for routes without
// geocoded addresses.
func DistanceBetween(from, to *GeoPoint) (float64, error) {
	if from == nil || to == nil {
		return 0, nil
	}
	return from.DistanceKm(*to)
}

func (p *GeoPoint) setLatitude(latitude float64) error {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	p.latitude = latitude
	return nil
}

func (p *GeoPoint) setLongitude(longitude float64) error {
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	p.longitude = longitude
	return nil
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
