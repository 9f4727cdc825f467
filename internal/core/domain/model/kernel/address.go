package kernel

import (
	"errors"

	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using a zero-value Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"address must be created via NewAddress constructor")

// Address is an origin or destination of a quote or shipment.
// Country is required; city and street are informational. Coordinates are
// optional — routes without geocoded endpoints price with a distance of 0
// (see DistanceBetween).
type Address struct { //nolint:recvcheck //using for validation
	country string
	city    string
	street  string
	point   *GeoPoint

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. The point may be nil when the
// location has not been geocoded.
func NewAddress(country, city, street string, point *GeoPoint) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(address.setCountry(country), address.setPoint(point)); err != nil {
		return Address{}, err
	}

	address.city = city
	address.street = street
	return address, nil
}

// Validate checks that the address was created through its constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Country returns the ISO country name or code supplied by the caller.
func (a Address) Country() string {
	return a.country
}

// City returns the city, possibly empty.
func (a Address) City() string {
	return a.city
}

// Street returns the street line, possibly empty.
func (a Address) Street() string {
	return a.street
}

// Point returns the geocoded coordinates, or nil when absent.
func (a Address) Point() *GeoPoint {
	return a.point
}

func (a *Address) setCountry(country string) error {
	if country == "" {
		return errs.NewValueIsRequiredError("country")
	}

	a.country = country
	return nil
}

func (a *Address) setPoint(point *GeoPoint) error {
	if point != nil {
		if err := point.Validate(); err != nil {
			return err
		}
	}

	a.point = point
	return nil
}
