package kernel

import (
	"errors"
	"fmt"
	"math"

	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

const (
	// LatitudeMin is the smallest valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the largest valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the smallest valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the largest valid longitude in degrees.
	LongitudeMax = 180.0

	// DepotLatitude and DepotLongitude locate the depot every new order and drone starts at.
	DepotLatitude  = 10.762622
	DepotLongitude = 106.660172
)

// ErrLocationIsNotConstructed is returned when a Location was not created via NewLocation or Depot.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation or Depot constructors")

// Location is an immutable geographic point in decimal degrees.
// The zero value is invalid; use NewLocation or Depot.
//
// Example:
//
//	loc, err := kernel.NewLocation(10.762622, 106.660172)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
//	next, _ := loc.Offset(0.0005, 0.0005)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location, rejecting coordinates outside
// [LatitudeMin..LatitudeMax] and [LongitudeMin..LongitudeMax] or that are not finite.
func NewLocation(latitude, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}
	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}
	return loc, nil
}

// Depot returns the fixed starting point used for new orders and drones.
func Depot() Location {
	return Location{
		latitude:  DepotLatitude,
		longitude: DepotLongitude,
		guard:     guard.NewConstructorGuard(),
	}
}

// Validate returns ErrLocationIsNotConstructed for a zero-value Location.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// Offset returns a new Location shifted by the given deltas.
// The receiver is left untouched; an error is returned if the result leaves the valid range.
func (l Location) Offset(deltaLatitude, deltaLongitude float64) (Location, error) {
	if err := l.Validate(); err != nil {
		return Location{}, err
	}
	return NewLocation(l.latitude+deltaLatitude, l.longitude+deltaLongitude)
}

// IsEqual compares two locations coordinate by coordinate.
// Both locations must be properly constructed.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}
	return l.latitude == other.latitude && l.longitude == other.longitude, nil
}

// String implements fmt.Stringer, e.g. "Location(10.762622,106.660172)".
func (l Location) String() string {
	return fmt.Sprintf("Location(%g,%g)", l.latitude, l.longitude)
}

// setLatitude uses a pointer receiver so construction can validate in place.
func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}
	l.longitude = longitude
	return nil
}
