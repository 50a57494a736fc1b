package drone

import (
	"errors"
	"strings"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when a drone name is empty.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrDroneIsNotConstructed is returned when a Drone was not created via NewDrone or RestoreDrone.
	ErrDroneIsNotConstructed = errors.New("Drone must be created via NewDrone constructor")
)

// Drone is the aggregate root for a delivery drone.
//
// Drone follows these invariants:
//   - Must have a valid identifier and a non-empty name
//   - Is Busy only while delivering exactly one order
//   - Can be assigned only to orders of the restaurant that owns it
//
// Example:
//
//	d, err := drone.NewDrone(kernel.NewUUID(), "Falcon-1", &restaurantID, time.Now().UTC())
//	if err != nil {
//	    return err
//	}
//	if err := d.Occupy(); err != nil {
//	    // drone is not available
//	}
type Drone struct {
	id           kernel.UUID
	name         string
	restaurantID *kernel.UUID
	status       Status
	location     kernel.Location
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewDrone creates an Available drone standing at the depot.
// restaurantID may be nil for a drone not yet attached to a restaurant.
func NewDrone(id kernel.UUID, name string, restaurantID *kernel.UUID, at time.Time) (*Drone, error) {
	drone := &Drone{
		status:    Available,
		location:  kernel.Depot(),
		createdAt: at,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		drone.setID(id),
		drone.setName(name),
		drone.setRestaurant(restaurantID),
	); err != nil {
		return nil, err
	}

	return drone, nil
}

// RestoreDrone rebuilds a drone from storage.
func RestoreDrone(
	id kernel.UUID,
	name string,
	restaurantID *kernel.UUID,
	status Status,
	location kernel.Location,
	createdAt time.Time,
) (*Drone, error) {
	drone := &Drone{
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		drone.setID(id),
		drone.setName(name),
		drone.setRestaurant(restaurantID),
		drone.setStatus(status),
		drone.setLocation(location),
	); err != nil {
		return nil, err
	}

	return drone, nil
}

// Validate ensures the drone was created through a constructor.
func (d *Drone) Validate() error {
	if d == nil {
		return ErrDroneIsNotConstructed
	}
	return d.guard.Validate(ErrDroneIsNotConstructed)
}

// IsEqual compares drones by identifier.
func (d *Drone) IsEqual(other *Drone) bool {
	if other == nil {
		return false
	}
	return d.id.IsEqual(other.id)
}

// ID returns the drone identifier.
func (d *Drone) ID() kernel.UUID {
	return d.id
}

// Name returns the display name.
func (d *Drone) Name() string {
	return d.name
}

// Restaurant returns the owning restaurant, or nil if unattached.
func (d *Drone) Restaurant() *kernel.UUID {
	return d.restaurantID
}

// Status returns the current availability.
func (d *Drone) Status() Status {
	return d.status
}

// Location returns the drone position.
func (d *Drone) Location() kernel.Location {
	return d.location
}

// CreatedAt returns when the drone was registered.
func (d *Drone) CreatedAt() time.Time {
	return d.createdAt
}

// BelongsTo reports whether the drone is owned by restaurantID.
func (d *Drone) BelongsTo(restaurantID kernel.UUID) bool {
	return d.restaurantID != nil && d.restaurantID.IsEqual(restaurantID)
}

// Occupy marks an Available drone as Busy.
func (d *Drone) Occupy() error {
	if d.status != Available {
		return errs.NewResourceUnavailableError("drone", d.id, "is "+d.status.String())
	}
	d.status = Busy
	return nil
}

// Release makes the drone Available again and reports whether the status changed.
func (d *Drone) Release() bool {
	if d.status == Available {
		return false
	}
	d.status = Available
	return true
}

// AttachToRestaurant moves the drone to restaurantID and makes it Available.
// A Busy drone cannot change owner mid-delivery.
func (d *Drone) AttachToRestaurant(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurant_id", err)
	}
	if d.status == Busy {
		return errs.NewIllegalTransitionError("drone", d.status, "cannot change restaurant while delivering")
	}
	d.restaurantID = &restaurantID
	d.status = Available
	return nil
}

// SetAvailability toggles the drone between Available and Offline.
// Busy is entered and left only through assignment and release.
func (d *Drone) SetAvailability(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	if target == Busy {
		return errs.NewIllegalTransitionError("drone", d.status, "becomes BUSY only by assignment")
	}
	if d.status == Busy {
		return errs.NewIllegalTransitionError("drone", d.status, "is delivering an order")
	}
	d.status = target
	return nil
}

func (d *Drone) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Drone) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrNameIsRequired
	}
	d.name = name
	return nil
}

func (d *Drone) setRestaurant(restaurantID *kernel.UUID) error {
	if restaurantID == nil {
		return nil
	}
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurant_id", err)
	}
	id := *restaurantID
	d.restaurantID = &id
	return nil
}

func (d *Drone) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Drone) setLocation(location kernel.Location) error {
	if err := location.Validate(); err != nil {
		return err
	}
	d.location = location
	return nil
}
