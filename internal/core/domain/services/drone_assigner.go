package services

import (
	"errors"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
)

// DroneAssigner is a domain service that binds a drone to an order while keeping
// both aggregates consistent.
//
// Business rules, checked in this order:
//   - The order must be ReadyForPickup
//   - The drone must be Available
//   - The drone must belong to the order's restaurant
//
// Nothing is mutated unless every rule passes. On success the order is Delivering
// and references the drone, and the drone is Busy.
//
// Example usage:
//
//	assigner := services.NewDroneAssigner()
//	if err := assigner.Assign(o, d, time.Now().UTC()); err != nil {
//	    // errs.ErrIllegalTransition or errs.ErrResourceUnavailable
//	    return err
//	}
type DroneAssigner struct{}

// NewDroneAssigner creates a new DroneAssigner instance.
func NewDroneAssigner() DroneAssigner {
	return DroneAssigner{}
}

// Assign validates the pair and applies the assignment to both aggregates.
func (a DroneAssigner) Assign(o *order.Order, d *drone.Drone, at time.Time) error {
	if err := errors.Join(o.Validate(), d.Validate()); err != nil {
		return err
	}

	if err := a.CanAssign(o, d); err != nil {
		return err
	}

	if err := d.Occupy(); err != nil {
		return err
	}

	return o.AssignDrone(d.ID(), d.Name(), at)
}

// CanAssign checks every rule without side effects.
func (a DroneAssigner) CanAssign(o *order.Order, d *drone.Drone) error {
	if _, err := o.Status().StartDelivery(); err != nil {
		return err
	}

	if d.Status() != drone.Available {
		return errs.NewResourceUnavailableError("drone", d.ID(), "is "+d.Status().String())
	}

	if !d.BelongsTo(o.RestaurantID()) {
		return errs.NewResourceUnavailableError("drone", d.ID(), "belongs to another restaurant")
	}

	return nil
}
