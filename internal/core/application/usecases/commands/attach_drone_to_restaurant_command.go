package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrAttachDroneToRestaurantCommandIsNotConstructed = errors.New(
		"AttachDroneToRestaurantCommand must be created via NewAttachDroneToRestaurantCommand constructor",
	)
)

// AttachDroneToRestaurantCommand moves a drone into a restaurant's fleet.
type AttachDroneToRestaurantCommand struct {
	droneID      kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAttachDroneToRestaurantCommand creates the command. Both identifiers must be valid.
func NewAttachDroneToRestaurantCommand(droneID, restaurantID kernel.UUID) (AttachDroneToRestaurantCommand, error) {
	if err := errors.Join(
		droneID.Validate(),
		wrapInvalid("restaurant_id", restaurantID.Validate()),
	); err != nil {
		return AttachDroneToRestaurantCommand{}, err
	}

	return AttachDroneToRestaurantCommand{
		droneID:      droneID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachDroneToRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrAttachDroneToRestaurantCommandIsNotConstructed)
}

// DroneID returns the drone to move.
func (c AttachDroneToRestaurantCommand) DroneID() kernel.UUID {
	return c.droneID
}

// RestaurantID returns the new owner.
func (c AttachDroneToRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func wrapInvalid(paramName string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(paramName, err)
}
