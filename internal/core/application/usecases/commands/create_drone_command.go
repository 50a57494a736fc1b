package commands

import (
	"errors"
	"strings"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrCreateDroneCommandIsNotConstructed = errors.New(
		"CreateDroneCommand must be created via NewCreateDroneCommand constructor",
	)
)

// CreateDroneCommand registers a new drone, optionally owned by a restaurant.
//
// Example:
//
//	cmd, err := NewCreateDroneCommand("Falcon-1", &restaurantID)
//	if err != nil {
//	    return fmt.Errorf("invalid drone data: %w", err)
//	}
//	d, err := handler.Handle(ctx, cmd)
type CreateDroneCommand struct { //nolint:recvcheck //using for validation
	name         string
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewCreateDroneCommand validates the name and the optional restaurant reference.
func NewCreateDroneCommand(name string, restaurantID *kernel.UUID) (CreateDroneCommand, error) {
	cmd := CreateDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setRestaurantID(restaurantID),
	); err != nil {
		return CreateDroneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDroneCommand) Validate() error {
	return c.guard.Validate(ErrCreateDroneCommandIsNotConstructed)
}

// Name returns the drone display name.
func (c CreateDroneCommand) Name() string {
	return c.name
}

// RestaurantID returns the owning restaurant or nil.
func (c CreateDroneCommand) RestaurantID() *kernel.UUID {
	return c.restaurantID
}

func (c *CreateDroneCommand) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return drone.ErrNameIsRequired
	}
	c.name = strings.TrimSpace(name)
	return nil
}

func (c *CreateDroneCommand) setRestaurantID(restaurantID *kernel.UUID) error {
	if restaurantID == nil {
		return nil
	}
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurant_id", err)
	}
	c.restaurantID = restaurantID
	return nil
}
