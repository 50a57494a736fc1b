package commands

import (
	"errors"
	"strings"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrRegisterRestaurantCommandIsNotConstructed = errors.New(
		"RegisterRestaurantCommand must be created via NewRegisterRestaurantCommand constructor",
	)
)

// RegisterRestaurantCommand makes a restaurant known to the delivery core so that
// orders and drones can reference it.
type RegisterRestaurantCommand struct {
	restaurantID kernel.UUID
	name         string

	guard guard.ConstructorGuard
}

// NewRegisterRestaurantCommand creates the command.
func NewRegisterRestaurantCommand(restaurantID kernel.UUID, name string) (RegisterRestaurantCommand, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if err := errors.Join(wrapInvalid("restaurant_id", restaurantID.Validate()), nameErr); err != nil {
		return RegisterRestaurantCommand{}, err
	}

	return RegisterRestaurantCommand{
		restaurantID: restaurantID,
		name:         strings.TrimSpace(name),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrRegisterRestaurantCommandIsNotConstructed)
}

// RestaurantID returns the restaurant identifier.
func (c RegisterRestaurantCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Name returns the restaurant display name.
func (c RegisterRestaurantCommand) Name() string {
	return c.name
}
