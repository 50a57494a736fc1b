package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrAssignDroneCommandIsNotConstructed = errors.New(
		"AssignDroneCommand must be created via NewAssignDroneCommand constructor",
	)
)

// AssignDroneCommand is a restaurant handing an order ready for pickup to one of its drones.
//
// Example:
//
//	cmd, err := NewAssignDroneCommand(orderID, droneID)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
//	// result.Order is Delivering, result.Drone is Busy
type AssignDroneCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	droneID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignDroneCommand creates the command. Both identifiers must be valid.
func NewAssignDroneCommand(orderID, droneID kernel.UUID) (AssignDroneCommand, error) {
	cmd := AssignDroneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setDroneID(droneID),
	); err != nil {
		return AssignDroneCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDroneCommand) Validate() error {
	return c.guard.Validate(ErrAssignDroneCommandIsNotConstructed)
}

// OrderID returns the order to deliver.
func (c AssignDroneCommand) OrderID() kernel.UUID {
	return c.orderID
}

// DroneID returns the drone to bind.
func (c AssignDroneCommand) DroneID() kernel.UUID {
	return c.droneID
}

func (c *AssignDroneCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AssignDroneCommand) setDroneID(droneID kernel.UUID) error {
	if err := droneID.Validate(); err != nil {
		return err
	}
	c.droneID = droneID
	return nil
}
