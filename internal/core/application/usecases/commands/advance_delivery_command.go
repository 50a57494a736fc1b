package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrAdvanceDeliveryCommandIsNotConstructed = errors.New(
		"AdvanceDeliveryCommand must be created via NewAdvanceDeliveryCommand constructor",
	)
)

// AdvanceDeliveryCommand moves the drone of a delivering order one simulation step.
//
// Example:
//
//	cmd, _ := NewAdvanceDeliveryCommand(orderID)
//	inFlight, err := handler.Handle(ctx, cmd)
//	if err != nil || !inFlight {
//	    // stop simulating
//	}
type AdvanceDeliveryCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAdvanceDeliveryCommand creates the command for orderID.
func NewAdvanceDeliveryCommand(orderID kernel.UUID) (AdvanceDeliveryCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AdvanceDeliveryCommand{}, err
	}
	return AdvanceDeliveryCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c AdvanceDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveryCommandIsNotConstructed)
}

// OrderID returns the order being delivered.
func (c AdvanceDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}
