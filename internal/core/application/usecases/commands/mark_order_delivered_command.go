package commands

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrMarkOrderDeliveredCommandIsNotConstructed = errors.New(
		"MarkOrderDeliveredCommand must be created via NewMarkOrderDeliveredCommand constructor",
	)
)

// MarkOrderDeliveredCommand confirms that an order reached the customer.
type MarkOrderDeliveredCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderDeliveredCommand creates the command for orderID.
func NewMarkOrderDeliveredCommand(orderID kernel.UUID) (MarkOrderDeliveredCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderDeliveredCommand{}, err
	}
	return MarkOrderDeliveredCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderDeliveredCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderDeliveredCommandIsNotConstructed)
}

// OrderID returns the delivered order.
func (c MarkOrderDeliveredCommand) OrderID() kernel.UUID {
	return c.orderID
}
