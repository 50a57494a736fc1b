package commands

import (
	"errors"
	"strings"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrMockPaymentCommandIsNotConstructed = errors.New(
		"MockPaymentCommand must be created via NewMockPaymentCommand constructor",
	)
)

// MockPaymentCommand simulates a successful payment for an order.
// idempotencyKey is optional; a repeated key is rejected instead of paying twice.
type MockPaymentCommand struct {
	orderID        kernel.UUID
	idempotencyKey string

	guard guard.ConstructorGuard
}

// NewMockPaymentCommand creates the command for orderID.
func NewMockPaymentCommand(orderID kernel.UUID, idempotencyKey string) (MockPaymentCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MockPaymentCommand{}, err
	}
	return MockPaymentCommand{
		orderID:        orderID,
		idempotencyKey: strings.TrimSpace(idempotencyKey),
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MockPaymentCommand) Validate() error {
	return c.guard.Validate(ErrMockPaymentCommandIsNotConstructed)
}

// OrderID returns the order being paid.
func (c MockPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// IdempotencyKey returns the client supplied key, or an empty string.
func (c MockPaymentCommand) IdempotencyKey() string {
	return c.idempotencyKey
}
