package commands

import (
	"errors"
	"fmt"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// OrderLine is one requested item of a new order as received from a client.
type OrderLine struct {
	MenuItemID string
	Name       string
	Price      float64
	Quantity   int
}

// CreateOrderCommand represents a request to place a new order at a restaurant.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("u1", restaurantID,
//	    []OrderLine{{MenuItemID: "m1", Name: "Pho", Price: 12.99, Quantity: 1}},
//	    12.99, "1 Le Loi, District 1")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, effects)
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      string
	restaurantID    kernel.UUID
	items           []order.Item
	totalPrice      kernel.Money
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request payload. Field checks that belong to the
// Order aggregate itself are repeated by order.NewOrder.
func NewCreateOrderCommand(
	customerID string,
	restaurantID kernel.UUID,
	lines []OrderLine,
	totalPrice float64,
	deliveryAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		customerID:      customerID,
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setItems(lines),
		cmd.setTotalPrice(totalPrice),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the external customer reference.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// RestaurantID returns the restaurant the order is placed at.
func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

// Items returns the validated order lines.
func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

// TotalPrice returns the total charged for the order.
func (c CreateOrderCommand) TotalPrice() kernel.Money {
	return c.totalPrice
}

// DeliveryAddress returns where the order is delivered.
func (c CreateOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("restaurant_id", err)
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setItems(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(lines))
	for i, line := range lines {
		price, err := kernel.MoneyFromFloat(line.Price)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d].price", i), err)
		}
		item, err := order.NewItem(line.MenuItemID, line.Name, price, line.Quantity)
		if err != nil {
			return errs.NewValueIsInvalidErrorWithCause(fmt.Sprintf("items[%d]", i), err)
		}
		items = append(items, item)
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setTotalPrice(totalPrice float64) error {
	total, err := kernel.MoneyFromFloat(totalPrice)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("total_price", err)
	}
	c.totalPrice = total
	return nil
}
