package order

import (
	"errors"
	"fmt"
	"strings"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
	"dronedelivery/internal/pkg/guard"
)

// ErrItemIsNotConstructed is returned when an Item was not created via NewItem.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one line of an order: a catalog item, its name and price at the time of
// ordering, and the quantity.
type Item struct { //nolint:recvcheck //using for validation
	menuItemID string
	name       string
	price      kernel.Money
	quantity   int

	guard guard.ConstructorGuard
}

// NewItem creates an order line. menuItemID and name must be non-empty, quantity at least 1.
func NewItem(menuItemID, name string, price kernel.Money, quantity int) (Item, error) {
	item := Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setMenuItemID(menuItemID),
		item.setName(name),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}
	item.price = price

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// MenuItemID returns the catalog reference of the item.
func (i Item) MenuItemID() string {
	return i.menuItemID
}

// Name returns the display name captured when the order was placed.
func (i Item) Name() string {
	return i.name
}

// Price returns the unit price.
func (i Item) Price() kernel.Money {
	return i.price
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns price times quantity.
func (i Item) Subtotal() kernel.Money {
	return i.price.Times(i.quantity)
}

func (i *Item) setMenuItemID(menuItemID string) error {
	if strings.TrimSpace(menuItemID) == "" {
		return errs.NewValueIsRequiredError("menu_item_id")
	}
	i.menuItemID = menuItemID
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is less than 1", quantity))
	}
	i.quantity = quantity
	return nil
}
