// Package ports defines the contracts between the application core and infrastructure:
// repositories, the unit of work, event publishing, payment idempotency and
// delivery scheduling.
package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

// OrderReader is the read-only part of the order store used by queries and live tracking.
type OrderReader interface {
	// Get retrieves an order by its identifier.
	// Returns an errs.ObjectNotFoundError when no order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// ListByCustomer returns the customer's orders, newest first.
	ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error)

	// ListByRestaurant returns the restaurant's orders, newest first.
	ListByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error)
}

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted.
type OrderRepository interface {
	OrderReader

	// Add persists a new order aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetForUpdate retrieves an order and locks its row until the transaction ends.
	// Outside a transaction it behaves like Get.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
