package queries

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// ListRestaurantOrdersQueryHandler lists a restaurant's orders.
type ListRestaurantOrdersQueryHandler struct {
	orders ports.OrderReader
}

// NewListRestaurantOrdersQueryHandler creates a handler reading from orders.
func NewListRestaurantOrdersQueryHandler(orders ports.OrderReader) ListRestaurantOrdersQueryHandler {
	return ListRestaurantOrdersQueryHandler{orders: orders}
}

// Handle returns the restaurant's orders, newest first.
func (h ListRestaurantOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListByRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}
	return NewOrderViews(orders), nil
}
