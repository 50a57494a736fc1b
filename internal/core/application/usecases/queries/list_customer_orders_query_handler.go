package queries

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// ListCustomerOrdersQueryHandler lists a customer's orders.
type ListCustomerOrdersQueryHandler struct {
	orders ports.OrderReader
}

// NewListCustomerOrdersQueryHandler creates a handler reading from orders.
func NewListCustomerOrdersQueryHandler(orders ports.OrderReader) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{orders: orders}
}

// Handle returns the customer's orders, newest first. An unknown customer has no orders.
func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orders.ListByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}
	return NewOrderViews(orders), nil
}
