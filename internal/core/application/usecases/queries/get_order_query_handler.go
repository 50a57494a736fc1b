package queries

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// GetOrderQueryHandler reads one order from the store.
// It is shared by the HTTP API and the live tracking broadcaster.
type GetOrderQueryHandler struct {
	orders ports.OrderReader
}

// NewGetOrderQueryHandler creates a handler reading from orders.
func NewGetOrderQueryHandler(orders ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle returns the order's read model.
// Returns an errs.ObjectNotFoundError when no order exists.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	o, err := h.orders.Get(ctx, query.OrderID())
	if err != nil {
		return OrderView{}, err
	}
	return NewOrderView(o), nil
}
