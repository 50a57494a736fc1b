package ports

import (
	"context"
	"time"

	"dronedelivery/internal/core/domain/model/order"
)

// OrderChangedEvent announces a committed change of an order's status or drone.
type OrderChangedEvent struct {
	OrderID      string    `json:"order_id"`
	RestaurantID string    `json:"restaurant_id"`
	Status       string    `json:"status"`
	DroneID      string    `json:"drone_id,omitempty"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewOrderChangedEvent captures the current state of o.
func NewOrderChangedEvent(o *order.Order, at time.Time) OrderChangedEvent {
	event := OrderChangedEvent{
		OrderID:      o.ID().String(),
		RestaurantID: o.RestaurantID().String(),
		Status:       o.Status().String(),
		OccurredAt:   at,
	}
	if droneID := o.Drone(); droneID != nil {
		event.DroneID = droneID.String()
	}
	return event
}

// EventPublisher delivers order-changed events to other services.
// Publishing happens after commit and is best-effort: callers log and ignore errors.
type EventPublisher interface {
	PublishOrderChanged(ctx context.Context, event OrderChangedEvent) error
}
