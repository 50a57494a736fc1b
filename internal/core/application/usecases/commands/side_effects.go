package commands

import (
	"context"
	"log/slog"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/ports"
)

// SideEffects bundles the collaborators a handler notifies after commit.
// Every field is optional.
type SideEffects struct {
	Publisher ports.EventPublisher
	Scheduler ports.DeliveryScheduler
	Logger    *slog.Logger
}

func (s SideEffects) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

// orderChanged publishes the committed state of o. Failures are logged and dropped.
func (s SideEffects) orderChanged(ctx context.Context, o *order.Order) {
	if s.Publisher == nil {
		return
	}
	event := ports.NewOrderChangedEvent(o, time.Now().UTC())
	if err := s.Publisher.PublishOrderChanged(ctx, event); err != nil {
		s.logger().WarnContext(ctx, "failed to publish order changed event",
			"order_id", event.OrderID, "status", event.Status, "error", err)
	}
}

func (s SideEffects) startDelivery(orderID kernel.UUID) {
	if s.Scheduler != nil {
		s.Scheduler.Start(orderID)
	}
}

func (s SideEffects) cancelDelivery(orderID kernel.UUID) {
	if s.Scheduler != nil {
		s.Scheduler.Cancel(orderID)
	}
}
