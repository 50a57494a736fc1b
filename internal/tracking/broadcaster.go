package tracking

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
)

// DefaultInterval is the pause between two snapshots.
const DefaultInterval = 2 * time.Second

// OrderSnapshots reads the current snapshot of an order.
type OrderSnapshots interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
}

// Broadcaster polls orders and pushes their snapshots through a Registry.
type Broadcaster struct {
	registry *Registry
	orders   OrderSnapshots
	interval time.Duration
	logger   *slog.Logger
}

// NewBroadcaster creates a broadcaster. A non-positive interval selects DefaultInterval.
func NewBroadcaster(registry *Registry, orders OrderSnapshots, interval time.Duration, logger *slog.Logger) *Broadcaster {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Broadcaster{
		registry: registry,
		orders:   orders,
		interval: interval,
		logger:   logger.With("component", "tracking_broadcaster"),
	}
}

// Track subscribes sub to orderID and sends the order snapshot to all subscribers
// of that order right away and then every interval. A tick where the order cannot
// be read sends nothing.
//
// Track blocks until ctx ends, sub fails a send or the registry closes, and always
// unsubscribes sub before returning. It returns ErrRegistryClosed when the registry
// closes, and nil otherwise.
//
// Example:
//
//	ctx, cancel := context.WithCancel(r.Context())
//	defer cancel()
//	go readUntilClosed(conn, cancel)
//
//	err := broadcaster.Track(ctx, orderID, subscriber)
func (b *Broadcaster) Track(ctx context.Context, orderID kernel.UUID, sub Subscriber) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return err
	}

	key := orderID.String()
	if err = b.registry.Subscribe(key, sub); err != nil {
		return err
	}
	defer b.registry.Unsubscribe(key, sub)

	logger := b.logger.With("order_id", key)
	logger.DebugContext(ctx, "Tracking subscriber joined", "subscribers", b.registry.Count(key))

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		if !b.registry.IsSubscribed(key, sub) {
			if b.registry.IsClosed() {
				logger.DebugContext(ctx, "Tracking registry closed")
				return ErrRegistryClosed
			}
			logger.DebugContext(ctx, "Tracking subscriber dropped")
			return nil
		}

		b.push(ctx, logger, key, query)

		select {
		case <-ctx.Done():
			logger.DebugContext(ctx, "Tracking subscriber left")
			return nil
		case <-ticker.C:
		}
	}
}

func (b *Broadcaster) push(ctx context.Context, logger *slog.Logger, key string, query queries.GetOrderQuery) {
	view, err := b.orders.Handle(ctx, query)
	if err != nil {
		if ctx.Err() == nil && !errors.Is(err, errs.ErrObjectNotFound) {
			logger.WarnContext(ctx, "Failed to read order snapshot", "error", err)
		}
		return
	}

	b.registry.Broadcast(key, view)
}
