package ports

import "dronedelivery/internal/core/domain/model/kernel"

// DeliveryScheduler runs the background delivery of an order with an assigned drone.
type DeliveryScheduler interface {
	// Start begins delivering orderID. Starting an order already in flight does nothing.
	Start(orderID kernel.UUID)

	// Cancel stops the delivery of orderID if one is running.
	Cancel(orderID kernel.UUID)
}
