package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/kernel"
)

// RestaurantRepository gives the core the restaurant facts it needs.
// The menu catalog lives elsewhere; only existence is checked here.
type RestaurantRepository interface {
	// Add registers a restaurant so orders and drones can reference it.
	Add(ctx context.Context, id kernel.UUID, name string) error

	// Exists reports whether a restaurant with the identifier is registered.
	Exists(ctx context.Context, id kernel.UUID) (bool, error)
}
