package ports

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
)

// DroneReader is the read-only part of the drone store.
type DroneReader interface {
	// Get retrieves a drone by its identifier.
	// Returns an errs.ObjectNotFoundError when no drone exists.
	Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// List returns every drone ordered by name.
	List(ctx context.Context) ([]*drone.Drone, error)

	// ListAvailableByRestaurant returns the restaurant's drones that can be assigned.
	// Drones stored with the legacy IDLE status are included and read back as Available.
	ListAvailableByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*drone.Drone, error)
}

// DroneRepository defines the persistence contract for drone aggregates.
type DroneRepository interface {
	DroneReader

	// Add persists a new drone aggregate.
	Add(ctx context.Context, aggregate *drone.Drone) error

	// Update persists changes to an existing drone aggregate.
	Update(ctx context.Context, aggregate *drone.Drone) error

	// GetForUpdate retrieves a drone and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*drone.Drone, error)

	// GetAllBusyWithoutActiveOrder returns Busy drones that no Delivering order references.
	//
	// Business Rules:
	//   - Busy drone with a Delivering order: in flight, not returned
	//   - Busy drone whose last order is Completed: stranded, returned
	//   - Busy drone without any order: stranded, returned
	GetAllBusyWithoutActiveOrder(ctx context.Context) ([]*drone.Drone, error)
}
