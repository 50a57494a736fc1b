package queries

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// ListAvailableDronesQueryHandler lists the assignable drones of a restaurant.
type ListAvailableDronesQueryHandler struct {
	drones ports.DroneReader
}

// NewListAvailableDronesQueryHandler creates a handler reading from drones.
func NewListAvailableDronesQueryHandler(drones ports.DroneReader) ListAvailableDronesQueryHandler {
	return ListAvailableDronesQueryHandler{drones: drones}
}

// Handle returns the restaurant's Available drones.
// Drones stored with the legacy IDLE status are reported as AVAILABLE.
func (h ListAvailableDronesQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableDronesQuery,
) ([]DroneView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drones, err := h.drones.ListAvailableByRestaurant(ctx, query.RestaurantID())
	if err != nil {
		return nil, err
	}
	return NewDroneViews(drones), nil
}
