package queries

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// ListDronesQueryHandler lists every drone.
type ListDronesQueryHandler struct {
	drones ports.DroneReader
}

// NewListDronesQueryHandler creates a handler reading from drones.
func NewListDronesQueryHandler(drones ports.DroneReader) ListDronesQueryHandler {
	return ListDronesQueryHandler{drones: drones}
}

// Handle returns all drones ordered by name.
func (h ListDronesQueryHandler) Handle(ctx context.Context, query ListDronesQuery) ([]DroneView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drones, err := h.drones.List(ctx)
	if err != nil {
		return nil, err
	}
	return NewDroneViews(drones), nil
}
