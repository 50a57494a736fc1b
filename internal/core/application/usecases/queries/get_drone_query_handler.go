package queries

import (
	"context"

	"dronedelivery/internal/core/ports"
)

// GetDroneQueryHandler reads one drone from the store.
type GetDroneQueryHandler struct {
	drones ports.DroneReader
}

// NewGetDroneQueryHandler creates a handler reading from drones.
func NewGetDroneQueryHandler(drones ports.DroneReader) GetDroneQueryHandler {
	return GetDroneQueryHandler{drones: drones}
}

// Handle returns the drone's read model.
// Returns an errs.ObjectNotFoundError when no drone exists.
func (h GetDroneQueryHandler) Handle(ctx context.Context, query GetDroneQuery) (DroneView, error) {
	if err := query.Validate(); err != nil {
		return DroneView{}, err
	}

	d, err := h.drones.Get(ctx, query.DroneID())
	if err != nil {
		return DroneView{}, err
	}
	return NewDroneView(d), nil
}
