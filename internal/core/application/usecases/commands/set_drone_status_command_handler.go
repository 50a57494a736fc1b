package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
)

// SetDroneStatusCommandHandler toggles a drone between Available and Offline.
type SetDroneStatusCommandHandler struct {
	uowFactory UoWFactory
}

// NewSetDroneStatusCommandHandler creates the handler.
func NewSetDroneStatusCommandHandler(uowFactory UoWFactory) SetDroneStatusCommandHandler {
	return SetDroneStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the status. Busy can be neither set nor left here.
func (h SetDroneStatusCommandHandler) Handle(ctx context.Context, cmd SetDroneStatusCommand) (*drone.Drone, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()

	d, err := droneRepo.GetForUpdate(ctx, cmd.DroneID())
	if err != nil {
		return nil, err
	}

	if err = d.SetAvailability(cmd.Status()); err != nil {
		return nil, err
	}

	if err = droneRepo.Update(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}
