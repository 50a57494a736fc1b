package commands

import (
	"context"

	"dronedelivery/internal/core/domain/model/drone"
)

// AttachDroneToRestaurantCommandHandler assigns a drone to a restaurant and makes it Available.
// A Busy drone is rejected so a delivery never changes owner midway.
type AttachDroneToRestaurantCommandHandler struct {
	uowFactory UoWFactory
}

// NewAttachDroneToRestaurantCommandHandler creates the handler.
func NewAttachDroneToRestaurantCommandHandler(uowFactory UoWFactory) AttachDroneToRestaurantCommandHandler {
	return AttachDroneToRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle attaches the drone.
func (h AttachDroneToRestaurantCommandHandler) Handle(
	ctx context.Context,
	cmd AttachDroneToRestaurantCommand,
) (*drone.Drone, error) {
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

	if err = ensureRestaurantExists(ctx, uow, cmd.RestaurantID()); err != nil {
		return nil, err
	}

	if err = d.AttachToRestaurant(cmd.RestaurantID()); err != nil {
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
