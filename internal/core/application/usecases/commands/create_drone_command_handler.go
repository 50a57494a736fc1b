package commands

import (
	"context"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
)

// CreateDroneCommandHandler stores a new Available drone at the depot.
type CreateDroneCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateDroneCommandHandler creates a handler for drone registration.
func NewCreateDroneCommandHandler(uowFactory UoWFactory) CreateDroneCommandHandler {
	return CreateDroneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the drone. An unknown restaurant yields an ObjectNotFoundError.
func (h CreateDroneCommandHandler) Handle(ctx context.Context, cmd CreateDroneCommand) (*drone.Drone, error) {
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

	if restaurantID := cmd.RestaurantID(); restaurantID != nil {
		if err := ensureRestaurantExists(ctx, uow, *restaurantID); err != nil {
			return nil, err
		}
	}

	d, err := drone.NewDrone(kernel.NewUUID(), cmd.Name(), cmd.RestaurantID(), time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if err = uow.DroneRepository().Add(ctx, d); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return d, nil
}

func ensureRestaurantExists(ctx context.Context, repos RestaurantRepoFactory, restaurantID kernel.UUID) error {
	exists, err := repos.RestaurantRepository().Exists(ctx, restaurantID)
	if err != nil {
		return err
	}
	if !exists {
		return errs.NewObjectNotFoundError("restaurant", restaurantID.String())
	}
	return nil
}
