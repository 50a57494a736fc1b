package commands

import (
	"context"
)

// ReleaseOrphanedDronesCommandHandler makes stranded drones Available again.
// Drones end up stranded when a best-effort release after completion fails.
type ReleaseOrphanedDronesCommandHandler struct {
	uowFactory UoWFactory
}

// NewReleaseOrphanedDronesCommandHandler creates the handler.
func NewReleaseOrphanedDronesCommandHandler(uowFactory UoWFactory) ReleaseOrphanedDronesCommandHandler {
	return ReleaseOrphanedDronesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle releases every orphaned drone in one transaction and returns how many were released.
func (h ReleaseOrphanedDronesCommandHandler) Handle(
	ctx context.Context,
	cmd ReleaseOrphanedDronesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()

	drones, err := droneRepo.GetAllBusyWithoutActiveOrder(ctx)
	if err != nil {
		return 0, err
	}
	if len(drones) == 0 {
		return 0, nil
	}

	released := 0
	for _, d := range drones {
		if !d.Release() {
			continue
		}
		if err = droneRepo.Update(ctx, d); err != nil {
			return 0, err
		}
		released++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return released, nil
}
