package commands

import (
	"context"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/core/domain/services"
)

// AssignDroneResult holds both aggregates as committed.
type AssignDroneResult struct {
	Order *order.Order
	Drone *drone.Drone
}

// AssignDroneCommandHandler orchestrates binding a drone to an order.
// Both rows are locked for the transaction, so two concurrent assignments of the same
// drone serialize and the second one sees the drone Busy.
//
// Example:
//
//	handler := NewAssignDroneCommandHandler(uowFactory, effects)
//	result, err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // order or drone missing
//	case errors.Is(err, errs.ErrIllegalTransition):
//	    // order not ready for pickup
//	case errors.Is(err, errs.ErrResourceUnavailable):
//	    // drone busy, offline or owned by another restaurant
//	}
type AssignDroneCommandHandler struct {
	uowFactory UoWFactory
	effects    SideEffects
}

// NewAssignDroneCommandHandler creates a handler for drone assignment.
func NewAssignDroneCommandHandler(uowFactory UoWFactory, effects SideEffects) AssignDroneCommandHandler {
	return AssignDroneCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle assigns the drone inside one transaction and starts the delivery after commit.
func (h AssignDroneCommandHandler) Handle(ctx context.Context, cmd AssignDroneCommand) (AssignDroneResult, error) {
	if err := cmd.Validate(); err != nil {
		return AssignDroneResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return AssignDroneResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	droneRepo := uow.DroneRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return AssignDroneResult{}, err
	}

	d, err := droneRepo.GetForUpdate(ctx, cmd.DroneID())
	if err != nil {
		return AssignDroneResult{}, err
	}

	if err = services.NewDroneAssigner().Assign(o, d, time.Now().UTC()); err != nil {
		return AssignDroneResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return AssignDroneResult{}, err
	}

	if err = droneRepo.Update(ctx, d); err != nil {
		return AssignDroneResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return AssignDroneResult{}, err
	}

	h.effects.startDelivery(o.ID())
	h.effects.orderChanged(ctx, o)

	return AssignDroneResult{Order: o, Drone: d}, nil
}
