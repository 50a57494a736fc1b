package commands

import (
	"context"
	"time"

	"dronedelivery/internal/core/domain/model/order"
)

// AdvanceDeliveryCommandHandler performs one tick of the delivery simulation.
type AdvanceDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceDeliveryCommandHandler creates the handler.
func NewAdvanceDeliveryCommandHandler(uowFactory UoWFactory) AdvanceDeliveryCommandHandler {
	return AdvanceDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle re-reads the order and moves its drone. It reports false without mutating
// anything when the order is no longer Delivering.
func (h AdvanceDeliveryCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveryCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return false, err
	}

	if o.Status() != order.Delivering {
		return false, nil
	}

	if err = o.MoveDrone(time.Now().UTC()); err != nil {
		return false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
