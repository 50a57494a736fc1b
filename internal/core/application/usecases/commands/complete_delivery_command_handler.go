package commands

import (
	"context"
	"time"
)

// CompleteDeliveryCommandHandler completes an order and releases its drone in one transaction.
// An order completed meanwhile by a delivery confirmation is left as is.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
	effects    SideEffects
}

// NewCompleteDeliveryCommandHandler creates the handler.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory, effects SideEffects) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle completes the delivery.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	droneRepo := uow.DroneRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	changed, err := o.Complete(time.Now().UTC())
	if err != nil || !changed {
		return err
	}

	if droneID := o.Drone(); droneID != nil {
		d, droneErr := droneRepo.GetForUpdate(ctx, *droneID)
		if droneErr != nil {
			return droneErr
		}
		if d.Release() {
			if err = droneRepo.Update(ctx, d); err != nil {
				return err
			}
		}
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.effects.orderChanged(ctx, o)
	return nil
}
