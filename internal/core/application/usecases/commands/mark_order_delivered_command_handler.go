package commands

import (
	"context"
	"time"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
)

// MarkOrderDeliveredResult is the outcome of a delivery confirmation.
type MarkOrderDeliveredResult struct {
	Order *order.Order
	// AlreadyCompleted is true when the order was completed before this call and nothing changed.
	AlreadyCompleted bool
}

// MarkOrderDeliveredCommandHandler completes an order, stops its simulation and frees its drone.
//
// The call is idempotent: confirming a completed order succeeds without mutation.
// Releasing the drone runs in its own transaction after the order commit and never
// fails the call; failures are logged and left to the orphaned drone reconciler.
//
// Example:
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if result.AlreadyCompleted {
//	    // nothing changed
//	}
type MarkOrderDeliveredCommandHandler struct {
	uowFactory UoWFactory
	effects    SideEffects
}

// NewMarkOrderDeliveredCommandHandler creates the handler.
func NewMarkOrderDeliveredCommandHandler(uowFactory UoWFactory, effects SideEffects) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle marks the order Completed.
func (h MarkOrderDeliveredCommandHandler) Handle(
	ctx context.Context,
	cmd MarkOrderDeliveredCommand,
) (MarkOrderDeliveredResult, error) {
	if err := cmd.Validate(); err != nil {
		return MarkOrderDeliveredResult{}, err
	}

	o, changed, err := h.complete(ctx, cmd.OrderID())
	if err != nil {
		return MarkOrderDeliveredResult{}, err
	}
	if !changed {
		return MarkOrderDeliveredResult{Order: o, AlreadyCompleted: true}, nil
	}

	h.effects.cancelDelivery(o.ID())
	if droneID := o.Drone(); droneID != nil {
		h.releaseDrone(ctx, o.ID(), *droneID)
	}
	h.effects.orderChanged(ctx, o)

	return MarkOrderDeliveredResult{Order: o}, nil
}

func (h MarkOrderDeliveredCommandHandler) complete(
	ctx context.Context,
	orderID kernel.UUID,
) (*order.Order, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, orderID)
	if err != nil {
		return nil, false, err
	}

	changed, err := o.Complete(time.Now().UTC())
	if err != nil || !changed {
		return o, false, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, false, err
	}

	return o, true, nil
}

func (h MarkOrderDeliveredCommandHandler) releaseDrone(ctx context.Context, orderID, droneID kernel.UUID) {
	logger := h.effects.logger().With("order_id", orderID.String(), "drone_id", droneID.String())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		logger.WarnContext(ctx, "failed to release drone", "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	droneRepo := uow.DroneRepository()

	d, err := droneRepo.GetForUpdate(ctx, droneID)
	if err != nil {
		logger.WarnContext(ctx, "failed to release drone", "error", err)
		return
	}

	if !d.Release() {
		return
	}

	if err = droneRepo.Update(ctx, d); err != nil {
		logger.WarnContext(ctx, "failed to release drone", "error", err)
		return
	}

	if err = uow.Commit(ctx); err != nil {
		logger.WarnContext(ctx, "failed to release drone", "error", err)
		return
	}

	logger.InfoContext(ctx, "drone released")
}
