package commands

import (
	"context"
	"time"

	"dronedelivery/internal/core/domain/model/order"
)

// AdvanceOrderStatusCommandHandler applies a restaurant's status change.
// A Completed target is handed to MarkOrderDeliveredCommandHandler so that the
// drone is released and the simulation stopped exactly as for a delivery confirmation.
type AdvanceOrderStatusCommandHandler struct {
	uowFactory    UoWFactory
	effects       SideEffects
	markDelivered MarkOrderDeliveredCommandHandler
}

// NewAdvanceOrderStatusCommandHandler creates the handler.
func NewAdvanceOrderStatusCommandHandler(
	uowFactory UoWFactory,
	effects SideEffects,
	markDelivered MarkOrderDeliveredCommandHandler,
) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory:    uowFactory,
		effects:       effects,
		markDelivered: markDelivered,
	}
}

// Handle sets the target status. See order.Status.Advance for the allowed edges.
func (h AdvanceOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if cmd.Target() == order.Completed {
		deliveredCmd, err := NewMarkOrderDeliveredCommand(cmd.OrderID())
		if err != nil {
			return nil, err
		}
		result, err := h.markDelivered.Handle(ctx, deliveredCmd)
		if err != nil {
			return nil, err
		}
		return result.Order, nil
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Advance(cmd.Target(), time.Now().UTC()); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.effects.orderChanged(ctx, o)
	return o, nil
}
