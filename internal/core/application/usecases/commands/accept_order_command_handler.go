package commands

import (
	"context"
	"time"

	"dronedelivery/internal/core/domain/model/order"
)

// AcceptOrderCommandHandler moves a Pending order to Preparing.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	effects    SideEffects
}

// NewAcceptOrderCommandHandler creates the handler.
func NewAcceptOrderCommandHandler(uowFactory UoWFactory, effects SideEffects) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		effects:    effects,
	}
}

// Handle accepts the order. Returns an IllegalTransitionError unless the order is Pending.
func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) (*order.Order, error) {
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

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Accept(time.Now().UTC()); err != nil {
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
