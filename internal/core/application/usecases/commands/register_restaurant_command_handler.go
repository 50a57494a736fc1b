package commands

import (
	"context"
)

// RegisterRestaurantCommandHandler stores a restaurant reference.
// Registering an existing restaurant again updates its name.
type RegisterRestaurantCommandHandler struct {
	uowFactory UoWFactory
}

// NewRegisterRestaurantCommandHandler creates the handler.
func NewRegisterRestaurantCommandHandler(uowFactory UoWFactory) RegisterRestaurantCommandHandler {
	return RegisterRestaurantCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the restaurant.
func (h RegisterRestaurantCommandHandler) Handle(ctx context.Context, cmd RegisterRestaurantCommand) error {
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

	if err := uow.RestaurantRepository().Add(ctx, cmd.RestaurantID(), cmd.Name()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
