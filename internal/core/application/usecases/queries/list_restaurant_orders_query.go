package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrListRestaurantOrdersQueryIsNotConstructed = errors.New(
		"ListRestaurantOrdersQuery must be created via NewListRestaurantOrdersQuery constructor",
	)
)

// ListRestaurantOrdersQuery retrieves the orders placed at a restaurant, newest first.
type ListRestaurantOrdersQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListRestaurantOrdersQuery creates a query for restaurantID.
func NewListRestaurantOrdersQuery(restaurantID kernel.UUID) (ListRestaurantOrdersQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListRestaurantOrdersQuery{}, err
	}
	return ListRestaurantOrdersQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListRestaurantOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListRestaurantOrdersQueryIsNotConstructed)
}

// RestaurantID returns the restaurant whose orders are listed.
func (q ListRestaurantOrdersQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}
