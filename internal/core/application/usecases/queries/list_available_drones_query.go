package queries

import (
	"errors"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/guard"
)

var (
	ErrListAvailableDronesQueryIsNotConstructed = errors.New(
		"ListAvailableDronesQuery must be created via NewListAvailableDronesQuery constructor",
	)
)

// ListAvailableDronesQuery retrieves the drones a restaurant can assign right now.
type ListAvailableDronesQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewListAvailableDronesQuery creates a query for restaurantID.
func NewListAvailableDronesQuery(restaurantID kernel.UUID) (ListAvailableDronesQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListAvailableDronesQuery{}, err
	}
	return ListAvailableDronesQuery{restaurantID: restaurantID, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListAvailableDronesQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableDronesQueryIsNotConstructed)
}

// RestaurantID returns the restaurant owning the drones.
func (q ListAvailableDronesQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}
