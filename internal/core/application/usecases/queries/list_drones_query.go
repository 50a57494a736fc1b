package queries

import (
	"errors"

	"dronedelivery/internal/pkg/guard"
)

var (
	ErrListDronesQueryIsNotConstructed = errors.New(
		"ListDronesQuery must be created via NewListDronesQuery constructor",
	)
)

// ListDronesQuery retrieves the whole fleet for administration.
//
// Example:
//
//	query := NewListDronesQuery()
//	drones, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list drones: %w", err)
//	}
//
//	for _, d := range drones {
//	    fmt.Printf("%s %s at (%f, %f)\n", d.Name, d.Status, d.Latitude, d.Longitude)
//	}
type ListDronesQuery struct {
	guard guard.ConstructorGuard
}

// NewListDronesQuery creates a parameterless query for every drone.
func NewListDronesQuery() ListDronesQuery {
	return ListDronesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrListDronesQueryIsNotConstructed if validation fails.
func (q ListDronesQuery) Validate() error {
	return q.guard.Validate(ErrListDronesQueryIsNotConstructed)
}
