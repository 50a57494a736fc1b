package commands_test

import (
	"testing"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

func newTestOrder(t *testing.T, restaurantID kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromFloat(12.99)
	require.NoError(t, err)
	item, err := order.NewItem("m1", "Pho bo", price, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "u1", restaurantID, []order.Item{item}, price, "1 Le Loi", fixtureTime)
	require.NoError(t, err)

	switch status {
	case order.Pending:
	case order.Delivering:
		require.NoError(t, o.Advance(order.ReadyForPickup, fixtureTime))
		require.NoError(t, o.AssignDrone(kernel.NewUUID(), "Falcon", fixtureTime))
	default:
		require.NoError(t, o.Advance(status, fixtureTime))
	}
	return o
}

func newDeliveringOrder(t *testing.T, d *drone.Drone) *order.Order {
	t.Helper()
	o := newTestOrder(t, *d.Restaurant(), order.ReadyForPickup)
	require.NoError(t, d.Occupy())
	require.NoError(t, o.AssignDrone(d.ID(), d.Name(), fixtureTime))
	return o
}

func newTestDrone(t *testing.T, restaurantID kernel.UUID) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(kernel.NewUUID(), "Falcon", &restaurantID, fixtureTime)
	require.NoError(t, err)
	return d
}
