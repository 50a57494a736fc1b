package queries_test

import (
	"context"
	"testing"
	"time"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderReader) ListByCustomer(ctx context.Context, customerID string) ([]*order.Order, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderReader) ListByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockDroneReader struct{ mock.Mock }

func (m *MockDroneReader) Get(ctx context.Context, id kernel.UUID) (*drone.Drone, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*drone.Drone), args.Error(1)
}

func (m *MockDroneReader) List(ctx context.Context) ([]*drone.Drone, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

func (m *MockDroneReader) ListAvailableByRestaurant(ctx context.Context, restaurantID kernel.UUID) ([]*drone.Drone, error) {
	args := m.Called(ctx, restaurantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*drone.Drone), args.Error(1)
}

func newTestOrder(t *testing.T, restaurantID kernel.UUID, customerID string) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromFloat(12.99)
	require.NoError(t, err)
	item, err := order.NewItem("m1", "Pho bo", price, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), customerID, restaurantID, []order.Item{item}, price, "1 Le Loi", fixtureTime)
	require.NoError(t, err)
	return o
}

func newTestDrone(t *testing.T, restaurantID *kernel.UUID) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(kernel.NewUUID(), "Falcon", restaurantID, fixtureTime)
	require.NoError(t, err)
	return d
}
