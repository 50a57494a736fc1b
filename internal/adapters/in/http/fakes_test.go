package http_test

import (
	"context"
	"testing"
	"time"

	httpin "dronedelivery/internal/adapters/in/http"
	"dronedelivery/internal/core/application/usecases/commands"
	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/tracking"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

var fixtureTime = time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)

type createOrderFunc func(context.Context, commands.CreateOrderCommand) (*order.Order, error)

func (f createOrderFunc) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	return f(ctx, cmd)
}

type acceptOrderFunc func(context.Context, commands.AcceptOrderCommand) (*order.Order, error)

func (f acceptOrderFunc) Handle(ctx context.Context, cmd commands.AcceptOrderCommand) (*order.Order, error) {
	return f(ctx, cmd)
}

type advanceStatusFunc func(context.Context, commands.AdvanceOrderStatusCommand) (*order.Order, error)

func (f advanceStatusFunc) Handle(ctx context.Context, cmd commands.AdvanceOrderStatusCommand) (*order.Order, error) {
	return f(ctx, cmd)
}

type markDeliveredFunc func(context.Context, commands.MarkOrderDeliveredCommand) (commands.MarkOrderDeliveredResult, error)

func (f markDeliveredFunc) Handle(
	ctx context.Context,
	cmd commands.MarkOrderDeliveredCommand,
) (commands.MarkOrderDeliveredResult, error) {
	return f(ctx, cmd)
}

type assignDroneFunc func(context.Context, commands.AssignDroneCommand) (commands.AssignDroneResult, error)

func (f assignDroneFunc) Handle(ctx context.Context, cmd commands.AssignDroneCommand) (commands.AssignDroneResult, error) {
	return f(ctx, cmd)
}

type mockPaymentFunc func(context.Context, commands.MockPaymentCommand) (commands.PaymentResult, error)

func (f mockPaymentFunc) Handle(ctx context.Context, cmd commands.MockPaymentCommand) (commands.PaymentResult, error) {
	return f(ctx, cmd)
}

type createDroneFunc func(context.Context, commands.CreateDroneCommand) (*drone.Drone, error)

func (f createDroneFunc) Handle(ctx context.Context, cmd commands.CreateDroneCommand) (*drone.Drone, error) {
	return f(ctx, cmd)
}

type setDroneStatusFunc func(context.Context, commands.SetDroneStatusCommand) (*drone.Drone, error)

func (f setDroneStatusFunc) Handle(ctx context.Context, cmd commands.SetDroneStatusCommand) (*drone.Drone, error) {
	return f(ctx, cmd)
}

type registerRestaurantFunc func(context.Context, commands.RegisterRestaurantCommand) error

func (f registerRestaurantFunc) Handle(ctx context.Context, cmd commands.RegisterRestaurantCommand) error {
	return f(ctx, cmd)
}

type getOrderFunc func(context.Context, queries.GetOrderQuery) (queries.OrderView, error)

func (f getOrderFunc) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error) {
	return f(ctx, query)
}

type listDronesFunc func(context.Context, queries.ListDronesQuery) ([]queries.DroneView, error)

func (f listDronesFunc) Handle(ctx context.Context, query queries.ListDronesQuery) ([]queries.DroneView, error) {
	return f(ctx, query)
}

type trackFunc func(context.Context, kernel.UUID, tracking.Subscriber) error

func (f trackFunc) Track(ctx context.Context, orderID kernel.UUID, sub tracking.Subscriber) error {
	return f(ctx, orderID, sub)
}

func newTestRouter(handlers httpin.Handlers, tracker httpin.OrderTracker) *echo.Echo {
	server := httpin.NewServer(handlers, tracker, nil)
	return httpin.NewRouter(server, httpin.RouterConfig{})
}

func newTestOrder(t *testing.T, restaurantID kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromFloat(12.99)
	require.NoError(t, err)
	item, err := order.NewItem("m1", "Pho bo", price, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), "u1", restaurantID, []order.Item{item}, price, "1 Le Loi", fixtureTime)
	require.NoError(t, err)
	return o
}

func newTestDrone(t *testing.T, restaurantID *kernel.UUID) *drone.Drone {
	t.Helper()
	d, err := drone.NewDrone(kernel.NewUUID(), "Falcon", restaurantID, fixtureTime)
	require.NoError(t, err)
	return d
}
