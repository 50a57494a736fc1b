package queries_test

import (
	"encoding/json"
	"errors"
	"testing"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/core/domain/model/order"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewOrderView(t *testing.T) {
	t.Run("should flatten a pending order", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		o := newTestOrder(t, restaurantID, "u1")

		view := queries.NewOrderView(o)

		assert.Equal(t, o.ID().String(), view.ID)
		assert.Equal(t, "u1", view.CustomerID)
		assert.Equal(t, restaurantID.String(), view.RestaurantID)
		assert.Nil(t, view.DroneID)
		assert.Equal(t, "PENDING", view.Status)
		assert.InDelta(t, 12.99, view.TotalPrice, 1e-9)
		assert.InDelta(t, kernel.DepotLatitude, view.DroneLat, 1e-9)
		assert.InDelta(t, kernel.DepotLongitude, view.DeliveryLon, 1e-9)
		require.Len(t, view.Items, 1)
		assert.Equal(t, queries.OrderItemView{MenuItemID: "m1", Name: "Pho bo", Price: 12.99, Quantity: 1}, view.Items[0])
	})

	t.Run("should carry the drone of a delivering order", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), "u1")
		droneID := kernel.NewUUID()
		require.NoError(t, o.Advance(order.ReadyForPickup, fixtureTime))
		require.NoError(t, o.AssignDrone(droneID, "Falcon", fixtureTime))

		view := queries.NewOrderView(o)

		require.NotNil(t, view.DroneID)
		assert.Equal(t, droneID.String(), *view.DroneID)
		assert.Equal(t, "Falcon", view.DroneName)
		assert.Equal(t, "DELIVERING", view.Status)
	})

	t.Run("should encode a missing drone as null", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), "u1")

		raw, err := json.Marshal(queries.NewOrderView(o))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(raw, &decoded))
		assert.Contains(t, decoded, "drone_id")
		assert.Nil(t, decoded["drone_id"])
		assert.NotContains(t, decoded, "drone_name")
	})
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	t.Run("should return the order view", func(t *testing.T) {
		o := newTestOrder(t, kernel.NewUUID(), "u1")
		reader := &MockOrderReader{}
		reader.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()

		query, err := queries.NewGetOrderQuery(o.ID())
		require.NoError(t, err)
		view, err := queries.NewGetOrderQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, o.ID().String(), view.ID)
		reader.AssertExpectations(t)
	})

	t.Run("should propagate not found", func(t *testing.T) {
		id := kernel.NewUUID()
		reader := &MockOrderReader{}
		reader.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("order", id.String())).Once()

		query, _ := queries.NewGetOrderQuery(id)
		_, err := queries.NewGetOrderQueryHandler(reader).Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should reject a query built without the constructor", func(t *testing.T) {
		reader := &MockOrderReader{}

		_, err := queries.NewGetOrderQueryHandler(reader).Handle(t.Context(), queries.GetOrderQuery{})

		require.ErrorIs(t, err, queries.ErrGetOrderQueryIsNotConstructed)
		reader.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	})

	t.Run("should reject an empty order id", func(t *testing.T) {
		_, err := queries.NewGetOrderQuery(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestListCustomerOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("should keep the store order", func(t *testing.T) {
		newer := newTestOrder(t, kernel.NewUUID(), "u1")
		older := newTestOrder(t, kernel.NewUUID(), "u1")
		reader := &MockOrderReader{}
		reader.On("ListByCustomer", mock.Anything, "u1").Return([]*order.Order{newer, older}, nil).Once()

		query, err := queries.NewListCustomerOrdersQuery(" u1 ")
		require.NoError(t, err)
		views, err := queries.NewListCustomerOrdersQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, newer.ID().String(), views[0].ID)
		assert.Equal(t, older.ID().String(), views[1].ID)
	})

	t.Run("should return an empty list for an unknown customer", func(t *testing.T) {
		reader := &MockOrderReader{}
		reader.On("ListByCustomer", mock.Anything, "ghost").Return([]*order.Order{}, nil).Once()

		query, _ := queries.NewListCustomerOrdersQuery("ghost")
		views, err := queries.NewListCustomerOrdersQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("should require a customer id", func(t *testing.T) {
		_, err := queries.NewListCustomerOrdersQuery("  ")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestListRestaurantOrdersQueryHandler_Handle(t *testing.T) {
	t.Run("should list the restaurant orders", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		o := newTestOrder(t, restaurantID, "u1")
		reader := &MockOrderReader{}
		reader.On("ListByRestaurant", mock.Anything, restaurantID).Return([]*order.Order{o}, nil).Once()

		query, err := queries.NewListRestaurantOrdersQuery(restaurantID)
		require.NoError(t, err)
		views, err := queries.NewListRestaurantOrdersQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, restaurantID.String(), views[0].RestaurantID)
	})

	t.Run("should propagate store failures", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		reader := &MockOrderReader{}
		reader.On("ListByRestaurant", mock.Anything, restaurantID).Return(nil, errors.New("connection reset")).Once()

		query, _ := queries.NewListRestaurantOrdersQuery(restaurantID)
		views, err := queries.NewListRestaurantOrdersQueryHandler(reader).Handle(t.Context(), query)

		require.Error(t, err)
		assert.Nil(t, views)
	})
}
