package queries_test

import (
	"testing"

	"dronedelivery/internal/core/application/usecases/queries"
	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewDroneView(t *testing.T) {
	t.Run("should flatten an attached drone", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		d := newTestDrone(t, &restaurantID)

		view := queries.NewDroneView(d)

		assert.Equal(t, d.ID().String(), view.ID)
		assert.Equal(t, "Falcon", view.Name)
		require.NotNil(t, view.RestaurantID)
		assert.Equal(t, restaurantID.String(), *view.RestaurantID)
		assert.Equal(t, "AVAILABLE", view.Status)
		assert.InDelta(t, kernel.DepotLatitude, view.Latitude, 1e-9)
		assert.Equal(t, fixtureTime, view.CreatedAt)
	})

	t.Run("should leave the restaurant of an unattached drone empty", func(t *testing.T) {
		view := queries.NewDroneView(newTestDrone(t, nil))

		assert.Nil(t, view.RestaurantID)
	})
}

func TestGetDroneQueryHandler_Handle(t *testing.T) {
	t.Run("should return the drone view", func(t *testing.T) {
		d := newTestDrone(t, nil)
		reader := &MockDroneReader{}
		reader.On("Get", mock.Anything, d.ID()).Return(d, nil).Once()

		query, err := queries.NewGetDroneQuery(d.ID())
		require.NoError(t, err)
		view, err := queries.NewGetDroneQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		assert.Equal(t, d.ID().String(), view.ID)
	})

	t.Run("should propagate not found", func(t *testing.T) {
		id := kernel.NewUUID()
		reader := &MockDroneReader{}
		reader.On("Get", mock.Anything, id).Return(nil, errs.NewObjectNotFoundError("drone", id.String())).Once()

		query, _ := queries.NewGetDroneQuery(id)
		_, err := queries.NewGetDroneQueryHandler(reader).Handle(t.Context(), query)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestListDronesQueryHandler_Handle(t *testing.T) {
	t.Run("should list every drone", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		drones := []*drone.Drone{newTestDrone(t, &restaurantID), newTestDrone(t, nil)}
		reader := &MockDroneReader{}
		reader.On("List", mock.Anything).Return(drones, nil).Once()

		views, err := queries.NewListDronesQueryHandler(reader).Handle(t.Context(), queries.NewListDronesQuery())

		require.NoError(t, err)
		assert.Len(t, views, 2)
	})

	t.Run("should reject a query built without the constructor", func(t *testing.T) {
		reader := &MockDroneReader{}

		views, err := queries.NewListDronesQueryHandler(reader).Handle(t.Context(), queries.ListDronesQuery{})

		require.Error(t, err)
		assert.Nil(t, views)
		assert.Contains(t, err.Error(), "must be created via NewListDronesQuery constructor")
	})
}

func TestListAvailableDronesQueryHandler_Handle(t *testing.T) {
	t.Run("should report legacy idle drones as available", func(t *testing.T) {
		restaurantID := kernel.NewUUID()
		legacyStatus, err := drone.ParseStatus("IDLE")
		require.NoError(t, err)
		legacy, err := drone.RestoreDrone(kernel.NewUUID(), "Old Hawk", &restaurantID, legacyStatus, kernel.Depot(), fixtureTime)
		require.NoError(t, err)
		reader := &MockDroneReader{}
		reader.On("ListAvailableByRestaurant", mock.Anything, restaurantID).Return([]*drone.Drone{legacy}, nil).Once()

		query, err := queries.NewListAvailableDronesQuery(restaurantID)
		require.NoError(t, err)
		views, err := queries.NewListAvailableDronesQueryHandler(reader).Handle(t.Context(), query)

		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, "AVAILABLE", views[0].Status)
	})

	t.Run("should reject an empty restaurant id", func(t *testing.T) {
		_, err := queries.NewListAvailableDronesQuery(kernel.UUID{})

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
