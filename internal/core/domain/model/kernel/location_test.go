package kernel_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"
)

func TestNewLocation(t *testing.T) {
	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		wantErr   bool
		errParam  string
	}{
		{name: "depot coordinates", latitude: kernel.DepotLatitude, longitude: kernel.DepotLongitude},
		{name: "min bounds", latitude: kernel.LatitudeMin, longitude: kernel.LongitudeMin},
		{name: "max bounds", latitude: kernel.LatitudeMax, longitude: kernel.LongitudeMax},
		{name: "latitude too small", latitude: -90.0001, longitude: 0, wantErr: true, errParam: "latitude"},
		{name: "latitude too large", latitude: 90.0001, longitude: 0, wantErr: true, errParam: "latitude"},
		{name: "longitude too small", latitude: 0, longitude: -180.5, wantErr: true, errParam: "longitude"},
		{name: "longitude too large", latitude: 0, longitude: 181, wantErr: true, errParam: "longitude"},
		{name: "latitude is NaN", latitude: math.NaN(), longitude: 0, wantErr: true, errParam: "latitude"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := kernel.NewLocation(tt.latitude, tt.longitude)

			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
				assert.Contains(t, err.Error(), tt.errParam)
				assert.Zero(t, loc)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.latitude, loc.Latitude())
			assert.Equal(t, tt.longitude, loc.Longitude())
			assert.NoError(t, loc.Validate())
		})
	}

	t.Run("both coordinates invalid reports both", func(t *testing.T) {
		_, err := kernel.NewLocation(100, 200)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "latitude")
		assert.Contains(t, err.Error(), "longitude")
	})
}

func TestDepot(t *testing.T) {
	depot := kernel.Depot()

	require.NoError(t, depot.Validate())
	assert.Equal(t, 10.762622, depot.Latitude())
	assert.Equal(t, 106.660172, depot.Longitude())
}

func TestLocation_Validate(t *testing.T) {
	var loc kernel.Location

	assert.Equal(t, kernel.ErrLocationIsNotConstructed, loc.Validate())
}

func TestLocation_Offset(t *testing.T) {
	t.Run("shifts both coordinates and keeps the original", func(t *testing.T) {
		start := kernel.Depot()

		next, err := start.Offset(0.0005, 0.0005)

		require.NoError(t, err)
		assert.InDelta(t, kernel.DepotLatitude+0.0005, next.Latitude(), 1e-9)
		assert.InDelta(t, kernel.DepotLongitude+0.0005, next.Longitude(), 1e-9)
		assert.Equal(t, kernel.DepotLatitude, start.Latitude())
	})

	t.Run("rejects leaving the valid range", func(t *testing.T) {
		edge, _ := kernel.NewLocation(89.9999, 0)

		_, err := edge.Offset(0.001, 0)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects zero value", func(t *testing.T) {
		var loc kernel.Location

		_, err := loc.Offset(0.1, 0.1)

		assert.Equal(t, kernel.ErrLocationIsNotConstructed, err)
	})
}

func TestLocation_IsEqual(t *testing.T) {
	a, _ := kernel.NewLocation(1.5, 2.5)
	b, _ := kernel.NewLocation(1.5, 2.5)
	c, _ := kernel.NewLocation(1.5, 2.6)

	equal, err := a.IsEqual(b)
	require.NoError(t, err)
	assert.True(t, equal)

	equal, err = a.IsEqual(c)
	require.NoError(t, err)
	assert.False(t, equal)

	_, err = a.IsEqual(kernel.Location{})
	assert.Error(t, err)
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "Location(10.762622,106.660172)", kernel.Depot().String())
}
