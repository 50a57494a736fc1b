package drone_test

import (
	"testing"

	"dronedelivery/internal/core/domain/model/drone"
	"dronedelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input string
		want  drone.Status
	}{
		{"AVAILABLE", drone.Available},
		{"available", drone.Available},
		{"IDLE", drone.Available},
		{"idle", drone.Available},
		{"Busy", drone.Busy},
		{"OFFLINE", drone.Offline},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := drone.ParseStatus(tt.input)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := drone.ParseStatus("charging")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "charging")
	})
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "AVAILABLE", drone.Available.String())
	assert.Equal(t, "BUSY", drone.Busy.String())
	assert.Equal(t, "OFFLINE", drone.Offline.String())
	assert.Equal(t, "UNKNOWN", drone.Status(9).String())
}

func TestStatus_Validate(t *testing.T) {
	require.NoError(t, drone.Busy.Validate())
	require.Error(t, drone.Unknown.Validate())
	require.Error(t, drone.Status(4).Validate())
}

func TestLegacyAvailableValues(t *testing.T) {
	assert.ElementsMatch(t, []string{"AVAILABLE", "IDLE"}, drone.LegacyAvailableValues())
}
