package guard_test

import (
	"errors"
	"testing"

	"dronedelivery/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	notConstructed := errors.New("drone not constructed")

	t.Run("constructed_guard_passes_with_custom_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(notConstructed))
	})

	t.Run("constructed_guard_passes_with_nil_error", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero_value_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(notConstructed)

		require.Error(t, err)
		assert.Equal(t, notConstructed, err)
	})

	t.Run("zero_value_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInDomainType(t *testing.T) {
	type battery struct {
		charge int
		guard  guard.ConstructorGuard
	}

	errBatteryNotConstructed := errors.New("battery must be created via newBattery")

	newBattery := func(charge int) (battery, error) {
		if charge < 0 || charge > 100 {
			return battery{}, errors.New("charge must be between 0 and 100")
		}
		return battery{charge: charge, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructor_output_validates", func(t *testing.T) {
		b, err := newBattery(80)

		require.NoError(t, err)
		require.NoError(t, b.guard.Validate(errBatteryNotConstructed))
		assert.Equal(t, 80, b.charge)
	})

	t.Run("struct_literal_does_not_validate", func(t *testing.T) {
		b := battery{charge: 80}

		assert.Equal(t, errBatteryNotConstructed, b.guard.Validate(errBatteryNotConstructed))
	})

	t.Run("failed_constructor_returns_zero_value", func(t *testing.T) {
		b, err := newBattery(150)

		require.Error(t, err)
		assert.Error(t, b.guard.Validate(errBatteryNotConstructed))
	})
}
