package kernel_test

import (
	"testing"

	"dronedelivery/internal/core/domain/model/kernel"
	"dronedelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("accepts zero and positive amounts", func(t *testing.T) {
		zero, err := kernel.NewMoney(decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, "0.00", zero.String())

		price, err := kernel.MoneyFromFloat(12.99)
		require.NoError(t, err)
		assert.Equal(t, "12.99", price.String())
		assert.InDelta(t, 12.99, price.Float64(), 1e-9)
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.MoneyFromFloat(-0.01)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-0.01 is negative")
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.MoneyFromFloat(4.33)

	total := price.Times(3)

	expected, _ := kernel.MoneyFromFloat(12.99)
	assert.True(t, total.IsEqual(expected))
	assert.True(t, price.Add(price).IsEqual(price.Times(2)))
}
