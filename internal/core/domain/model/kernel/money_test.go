package kernel_test

import (
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should accept zero and positive amounts", func(t *testing.T) {
		for _, amount := range []string{"0", "0.01", "100", "19.90"} {
			m, err := kernel.NewMoney(decimal.RequireFromString(amount))

			require.NoError(t, err, amount)
			assert.True(t, m.Amount().Equal(decimal.RequireFromString(amount)))
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(-1))

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "-1 is negative")
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("should parse decimals", func(t *testing.T) {
		m, err := kernel.MoneyFromString("15.25")

		require.NoError(t, err)
		assert.Equal(t, "15.25", m.String())
	})

	t.Run("should reject garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("fifteen")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative", func(t *testing.T) {
		_, err := kernel.MoneyFromString("-0.01")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	price, _ := kernel.MoneyFromString("0.10")

	t.Run("should multiply without float drift", func(t *testing.T) {
		total := price.MultiplyByInt(3)

		expected, _ := kernel.MoneyFromString("0.30")
		assert.True(t, total.IsEqual(expected))
	})

	t.Run("should add amounts", func(t *testing.T) {
		sum := kernel.ZeroMoney().Add(price).Add(price)

		assert.Equal(t, "0.20", sum.String())
	})

	t.Run("should leave operands unchanged", func(t *testing.T) {
		_ = price.Add(price)

		assert.Equal(t, "0.10", price.String())
	})
}

func TestMoney_IsEqual(t *testing.T) {
	a, _ := kernel.MoneyFromInt(200)
	b, _ := kernel.MoneyFromString("200.00")
	c, _ := kernel.MoneyFromInt(201)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.True(t, kernel.Money{}.IsEqual(kernel.ZeroMoney()))
	assert.True(t, kernel.ZeroMoney().IsZero())
}
