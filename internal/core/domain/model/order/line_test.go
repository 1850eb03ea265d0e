package order_test

import (
	"errors"
	"testing"

	"sales/internal/core/domain/model/kernel"
	"sales/internal/core/domain/model/order"
	"sales/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(amount)
	require.NoError(t, err)
	return m
}

func newLine(t *testing.T, productID kernel.UUID, quantity int, unitPrice string) *order.OrderLine {
	t.Helper()
	line, err := order.NewOrderLine(productID, "Product "+productID.String()[:8], quantity, money(t, unitPrice))
	require.NoError(t, err)
	return line
}

func TestNewOrderLine(t *testing.T) {
	productID := kernel.NewUUID()

	t.Run("should create line with valid parameters", func(t *testing.T) {
		line, err := order.NewOrderLine(productID, "Espresso beans 1kg", 3, money(t, "12.50"))

		require.NoError(t, err)
		require.NoError(t, line.Validate())
		assert.True(t, line.ProductID().IsEqual(productID))
		assert.Equal(t, "Espresso beans 1kg", line.ProductName())
		assert.Equal(t, 3, line.Quantity())
		assert.True(t, line.UnitPrice().IsEqual(money(t, "12.50")))
		assert.Equal(t, "37.50", line.Total().String())
	})

	t.Run("should accept minimum quantity", func(t *testing.T) {
		line, err := order.NewOrderLine(productID, "Espresso beans 1kg", order.MinUnitsPerItem, money(t, "1"))

		require.NoError(t, err)
		assert.Equal(t, order.MinUnitsPerItem, line.Quantity())
	})

	t.Run("should not check the upper bound", func(t *testing.T) {
		line, err := order.NewOrderLine(productID, "Espresso beans 1kg", order.MaxUnitsPerItem+5, money(t, "1"))

		require.NoError(t, err)
		assert.Equal(t, 20, line.Quantity())
	})

	t.Run("should accept zero unit price", func(t *testing.T) {
		line, err := order.NewOrderLine(productID, "Free sample", 1, kernel.ZeroMoney())

		require.NoError(t, err)
		assert.True(t, line.Total().IsZero())
	})

	t.Run("should return domain error for quantity below minimum", func(t *testing.T) {
		for _, quantity := range []int{0, -1, -100} {
			line, err := order.NewOrderLine(productID, "Espresso beans 1kg", quantity, money(t, "1"))

			require.Error(t, err)
			assert.Nil(t, line)
			require.ErrorIs(t, err, errs.ErrDomain)
			require.ErrorIs(t, err, order.ErrQuantityBelowMinimum)
			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

			var domainErr *errs.DomainError
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, order.ErrQuantityBelowMinimum, domainErr.Reason)
		}
	})

	t.Run("should return domain error for zero product id", func(t *testing.T) {
		line, err := order.NewOrderLine(kernel.UUID{}, "Espresso beans 1kg", 1, money(t, "1"))

		require.Error(t, err)
		assert.Nil(t, line)
		require.ErrorIs(t, err, order.ErrProductIsRequired)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})

	t.Run("should report all violations at once", func(t *testing.T) {
		_, err := order.NewOrderLine(kernel.UUID{}, "", 0, money(t, "1"))

		require.Error(t, err)
		require.ErrorIs(t, err, order.ErrProductIsRequired)
		require.ErrorIs(t, err, order.ErrQuantityBelowMinimum)
	})
}

func TestOrderLine_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var line order.OrderLine
		require.ErrorIs(t, line.Validate(), order.ErrOrderLineIsNotConstructed)
	})

	t.Run("should fail for nil", func(t *testing.T) {
		var line *order.OrderLine
		require.ErrorIs(t, line.Validate(), order.ErrOrderLineIsNotConstructed)
	})

	t.Run("should pass for constructed line", func(t *testing.T) {
		line := newLine(t, kernel.NewUUID(), 1, "1")
		require.NoError(t, line.Validate())
		assert.False(t, errors.Is(line.Validate(), order.ErrOrderLineIsNotConstructed))
	})
}
