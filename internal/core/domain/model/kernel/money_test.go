package kernel_test

import (
	"testing"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money with valid amount and currency", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(19.99), "USD")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.Equal(t, "19.99", m.Amount().StringFixed(2))
		assert.Equal(t, "USD", m.Currency())
	})

	t.Run("should round half-up to two decimal places at construction", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(10.005), "USD")

		require.NoError(t, err)
		assert.Equal(t, "10.01", m.Amount().StringFixed(2))
	})

	t.Run("should round down below the midpoint", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromFloat(10.004), "USD")

		require.NoError(t, err)
		assert.Equal(t, "10.00", m.Amount().StringFixed(2))
	})

	t.Run("should normalize currency code", func(t *testing.T) {
		m, err := kernel.NewMoney(decimal.NewFromInt(5), " usd ")

		require.NoError(t, err)
		assert.Equal(t, "USD", m.Currency())
	})

	t.Run("should fail with malformed currency code", func(t *testing.T) {
		_, err := kernel.NewMoney(decimal.NewFromInt(5), "US")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Arithmetic(t *testing.T) {
	usd := func(amount float64) kernel.Money {
		m, err := kernel.NewMoneyFromFloat(amount, "USD")
		require.NoError(t, err)
		return m
	}

	t.Run("add and subtract round-trip under the same rounding rule", func(t *testing.T) {
		a := usd(12.34)
		b := usd(56.78)

		sum, err := a.Add(b)
		require.NoError(t, err)

		back, err := sum.Subtract(b)
		require.NoError(t, err)
		assert.True(t, back.IsEqual(a))
	})

	t.Run("add fails across currencies", func(t *testing.T) {
		a := usd(10)
		b, err := kernel.NewMoneyFromFloat(10, "EUR")
		require.NoError(t, err)

		_, err = a.Add(b)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrCurrencyMismatch)
	})

	t.Run("subtract fails across currencies", func(t *testing.T) {
		a := usd(10)
		b, err := kernel.NewMoneyFromFloat(3, "EUR")
		require.NoError(t, err)

		_, err = a.Subtract(b)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrCurrencyMismatch)
	})

	t.Run("multiply scales by integer quantity", func(t *testing.T) {
		unit := usd(19.99)

		total, err := unit.Multiply(3)

		require.NoError(t, err)
		assert.Equal(t, "59.97", total.Amount().StringFixed(2))
		assert.Equal(t, "USD", total.Currency())
	})

	t.Run("multiply rate re-rounds the result", func(t *testing.T) {
		total := usd(200.00)

		discount, err := total.MultiplyRate(0.15)

		require.NoError(t, err)
		assert.Equal(t, "30.00", discount.Amount().StringFixed(2))
	})

	t.Run("operations on zero value money fail", func(t *testing.T) {
		var m kernel.Money

		_, err := m.Add(usd(1))

		require.Error(t, err)
	})
}

func TestMoney_Comparisons(t *testing.T) {
	usd := func(amount float64) kernel.Money {
		m, err := kernel.NewMoneyFromFloat(amount, "USD")
		require.NoError(t, err)
		return m
	}

	t.Run("greater and less than", func(t *testing.T) {
		greater, err := usd(10).IsGreaterThan(usd(5))
		require.NoError(t, err)
		assert.True(t, greater)

		less, err := usd(5).IsLessThan(usd(10))
		require.NoError(t, err)
		assert.True(t, less)
	})

	t.Run("comparison across currencies fails", func(t *testing.T) {
		eur, err := kernel.NewMoneyFromFloat(10, "EUR")
		require.NoError(t, err)

		_, err = usd(10).IsGreaterThan(eur)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrCurrencyMismatch)
	})

	t.Run("equality is numeric, not representational", func(t *testing.T) {
		a, err := kernel.NewMoney(decimal.RequireFromString("10.0"), "USD")
		require.NoError(t, err)
		b, err := kernel.NewMoney(decimal.RequireFromString("10.00"), "USD")
		require.NoError(t, err)

		assert.True(t, a.IsEqual(b))
	})

	t.Run("equal amounts in different currencies are not equal", func(t *testing.T) {
		eur, err := kernel.NewMoneyFromFloat(10, "EUR")
		require.NoError(t, err)

		assert.False(t, usd(10).IsEqual(eur))
	})
}

func TestZeroMoney(t *testing.T) {
	t.Run("should create zero amount in the given currency", func(t *testing.T) {
		m, err := kernel.ZeroMoney("USD")

		require.NoError(t, err)
		assert.True(t, m.IsZero())
		assert.Equal(t, "USD", m.Currency())
		assert.Equal(t, "0.00 USD", m.String())
	})
}
