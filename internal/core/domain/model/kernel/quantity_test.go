package kernel_test

import (
	"testing"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	t.Run("should create quantity from non-negative value", func(t *testing.T) {
		q, err := kernel.NewQuantity(5)

		require.NoError(t, err)
		require.NoError(t, q.Validate())
		assert.Equal(t, 5, q.Value())
	})

	t.Run("should accept zero", func(t *testing.T) {
		q, err := kernel.NewQuantity(0)

		require.NoError(t, err)
		assert.True(t, q.IsZero())
	})

	t.Run("should fail with negative value", func(t *testing.T) {
		_, err := kernel.NewQuantity(-1)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var q kernel.Quantity

		err := q.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrQuantityIsNotConstructed, err)
	})
}

func TestQuantity_Subtract(t *testing.T) {
	mustQuantity := func(v int) kernel.Quantity {
		q, err := kernel.NewQuantity(v)
		require.NoError(t, err)
		return q
	}

	t.Run("should subtract smaller from larger", func(t *testing.T) {
		result, err := mustQuantity(10).Subtract(mustQuantity(4))

		require.NoError(t, err)
		assert.Equal(t, 6, result.Value())
	})

	t.Run("should allow subtracting an equal amount", func(t *testing.T) {
		result, err := mustQuantity(7).Subtract(mustQuantity(7))

		require.NoError(t, err)
		assert.True(t, result.IsZero())
	})

	t.Run("should fail when result would be negative", func(t *testing.T) {
		_, err := mustQuantity(3).Subtract(mustQuantity(5))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInsufficientQuantity)

		var insufficientErr *errs.InsufficientQuantityError
		require.ErrorAs(t, err, &insufficientErr)
		assert.Equal(t, 3, insufficientErr.Available)
		assert.Equal(t, 5, insufficientErr.Requested)
	})
}

func TestQuantity_Add(t *testing.T) {
	t.Run("should add two quantities", func(t *testing.T) {
		a, _ := kernel.NewQuantity(2)
		b, _ := kernel.NewQuantity(3)

		result, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, 5, result.Value())
	})

	t.Run("should fail when an operand is not constructed", func(t *testing.T) {
		a, _ := kernel.NewQuantity(2)
		var b kernel.Quantity

		_, err := a.Add(b)

		require.Error(t, err)
	})
}

func TestQuantity_Comparisons(t *testing.T) {
	a, _ := kernel.NewQuantity(2)
	b, _ := kernel.NewQuantity(9)

	assert.True(t, b.IsGreaterThan(a))
	assert.True(t, a.IsLessThan(b))
	assert.False(t, a.IsGreaterThan(b))
}
