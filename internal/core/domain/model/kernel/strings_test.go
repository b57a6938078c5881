package kernel_test

import (
	"strings"
	"testing"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSKU(t *testing.T) {
	t.Run("should uppercase and trim valid input", func(t *testing.T) {
		sku, err := kernel.NewSKU("  abcd1234 ")

		require.NoError(t, err)
		assert.Equal(t, "ABCD1234", sku.Value())
	})

	t.Run("should fail when too short after normalization", func(t *testing.T) {
		_, err := kernel.NewSKU("ts001")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)

		var formatErr *errs.InvalidFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "sku", formatErr.ParamName)
		assert.Equal(t, "ts001", formatErr.Value)
	})

	t.Run("should fail when longer than 15 characters", func(t *testing.T) {
		_, err := kernel.NewSKU(strings.Repeat("A", 16))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("should fail with non-alphanumeric characters", func(t *testing.T) {
		_, err := kernel.NewSKU("ABCD-1234")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("should accept upper bound length", func(t *testing.T) {
		sku, err := kernel.NewSKU(strings.Repeat("Z", 15))

		require.NoError(t, err)
		assert.Len(t, sku.Value(), 15)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var sku kernel.SKU

		require.Error(t, sku.Validate())
	})
}

func TestNewEmailAddress(t *testing.T) {
	t.Run("should lowercase valid address", func(t *testing.T) {
		email, err := kernel.NewEmailAddress("Customer@Example.COM")

		require.NoError(t, err)
		assert.Equal(t, "customer@example.com", email.Value())
	})

	t.Run("should fail without at sign", func(t *testing.T) {
		_, err := kernel.NewEmailAddress("not-an-email")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("should fail on blank input", func(t *testing.T) {
		_, err := kernel.NewEmailAddress("   ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})
}

func TestNewPhoneNumber(t *testing.T) {
	t.Run("should strip separators before validation", func(t *testing.T) {
		phone, err := kernel.NewPhoneNumber("+1 (555) 123-4567")

		require.NoError(t, err)
		assert.Equal(t, "+15551234567", phone.Value())
	})

	t.Run("should accept number without plus prefix", func(t *testing.T) {
		phone, err := kernel.NewPhoneNumber("49301234567")

		require.NoError(t, err)
		assert.Equal(t, "49301234567", phone.Value())
	})

	t.Run("should fail when starting with zero", func(t *testing.T) {
		_, err := kernel.NewPhoneNumber("0123456")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})

	t.Run("should fail on letters", func(t *testing.T) {
		_, err := kernel.NewPhoneNumber("call-me")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("should create address with all components", func(t *testing.T) {
		address, err := kernel.NewAddress(" 1 Main St ", "Springfield", "12345", "US")

		require.NoError(t, err)
		assert.Equal(t, "1 Main St", address.Street())
		assert.Equal(t, "Springfield", address.City())
		assert.Equal(t, "12345", address.ZipCode())
		assert.Equal(t, "US", address.Country())
		assert.Equal(t, "1 Main St, Springfield 12345, US", address.String())
	})

	t.Run("should fail on blank components and name each field", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Springfield", "  ", "US")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidFormat)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "zipCode")
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var address kernel.Address

		require.Error(t, address.Validate())
	})
}

func TestOrderNumber(t *testing.T) {
	t.Run("create generates a fresh prefixed number", func(t *testing.T) {
		number := kernel.CreateOrderNumber()

		require.NoError(t, number.Validate())
		assert.True(t, strings.HasPrefix(number.Value(), "ORD-"))
		assert.Len(t, number.Value(), len("ORD-")+8)
	})

	t.Run("two generated numbers differ", func(t *testing.T) {
		first := kernel.CreateOrderNumber()
		second := kernel.CreateOrderNumber()

		assert.False(t, first.IsEqual(second))
	})

	t.Run("from wraps an existing value", func(t *testing.T) {
		number, err := kernel.OrderNumberFrom("ORD-LEGACY01")

		require.NoError(t, err)
		assert.Equal(t, "ORD-LEGACY01", number.Value())
	})

	t.Run("from fails on blank value", func(t *testing.T) {
		_, err := kernel.OrderNumberFrom("  ")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}
