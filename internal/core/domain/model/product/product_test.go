package product_test

import (
	"testing"
	"time"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProduct(t *testing.T, stock int) *product.Product {
	t.Helper()

	sku, err := kernel.NewSKU("ABCD1234")
	require.NoError(t, err)
	price, err := kernel.NewMoneyFromFloat(19.99, "USD")
	require.NoError(t, err)
	quantity, err := kernel.NewQuantity(stock)
	require.NoError(t, err)

	p, err := product.NewProduct(
		kernel.NewUUID(), sku, "Wireless Mouse", "2.4GHz wireless mouse",
		price, quantity, product.CategoryElectronics,
		time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	return p
}

func TestNewProduct(t *testing.T) {
	t.Run("should create product with initial stock", func(t *testing.T) {
		p := newTestProduct(t, 10)

		require.NoError(t, p.Validate())
		assert.Equal(t, "ABCD1234", p.SKU().Value())
		assert.Equal(t, 10, p.StockQuantity().Value())
		assert.Equal(t, product.CategoryElectronics, p.Category())
		assert.Equal(t, p.CreatedAt(), p.UpdatedAt())
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		sku, _ := kernel.NewSKU("ABCD1234")
		price, _ := kernel.NewMoneyFromFloat(5, "USD")
		stock, _ := kernel.NewQuantity(1)

		_, err := product.NewProduct(kernel.NewUUID(), sku, "", "", price, stock,
			product.CategoryBooks, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("should fail with unknown category", func(t *testing.T) {
		sku, _ := kernel.NewSKU("ABCD1234")
		price, _ := kernel.NewMoneyFromFloat(5, "USD")
		stock, _ := kernel.NewQuantity(1)

		_, err := product.NewProduct(kernel.NewUUID(), sku, "Book", "", price, stock,
			product.CategoryUnknown, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "category is invalid")
	})

	t.Run("should fail with zero value price", func(t *testing.T) {
		sku, _ := kernel.NewSKU("ABCD1234")
		stock, _ := kernel.NewQuantity(1)
		var price kernel.Money

		_, err := product.NewProduct(kernel.NewUUID(), sku, "Book", "", price, stock,
			product.CategoryBooks, time.Now())

		require.Error(t, err)
	})

	t.Run("nil product should fail validation", func(t *testing.T) {
		var p *product.Product

		err := p.Validate()

		require.Error(t, err)
		assert.Equal(t, product.ErrProductIsNotConstructed, err)
	})
}

func TestProduct_IsAvailable(t *testing.T) {
	t.Run("in stock product is available", func(t *testing.T) {
		assert.True(t, newTestProduct(t, 1).IsAvailable())
	})

	t.Run("zero stock product is not available", func(t *testing.T) {
		assert.False(t, newTestProduct(t, 0).IsAvailable())
	})
}

func TestProduct_ReduceStock(t *testing.T) {
	now := time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

	t.Run("should decrement stock", func(t *testing.T) {
		p := newTestProduct(t, 10)
		three, _ := kernel.NewQuantity(3)

		err := p.ReduceStock(three, now)

		require.NoError(t, err)
		assert.Equal(t, 7, p.StockQuantity().Value())
		assert.Equal(t, now, p.UpdatedAt())
	})

	t.Run("should allow reducing to exactly zero", func(t *testing.T) {
		p := newTestProduct(t, 5)
		five, _ := kernel.NewQuantity(5)

		err := p.ReduceStock(five, now)

		require.NoError(t, err)
		assert.False(t, p.IsAvailable())
	})

	t.Run("should fail and leave stock untouched on overdraw", func(t *testing.T) {
		p := newTestProduct(t, 2)
		five, _ := kernel.NewQuantity(5)

		err := p.ReduceStock(five, now)

		require.Error(t, err)
		require.ErrorIs(t, err, product.ErrInsufficientStock)
		assert.Equal(t, 2, p.StockQuantity().Value())
	})

	t.Run("should fail with unconstructed quantity", func(t *testing.T) {
		p := newTestProduct(t, 2)
		var q kernel.Quantity

		require.Error(t, p.ReduceStock(q, now))
	})
}

func TestCategory(t *testing.T) {
	t.Run("fragile categories", func(t *testing.T) {
		assert.True(t, product.CategoryElectronics.IsFragile())
		assert.True(t, product.CategoryHomeAndGarden.IsFragile())
		assert.False(t, product.CategoryBooks.IsFragile())
	})

	t.Run("special handling categories", func(t *testing.T) {
		assert.True(t, product.CategoryElectronics.RequiresSpecialHandling())
		assert.True(t, product.CategoryFood.RequiresSpecialHandling())
		assert.False(t, product.CategoryClothing.RequiresSpecialHandling())
	})

	t.Run("food is not returnable", func(t *testing.T) {
		assert.False(t, product.CategoryFood.IsReturnable())
		assert.True(t, product.CategoryToys.IsReturnable())
	})

	t.Run("unknown category fails validation", func(t *testing.T) {
		require.Error(t, product.CategoryUnknown.Validate())
		require.Error(t, product.Category(99).Validate())
		assert.Equal(t, "Unknown", product.Category(99).String())
	})
}
