package services_test

import (
	"testing"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/product"
	"webshop/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePricedProduct(t *testing.T, price float64, currency string, category product.Category) *product.Product {
	t.Helper()

	sku, err := kernel.NewSKU("ABCD1234")
	require.NoError(t, err)

	p, err := product.NewProduct(kernel.NewUUID(), sku, "Test Product",
		"test product", mustMoney(t, price, currency), mustQuantity(t, 20),
		category, testOrderDate)
	require.NoError(t, err)
	return p
}

func makeStockedProduct(t *testing.T, stock int) *product.Product {
	t.Helper()

	sku, err := kernel.NewSKU("ABCD1234")
	require.NoError(t, err)
	stockQuantity, err := kernel.NewQuantity(stock)
	require.NoError(t, err)

	p, err := product.NewProduct(kernel.NewUUID(), sku, "Test Product",
		"test product", mustMoney(t, 19.99, "USD"), stockQuantity,
		product.CategoryBooks, testOrderDate)
	require.NoError(t, err)
	return p
}

func TestProductService_FilterByPriceRange(t *testing.T) {
	svc := services.NewProductService()

	t.Run("should keep products inside the range, bounds inclusive", func(t *testing.T) {
		cheap := makePricedProduct(t, 5.00, "USD", product.CategoryBooks)
		atMin := makePricedProduct(t, 10.00, "USD", product.CategoryBooks)
		middle := makePricedProduct(t, 25.00, "USD", product.CategoryBooks)
		atMax := makePricedProduct(t, 50.00, "USD", product.CategoryBooks)
		expensive := makePricedProduct(t, 99.00, "USD", product.CategoryBooks)

		filtered, err := svc.FilterByPriceRange(
			[]*product.Product{cheap, atMin, middle, atMax, expensive},
			mustMoney(t, 10.00, "USD"), mustMoney(t, 50.00, "USD"))

		require.NoError(t, err)
		assert.Equal(t, []*product.Product{atMin, middle, atMax}, filtered)
	})

	t.Run("should fail on currency mismatch", func(t *testing.T) {
		euroProduct := makePricedProduct(t, 25.00, "EUR", product.CategoryBooks)

		_, err := svc.FilterByPriceRange([]*product.Product{euroProduct},
			mustMoney(t, 10.00, "USD"), mustMoney(t, 50.00, "USD"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "currency mismatch")
	})

	t.Run("should return empty slice for empty input", func(t *testing.T) {
		filtered, err := svc.FilterByPriceRange(nil,
			mustMoney(t, 10.00, "USD"), mustMoney(t, 50.00, "USD"))

		require.NoError(t, err)
		assert.Empty(t, filtered)
	})
}

func TestProductService_RequiresSpecialHandling(t *testing.T) {
	svc := services.NewProductService()

	t.Run("should require handling for fragile categories", func(t *testing.T) {
		p := makePricedProduct(t, 19.99, "USD", product.CategoryElectronics)

		required, err := svc.RequiresSpecialHandling(p)

		require.NoError(t, err)
		assert.True(t, required)
	})

	t.Run("should require handling for special categories", func(t *testing.T) {
		p := makePricedProduct(t, 3.50, "USD", product.CategoryFood)

		required, err := svc.RequiresSpecialHandling(p)

		require.NoError(t, err)
		assert.True(t, required)
	})

	t.Run("should require handling at or above 1000 USD", func(t *testing.T) {
		atThreshold := makePricedProduct(t, 1000.00, "USD", product.CategoryBooks)
		aboveThreshold := makePricedProduct(t, 1500.00, "USD", product.CategoryBooks)

		required, err := svc.RequiresSpecialHandling(atThreshold)
		require.NoError(t, err)
		assert.True(t, required)

		required, err = svc.RequiresSpecialHandling(aboveThreshold)
		require.NoError(t, err)
		assert.True(t, required)
	})

	t.Run("should not require handling for cheap safe categories", func(t *testing.T) {
		p := makePricedProduct(t, 19.99, "USD", product.CategoryBooks)

		required, err := svc.RequiresSpecialHandling(p)

		require.NoError(t, err)
		assert.False(t, required)
	})

	t.Run("should not apply the USD threshold to other currencies", func(t *testing.T) {
		p := makePricedProduct(t, 1500.00, "EUR", product.CategoryBooks)

		required, err := svc.RequiresSpecialHandling(p)

		require.NoError(t, err)
		assert.False(t, required)
	})
}

func TestProductService_CalculateRestockQuantity(t *testing.T) {
	svc := services.NewProductService()

	t.Run("should suggest 100 units below 10 in stock", func(t *testing.T) {
		for _, stock := range []int{0, 5, 9} {
			suggestion, err := svc.CalculateRestockQuantity(makeStockedProduct(t, stock))

			require.NoError(t, err)
			assert.Equal(t, 100, suggestion.Value(), "stock %d", stock)
		}
	})

	t.Run("should suggest 50 units between 10 and 49 in stock", func(t *testing.T) {
		for _, stock := range []int{10, 25, 49} {
			suggestion, err := svc.CalculateRestockQuantity(makeStockedProduct(t, stock))

			require.NoError(t, err)
			assert.Equal(t, 50, suggestion.Value(), "stock %d", stock)
		}
	})

	t.Run("should suggest explicit zero at 50 or more in stock", func(t *testing.T) {
		for _, stock := range []int{50, 100} {
			suggestion, err := svc.CalculateRestockQuantity(makeStockedProduct(t, stock))

			require.NoError(t, err)
			assert.True(t, suggestion.IsZero(), "stock %d", stock)
			require.NoError(t, suggestion.Validate())
		}
	})
}
