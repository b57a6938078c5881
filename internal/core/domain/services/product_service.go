package services

import (
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/product"
)

// Restock thresholds and suggestions. Stock below the low threshold calls
// for a large restock, stock below the medium threshold for a small one,
// anything above needs none.
const (
	lowStockThreshold    = 10
	mediumStockThreshold = 50
	largeRestockAmount   = 100
	smallRestockAmount   = 50
)

// specialHandlingThresholdUSD is the price at which any product requires
// special handling regardless of category. The threshold is fixed in USD.
const specialHandlingThresholdUSD = 1000.0

// ProductService is a domain service for product business rules: price-range
// filtering, special-handling detection, and restock suggestions.
type ProductService struct{}

// NewProductService creates a new ProductService instance.
func NewProductService() ProductService {
	return ProductService{}
}

// FilterByPriceRange keeps the products priced inside [minPrice, maxPrice],
// bounds inclusive. All prices and both bounds must share one currency;
// a mismatch fails the whole call.
func (s ProductService) FilterByPriceRange(
	products []*product.Product,
	minPrice kernel.Money,
	maxPrice kernel.Money,
) ([]*product.Product, error) {
	filtered := make([]*product.Product, 0, len(products))

	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}

		belowMin, err := p.Price().IsLessThan(minPrice)
		if err != nil {
			return nil, err
		}

		aboveMax, err := p.Price().IsGreaterThan(maxPrice)
		if err != nil {
			return nil, err
		}

		if !belowMin && !aboveMax {
			filtered = append(filtered, p)
		}
	}

	return filtered, nil
}

// RequiresSpecialHandling reports whether a product needs special treatment
// in the warehouse: fragile categories, categories flagged for special
// handling, and any product priced at or above 1000 USD.
func (s ProductService) RequiresSpecialHandling(p *product.Product) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}

	if p.Category().IsFragile() || p.Category().RequiresSpecialHandling() {
		return true, nil
	}

	if p.Price().Currency() != "USD" {
		return false, nil
	}

	threshold, err := kernel.NewMoneyFromFloat(specialHandlingThresholdUSD, "USD")
	if err != nil {
		return false, err
	}

	belowThreshold, err := p.Price().IsLessThan(threshold)
	if err != nil {
		return false, err
	}

	return !belowThreshold, nil
}

// CalculateRestockQuantity suggests how many units to reorder: 100 when
// stock is below 10, 50 when below 50, and an explicit zero Quantity when
// stock is sufficient.
func (s ProductService) CalculateRestockQuantity(p *product.Product) (kernel.Quantity, error) {
	if err := p.Validate(); err != nil {
		return kernel.Quantity{}, err
	}

	stock := p.StockQuantity().Value()

	switch {
	case stock < lowStockThreshold:
		return kernel.NewQuantity(largeRestockAmount)
	case stock < mediumStockThreshold:
		return kernel.NewQuantity(smallRestockAmount)
	default:
		return kernel.ZeroQuantity(), nil
	}
}
