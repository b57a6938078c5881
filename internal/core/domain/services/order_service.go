package services

import (
	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/core/domain/model/order"
	"webshop/internal/core/domain/model/product"
)

// Discount rates applied by CalculateDiscount. VIP customers get the higher
// rate; everyone else the base rate. Discounts apply only above the
// threshold amount in the order's own currency.
const (
	vipDiscountRate      = 0.15
	standardDiscountRate = 0.05
	discountThreshold    = 100.0
)

// OrderService is a domain service for order business rules: validating an
// order against the available product catalog, computing discounts, and
// deciding cancellations.
//
// Example usage:
//
//	svc := NewOrderService()
//	if !svc.ValidateOrder(ord, availableProducts) {
//	    // order is empty or references unavailable products
//	}
type OrderService struct{}

// NewOrderService creates a new OrderService instance.
func NewOrderService() OrderService {
	return OrderService{}
}

// ValidateOrder reports whether an order can be placed against the given
// product snapshot. The result is a single atomic verdict: an order with no
// items fails, and so does an order where any item references a product that
// is missing from the snapshot or out of stock.
func (s OrderService) ValidateOrder(ord *order.Order, availableProducts []*product.Product) bool {
	if ord.Validate() != nil {
		return false
	}

	if len(ord.Items()) == 0 {
		return false
	}

	available := make(map[string]*product.Product, len(availableProducts))
	for _, p := range availableProducts {
		if p.Validate() == nil {
			available[p.ID().String()] = p
		}
	}

	for _, item := range ord.Items() {
		p, ok := available[item.ProductID().String()]
		if !ok || !p.IsAvailable() {
			return false
		}
	}

	return true
}

// CalculateDiscount computes the discount for an order. The rate is 15% for
// VIP customers and 5% otherwise, applied only when the order total exceeds
// 100 in the order's currency; below the threshold the discount is zero
// Money in that currency. The discount is informational and never mutates
// the order.
func (s OrderService) CalculateDiscount(ord *order.Order, isVIP bool) (kernel.Money, error) {
	if err := ord.Validate(); err != nil {
		return kernel.Money{}, err
	}

	total := ord.TotalAmount()

	threshold, err := kernel.NewMoneyFromFloat(discountThreshold, total.Currency())
	if err != nil {
		return kernel.Money{}, err
	}

	aboveThreshold, err := total.IsGreaterThan(threshold)
	if err != nil {
		return kernel.Money{}, err
	}

	if !aboveThreshold {
		return kernel.ZeroMoney(total.Currency())
	}

	rate := standardDiscountRate
	if isVIP {
		rate = vipDiscountRate
	}

	return total.MultiplyRate(rate)
}

// CancelOrder cancels the order if its status still allows it. Returns false
// without mutation when the order is not cancellable, true after a
// successful cancellation.
func (s OrderService) CancelOrder(ord *order.Order) (bool, error) {
	if err := ord.Validate(); err != nil {
		return false, err
	}

	if !ord.IsCancellable() {
		return false, nil
	}

	if err := ord.Cancel(); err != nil {
		return false, err
	}

	return true, nil
}
