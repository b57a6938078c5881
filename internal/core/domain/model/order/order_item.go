package order

import (
	"errors"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"
)

// ErrOrderItemIsNotConstructed indicates that the OrderItem was not properly
// initialized through the NewOrderItem or RestoreOrderItem constructors.
var ErrOrderItemIsNotConstructed = errors.New(
	"OrderItem must be created via NewOrderItem or RestoreOrderItem constructors")

// OrderItem is a line item within an order. It is owned by its Order: its
// lifetime is bound to the order and it is never shared between aggregates.
//
// The item's total price is derived, never set directly:
// totalPrice = unitPrice × quantity, re-rounded like any Money arithmetic.
type OrderItem struct {
	productID   kernel.UUID
	productName string
	quantity    kernel.Quantity
	unitPrice   kernel.Money
	totalPrice  kernel.Money

	guard guard.ConstructorGuard
}

// NewOrderItem creates a line item and computes its total price from the
// unit price and quantity.
func NewOrderItem(
	productID kernel.UUID,
	productName string,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
) (*OrderItem, error) {
	item := &OrderItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setProductName(productName),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	if err := item.recalculateTotalPrice(); err != nil {
		return nil, err
	}

	return item, nil
}

// RestoreOrderItem reconstructs a line item from persistence with its stored
// total. The stored total is kept as-is; RecalculateTotal on the owning order
// re-derives it.
func RestoreOrderItem(
	productID kernel.UUID,
	productName string,
	quantity kernel.Quantity,
	unitPrice kernel.Money,
	totalPrice kernel.Money,
) (*OrderItem, error) {
	item, err := NewOrderItem(productID, productName, quantity, unitPrice)
	if err != nil {
		return nil, err
	}

	if err = totalPrice.Validate(); err != nil {
		return nil, err
	}

	item.totalPrice = totalPrice
	return item, nil
}

// Validate ensures the OrderItem was created through a constructor.
func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

// ProductID returns the identifier of the ordered product.
func (i *OrderItem) ProductID() kernel.UUID {
	return i.productID
}

// ProductName returns the product name captured at order time.
func (i *OrderItem) ProductName() string {
	return i.productName
}

// Quantity returns the ordered quantity.
func (i *OrderItem) Quantity() kernel.Quantity {
	return i.quantity
}

// UnitPrice returns the per-unit price captured at order time.
func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

// TotalPrice returns unitPrice × quantity.
func (i *OrderItem) TotalPrice() kernel.Money {
	return i.totalPrice
}

// recalculateTotalPrice re-derives the item total from unit price and quantity.
func (i *OrderItem) recalculateTotalPrice() error {
	total, err := i.unitPrice.Multiply(i.quantity.Value())
	if err != nil {
		return err
	}

	i.totalPrice = total
	return nil
}

func (i *OrderItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *OrderItem) setProductName(productName string) error {
	if productName == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = productName
	return nil
}

func (i *OrderItem) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitPrice(unitPrice kernel.Money) error {
	if err := unitPrice.Validate(); err != nil {
		return err
	}
	i.unitPrice = unitPrice
	return nil
}
