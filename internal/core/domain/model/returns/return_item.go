package returns

import (
	"errors"
	"strings"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"
)

// ErrReturnItemIsNotConstructed indicates that the ReturnItem was not properly
// initialized through the NewReturnItem constructor.
var ErrReturnItemIsNotConstructed = errors.New(
	"ReturnItem must be created via NewReturnItem constructor")

// ReturnItem is a returned product line. It records which product comes back,
// how many units, the refund share for the line, and the reported condition
// of the goods.
type ReturnItem struct {
	productID    kernel.UUID
	quantity     kernel.Quantity
	refundAmount kernel.Money
	condition    string

	guard guard.ConstructorGuard
}

// NewReturnItem creates a returned product line.
func NewReturnItem(
	productID kernel.UUID,
	quantity kernel.Quantity,
	refundAmount kernel.Money,
	condition string,
) (*ReturnItem, error) {
	item := &ReturnItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
		item.setRefundAmount(refundAmount),
		item.setCondition(condition),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the ReturnItem was created through the constructor.
func (i *ReturnItem) Validate() error {
	if i == nil {
		return ErrReturnItemIsNotConstructed
	}
	return i.guard.Validate(ErrReturnItemIsNotConstructed)
}

// ProductID returns the identifier of the returned product.
func (i *ReturnItem) ProductID() kernel.UUID {
	return i.productID
}

// Quantity returns how many units come back.
func (i *ReturnItem) Quantity() kernel.Quantity {
	return i.quantity
}

// RefundAmount returns the refund share for this line.
func (i *ReturnItem) RefundAmount() kernel.Money {
	return i.refundAmount
}

// Condition returns the reported condition of the goods.
func (i *ReturnItem) Condition() string {
	return i.condition
}

func (i *ReturnItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *ReturnItem) setQuantity(quantity kernel.Quantity) error {
	if err := quantity.Validate(); err != nil {
		return err
	}
	i.quantity = quantity
	return nil
}

func (i *ReturnItem) setRefundAmount(refundAmount kernel.Money) error {
	if err := refundAmount.Validate(); err != nil {
		return err
	}
	i.refundAmount = refundAmount
	return nil
}

func (i *ReturnItem) setCondition(condition string) error {
	if strings.TrimSpace(condition) == "" {
		return errs.NewValueIsRequiredError("condition")
	}
	i.condition = condition
	return nil
}
