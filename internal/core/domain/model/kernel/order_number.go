package kernel

import (
	"strings"

	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrOrderNumberIsNotConstructed is returned when attempting to use an
// improperly initialized OrderNumber.
var ErrOrderNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderNumber must be created via CreateOrderNumber or OrderNumberFrom constructors")

// OrderNumber is the opaque, human-facing identifier of an order,
// e.g. "ORD-5A3F09C1". It is distinct from the order's UUID identity.
type OrderNumber struct { //nolint:recvcheck //using for validation
	value string

	guard guard.ConstructorGuard
}

// CreateOrderNumber generates a fresh unique order number.
func CreateOrderNumber() OrderNumber {
	value := "ORD-" + strings.ToUpper(uuid.NewString()[:8])
	number, _ := OrderNumberFrom(value)
	return number
}

// OrderNumberFrom wraps a pre-existing order number value.
// Blank input fails with a value-is-required error.
func OrderNumberFrom(value string) (OrderNumber, error) {
	number := OrderNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := number.setValue(value); err != nil {
		return OrderNumber{}, err
	}

	return number, nil
}

// Validate checks that the OrderNumber was created through a constructor.
func (n OrderNumber) Validate() error {
	return n.guard.Validate(ErrOrderNumberIsNotConstructed)
}

// Value returns the order number string.
func (n OrderNumber) Value() string {
	return n.value
}

// IsEqual compares two order numbers by value.
func (n OrderNumber) IsEqual(other OrderNumber) bool {
	return n.value == other.value
}

// String implements fmt.Stringer.
func (n OrderNumber) String() string {
	return n.value
}

func (n *OrderNumber) setValue(value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}

	n.value = value
	return nil
}
