package kernel

import (
	"strconv"

	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"
)

// ErrQuantityIsNotConstructed is returned when attempting to use an improperly
// initialized Quantity. Quantities must be created via NewQuantity or ZeroQuantity.
var ErrQuantityIsNotConstructed = errs.NewValueIsRequiredError(
	"Quantity must be created via NewQuantity or ZeroQuantity constructors")

// Quantity is a non-negative integer amount.
// The non-negativity invariant is enforced at construction and preserved by
// every operation: Subtract fails with an insufficient-quantity error instead
// of producing a negative value.
type Quantity struct { //nolint:recvcheck //using for validation
	value int

	guard guard.ConstructorGuard
}

// NewQuantity creates a Quantity from a non-negative integer.
// Negative input fails with an invalid-format error.
func NewQuantity(value int) (Quantity, error) {
	quantity := Quantity{
		guard: guard.NewConstructorGuard(),
	}

	if err := quantity.setValue(value); err != nil {
		return Quantity{}, err
	}

	return quantity, nil
}

// ZeroQuantity creates a Quantity of zero.
func ZeroQuantity() Quantity {
	quantity, _ := NewQuantity(0)
	return quantity
}

// Validate checks that the Quantity was created through a constructor.
func (q Quantity) Validate() error {
	return q.guard.Validate(ErrQuantityIsNotConstructed)
}

// Value returns the integer amount.
func (q Quantity) Value() int {
	return q.value
}

// Add returns the sum of two quantities.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if err := q.validatePair(other); err != nil {
		return Quantity{}, err
	}

	return NewQuantity(q.value + other.value)
}

// Subtract returns the difference of two quantities.
// Fails with an insufficient-quantity error when other exceeds q,
// leaving no way to construct a negative amount.
func (q Quantity) Subtract(other Quantity) (Quantity, error) {
	if err := q.validatePair(other); err != nil {
		return Quantity{}, err
	}

	if other.value > q.value {
		return Quantity{}, errs.NewInsufficientQuantityError("quantity", q.value, other.value)
	}

	return NewQuantity(q.value - other.value)
}

// IsGreaterThan reports whether q exceeds other.
func (q Quantity) IsGreaterThan(other Quantity) bool {
	return q.value > other.value
}

// IsLessThan reports whether q is below other.
func (q Quantity) IsLessThan(other Quantity) bool {
	return q.value < other.value
}

// IsZero reports whether the quantity is zero.
func (q Quantity) IsZero() bool {
	return q.value == 0
}

// String returns the decimal representation of the amount.
func (q Quantity) String() string {
	return strconv.Itoa(q.value)
}

func (q Quantity) validatePair(other Quantity) error {
	if err := q.Validate(); err != nil {
		return err
	}
	return other.Validate()
}

func (q *Quantity) setValue(value int) error {
	if value < 0 {
		return errs.NewInvalidFormatError("quantity", strconv.Itoa(value))
	}

	q.value = value
	return nil
}
