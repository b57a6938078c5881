package kernel

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every Money amount is rounded to.
const moneyScale = 2

// ErrMoneyIsNotConstructed is returned when attempting to use an improperly
// initialized Money. Money must be created via NewMoney, NewMoneyFromFloat,
// or ZeroMoney.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"Money must be created via NewMoney, NewMoneyFromFloat, or ZeroMoney constructors")

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// Money represents a monetary amount in a single currency.
// The amount is a fixed-point decimal rounded half-up to two decimal places
// at construction and after every arithmetic operation. Money is immutable;
// arithmetic returns new instances.
//
// All binary operations (Add, Subtract, IsGreaterThan, IsLessThan) require
// both operands to carry the same currency and fail with a currency-mismatch
// error otherwise. Equality is value-based: amounts are compared numerically,
// not by representation, so 10.0 and 10.00 are equal.
//
// Example:
//
//	price, err := kernel.NewMoneyFromFloat(19.99, "USD")
//	if err != nil {
//	    // handle validation error
//	}
//	total, err := price.Multiply(3)
//	// total is 59.97 USD
type Money struct { //nolint:recvcheck //using for validation
	amount   decimal.Decimal
	currency string

	guard guard.ConstructorGuard
}

// NewMoney creates Money from a decimal amount and an ISO 4217 currency code.
// The currency code is trimmed and uppercased before validation; the amount
// is rounded half-up to two decimal places.
func NewMoney(amount decimal.Decimal, currency string) (Money, error) {
	money := Money{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(money.setAmount(amount), money.setCurrency(currency)); err != nil {
		return Money{}, err
	}

	return money, nil
}

// NewMoneyFromFloat creates Money from a float amount.
// Convenient for literals; the amount passes through the same rounding rule.
func NewMoneyFromFloat(amount float64, currency string) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount), currency)
}

// ZeroMoney creates a zero amount in the given currency.
func ZeroMoney(currency string) (Money, error) {
	return NewMoney(decimal.Zero, currency)
}

// Validate checks that the Money was created through a constructor.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// Amount returns the rounded decimal amount.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the ISO 4217 currency code.
func (m Money) Currency() string {
	return m.currency
}

// Add returns the sum of two amounts in the same currency.
// Fails with a currency-mismatch error if the currencies differ.
func (m Money) Add(other Money) (Money, error) {
	if err := m.validateSameCurrency(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Add(other.amount), m.currency)
}

// Subtract returns the difference of two amounts in the same currency.
// The result may be negative; callers guarding non-negativity must check it.
func (m Money) Subtract(other Money) (Money, error) {
	if err := m.validateSameCurrency(other); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Sub(other.amount), m.currency)
}

// Multiply scales the amount by an integer quantity and re-rounds.
func (m Money) Multiply(quantity int) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Mul(decimal.NewFromInt(int64(quantity))), m.currency)
}

// MultiplyRate scales the amount by a fractional factor and re-rounds.
// Used for percentage computations such as discounts.
func (m Money) MultiplyRate(rate float64) (Money, error) {
	if err := m.Validate(); err != nil {
		return Money{}, err
	}

	return NewMoney(m.amount.Mul(decimal.NewFromFloat(rate)), m.currency)
}

// IsGreaterThan reports whether m exceeds other.
// Fails with a currency-mismatch error if the currencies differ.
func (m Money) IsGreaterThan(other Money) (bool, error) {
	if err := m.validateSameCurrency(other); err != nil {
		return false, err
	}

	return m.amount.GreaterThan(other.amount), nil
}

// IsLessThan reports whether m is below other.
// Fails with a currency-mismatch error if the currencies differ.
func (m Money) IsLessThan(other Money) (bool, error) {
	if err := m.validateSameCurrency(other); err != nil {
		return false, err
	}

	return m.amount.LessThan(other.amount), nil
}

// IsEqual reports value equality: same currency and numerically equal amount.
// Differing currencies are simply unequal rather than an error.
func (m Money) IsEqual(other Money) bool {
	return m.currency == other.currency && m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// String returns the amount followed by the currency code, e.g. "19.99 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(moneyScale), m.currency)
}

func (m Money) validateSameCurrency(other Money) error {
	if err := errors.Join(m.Validate(), other.Validate()); err != nil {
		return err
	}

	if m.currency != other.currency {
		return errs.NewCurrencyMismatchError(m.currency, other.currency)
	}

	return nil
}

// setAmount rounds and stores the amount.
// Note: We intentionally use a pointer receiver here while public methods use
// value receivers, to enable self-encapsulated validation during construction.
func (m *Money) setAmount(amount decimal.Decimal) error {
	m.amount = amount.Round(moneyScale)
	return nil
}

func (m *Money) setCurrency(currency string) error {
	normalized := strings.ToUpper(strings.TrimSpace(currency))
	if !currencyPattern.MatchString(normalized) {
		return errs.NewInvalidFormatError("currency", currency)
	}

	m.currency = normalized
	return nil
}
