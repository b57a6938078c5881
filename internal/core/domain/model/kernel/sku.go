package kernel

import (
	"regexp"
	"strings"

	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"
)

// ErrSKUIsNotConstructed is returned when attempting to use an improperly
// initialized SKU. SKUs must be created via NewSKU.
var ErrSKUIsNotConstructed = errs.NewValueIsRequiredError("SKU must be created via NewSKU constructor")

var skuPattern = regexp.MustCompile(`^[A-Z0-9]{8,15}$`)

// SKU is a stock keeping unit identifier: 8 to 15 alphanumeric characters.
// Input is trimmed and uppercased before validation, so "abcd1234" and
// "ABCD1234" construct the same SKU.
type SKU struct { //nolint:recvcheck //using for validation
	value string

	guard guard.ConstructorGuard
}

// NewSKU creates a SKU from its raw string form.
// Fails with an invalid-format error carrying the raw input when the
// normalized value does not match the SKU pattern.
func NewSKU(raw string) (SKU, error) {
	sku := SKU{
		guard: guard.NewConstructorGuard(),
	}

	if err := sku.setValue(raw); err != nil {
		return SKU{}, err
	}

	return sku, nil
}

// Validate checks that the SKU was created through the constructor.
func (s SKU) Validate() error {
	return s.guard.Validate(ErrSKUIsNotConstructed)
}

// Value returns the normalized SKU string.
func (s SKU) Value() string {
	return s.value
}

// IsEqual compares two SKUs by normalized value.
func (s SKU) IsEqual(other SKU) bool {
	return s.value == other.value
}

// String implements fmt.Stringer.
func (s SKU) String() string {
	return s.value
}

func (s *SKU) setValue(raw string) error {
	normalized := strings.ToUpper(strings.TrimSpace(raw))
	if !skuPattern.MatchString(normalized) {
		return errs.NewInvalidFormatError("sku", raw)
	}

	s.value = normalized
	return nil
}
