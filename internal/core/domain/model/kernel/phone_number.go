package kernel

import (
	"regexp"

	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"
)

// ErrPhoneNumberIsNotConstructed is returned when attempting to use an
// improperly initialized PhoneNumber.
var ErrPhoneNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"PhoneNumber must be created via NewPhoneNumber constructor")

var (
	phonePattern    = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)
	phoneSeparators = regexp.MustCompile(`[\s\-()]`)
)

// PhoneNumber is a validated phone number in E.164-like form.
// Whitespace, dashes and parentheses are stripped before validation, so
// "+1 (555) 123-4567" and "+15551234567" construct the same number.
type PhoneNumber struct { //nolint:recvcheck //using for validation
	value string

	guard guard.ConstructorGuard
}

// NewPhoneNumber creates a PhoneNumber from its raw string form.
// Fails with an invalid-format error when the stripped input does not match
// the phone pattern.
func NewPhoneNumber(raw string) (PhoneNumber, error) {
	phone := PhoneNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := phone.setValue(raw); err != nil {
		return PhoneNumber{}, err
	}

	return phone, nil
}

// Validate checks that the PhoneNumber was created through the constructor.
func (p PhoneNumber) Validate() error {
	return p.guard.Validate(ErrPhoneNumberIsNotConstructed)
}

// Value returns the normalized number.
func (p PhoneNumber) Value() string {
	return p.value
}

// String implements fmt.Stringer.
func (p PhoneNumber) String() string {
	return p.value
}

func (p *PhoneNumber) setValue(raw string) error {
	normalized := phoneSeparators.ReplaceAllString(raw, "")
	if !phonePattern.MatchString(normalized) {
		return errs.NewInvalidFormatError("phone", raw)
	}

	p.value = normalized
	return nil
}
