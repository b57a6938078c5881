package kernel

import (
	"regexp"
	"strings"

	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"
)

// ErrEmailAddressIsNotConstructed is returned when attempting to use an
// improperly initialized EmailAddress.
var ErrEmailAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"EmailAddress must be created via NewEmailAddress constructor")

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)

// EmailAddress is a validated e-mail address, normalized to lowercase.
type EmailAddress struct { //nolint:recvcheck //using for validation
	value string

	guard guard.ConstructorGuard
}

// NewEmailAddress creates an EmailAddress from its raw string form.
// Fails with an invalid-format error when the input does not look like an
// e-mail address; valid input is lowercased and trimmed.
func NewEmailAddress(raw string) (EmailAddress, error) {
	email := EmailAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := email.setValue(raw); err != nil {
		return EmailAddress{}, err
	}

	return email, nil
}

// Validate checks that the EmailAddress was created through the constructor.
func (e EmailAddress) Validate() error {
	return e.guard.Validate(ErrEmailAddressIsNotConstructed)
}

// Value returns the normalized address.
func (e EmailAddress) Value() string {
	return e.value
}

// String implements fmt.Stringer.
func (e EmailAddress) String() string {
	return e.value
}

func (e *EmailAddress) setValue(raw string) error {
	if strings.TrimSpace(raw) == "" {
		return errs.NewInvalidFormatError("email", raw)
	}

	if !emailPattern.MatchString(raw) {
		return errs.NewInvalidFormatError("email", raw)
	}

	e.value = strings.ToLower(strings.TrimSpace(raw))
	return nil
}
