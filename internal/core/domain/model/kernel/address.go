package kernel

import (
	"errors"
	"fmt"
	"strings"

	"webshop/internal/pkg/errs"
	"webshop/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when attempting to use an improperly
// initialized Address.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"Address must be created via NewAddress constructor")

// Address is a postal address. All four components are required and
// non-blank; each is trimmed on construction.
type Address struct { //nolint:recvcheck //using for validation
	street  string
	city    string
	zipCode string
	country string

	guard guard.ConstructorGuard
}

// NewAddress creates an Address from its components.
// Any blank component fails with an invalid-format error naming the field;
// failures for multiple fields are joined.
func NewAddress(street, city, zipCode, country string) (Address, error) {
	address := Address{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		address.setStreet(street),
		address.setCity(city),
		address.setZipCode(zipCode),
		address.setCountry(country),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate checks that the Address was created through the constructor.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street component.
func (a Address) Street() string {
	return a.street
}

// City returns the city component.
func (a Address) City() string {
	return a.city
}

// ZipCode returns the postal code component.
func (a Address) ZipCode() string {
	return a.zipCode
}

// Country returns the country component.
func (a Address) Country() string {
	return a.country
}

// IsEqual compares two addresses component-wise.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street &&
		a.city == other.city &&
		a.zipCode == other.zipCode &&
		a.country == other.country
}

// String returns the address as a single line, e.g. "1 Main St, Springfield 12345, US".
func (a Address) String() string {
	return fmt.Sprintf("%s, %s %s, %s", a.street, a.city, a.zipCode, a.country)
}

func (a *Address) setStreet(street string) error {
	trimmed := strings.TrimSpace(street)
	if trimmed == "" {
		return errs.NewInvalidFormatError("street", street)
	}
	a.street = trimmed
	return nil
}

func (a *Address) setCity(city string) error {
	trimmed := strings.TrimSpace(city)
	if trimmed == "" {
		return errs.NewInvalidFormatError("city", city)
	}
	a.city = trimmed
	return nil
}

func (a *Address) setZipCode(zipCode string) error {
	trimmed := strings.TrimSpace(zipCode)
	if trimmed == "" {
		return errs.NewInvalidFormatError("zipCode", zipCode)
	}
	a.zipCode = trimmed
	return nil
}

func (a *Address) setCountry(country string) error {
	trimmed := strings.TrimSpace(country)
	if trimmed == "" {
		return errs.NewInvalidFormatError("country", country)
	}
	a.country = trimmed
	return nil
}
