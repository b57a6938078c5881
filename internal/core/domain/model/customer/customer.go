// Package customer contains the customer aggregate with its tier rules.
package customer

import (
	"errors"
	"strings"
	"time"

	"webshop/internal/core/domain/model/kernel"
	"webshop/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer or RestoreCustomer factory methods.
var ErrCustomerIsNotConstructed = errors.New(
	"Customer must be created via NewCustomer or RestoreCustomer constructors")

// Customer is a registered web shop user. The tier determines discount
// eligibility during order processing; inactive customers keep their data
// but no longer place orders.
type Customer struct {
	id          kernel.UUID
	email       kernel.EmailAddress
	firstName   string
	lastName    string
	phoneNumber kernel.PhoneNumber
	address     kernel.Address

	customerType     Type
	registrationDate time.Time
	active           bool

	isConstructed bool
}

// NewCustomer registers a new active customer in the Regular tier.
func NewCustomer(
	id kernel.UUID,
	email kernel.EmailAddress,
	firstName string,
	lastName string,
	phoneNumber kernel.PhoneNumber,
	address kernel.Address,
	registrationDate time.Time,
) (*Customer, error) {
	c := &Customer{
		customerType:     TypeRegular,
		registrationDate: registrationDate,
		active:           true,
		isConstructed:    true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setEmail(email),
		c.setFirstName(firstName),
		c.setLastName(lastName),
		c.setPhoneNumber(phoneNumber),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs a Customer from persistence with its stored
// tier and activity flag.
func RestoreCustomer(
	id kernel.UUID,
	email kernel.EmailAddress,
	firstName string,
	lastName string,
	phoneNumber kernel.PhoneNumber,
	address kernel.Address,
	customerType Type,
	registrationDate time.Time,
	active bool,
) (*Customer, error) {
	c := &Customer{
		registrationDate: registrationDate,
		active:           active,
		isConstructed:    true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setEmail(email),
		c.setFirstName(firstName),
		c.setLastName(lastName),
		c.setPhoneNumber(phoneNumber),
		c.setAddress(address),
		c.setType(customerType),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}

	return nil
}

// IsEqual compares two customers by their unique identifiers.
func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the customer's unique identifier.
func (c *Customer) ID() kernel.UUID {
	return c.id
}

// Email returns the customer's email address.
func (c *Customer) Email() kernel.EmailAddress {
	return c.email
}

// FirstName returns the customer's first name.
func (c *Customer) FirstName() string {
	return c.firstName
}

// LastName returns the customer's last name.
func (c *Customer) LastName() string {
	return c.lastName
}

// FullName returns "firstName lastName".
func (c *Customer) FullName() string {
	return c.firstName + " " + c.lastName
}

// PhoneNumber returns the customer's phone number.
func (c *Customer) PhoneNumber() kernel.PhoneNumber {
	return c.phoneNumber
}

// Address returns the customer's address.
func (c *Customer) Address() kernel.Address {
	return c.address
}

// Type returns the customer tier.
func (c *Customer) Type() Type {
	return c.customerType
}

// RegistrationDate returns when the customer registered.
func (c *Customer) RegistrationDate() time.Time {
	return c.registrationDate
}

// IsActive reports whether the customer may place orders.
func (c *Customer) IsActive() bool {
	return c.active
}

// IsVIP reports whether the customer is in the VIP tier.
func (c *Customer) IsVIP() bool {
	return c.customerType == TypeVIP
}

// HasPremiumBenefits reports whether the customer's tier grants premium
// benefits (Premium and VIP).
func (c *Customer) HasPremiumBenefits() bool {
	return c.customerType == TypePremium || c.customerType == TypeVIP
}

// Upgrade moves the customer to a new tier.
func (c *Customer) Upgrade(customerType Type) error {
	return c.setType(customerType)
}

// Deactivate blocks the customer from placing orders.
func (c *Customer) Deactivate() {
	c.active = false
}

// Activate re-enables a deactivated customer.
func (c *Customer) Activate() {
	c.active = true
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setEmail(email kernel.EmailAddress) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}

func (c *Customer) setFirstName(firstName string) error {
	if strings.TrimSpace(firstName) == "" {
		return errs.NewValueIsRequiredError("firstName")
	}
	c.firstName = firstName
	return nil
}

func (c *Customer) setLastName(lastName string) error {
	if strings.TrimSpace(lastName) == "" {
		return errs.NewValueIsRequiredError("lastName")
	}
	c.lastName = lastName
	return nil
}

func (c *Customer) setPhoneNumber(phoneNumber kernel.PhoneNumber) error {
	if err := phoneNumber.Validate(); err != nil {
		return err
	}
	c.phoneNumber = phoneNumber
	return nil
}

func (c *Customer) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *Customer) setType(customerType Type) error {
	if err := customerType.Validate(); err != nil {
		return err
	}
	c.customerType = customerType
	return nil
}
