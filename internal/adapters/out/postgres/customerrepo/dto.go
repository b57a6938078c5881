// Package customerrepo provides data transfer objects and mapping functions
// for customer persistence.
package customerrepo

import (
	"time"

	"webshop/internal/core/domain/model/customer"
	"webshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customers.
type CustomerDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email            string     `gorm:"size:255;uniqueIndex"`
	FirstName        string     `gorm:"size:100"`
	LastName         string     `gorm:"size:100"`
	PhoneNumber      string     `gorm:"size:20"`
	Address          AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	CustomerType     int
	RegistrationDate time.Time
	Active           bool
}

// TableName specifies the database table name for customer entities.
func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO represents the embedded home address within the customer table.
type AddressDTO struct {
	Street  string `gorm:"size:255"`
	City    string `gorm:"size:100"`
	ZipCode string `gorm:"size:20"`
	Country string `gorm:"size:100"`
}

// fromDomain converts a customer aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) CustomerDTO {
	address := aggregate.Address()

	return CustomerDTO{
		ID:          aggregate.ID().Bytes(),
		Email:       aggregate.Email().Value(),
		FirstName:   aggregate.FirstName(),
		LastName:    aggregate.LastName(),
		PhoneNumber: aggregate.PhoneNumber().Value(),
		Address: AddressDTO{
			Street:  address.Street(),
			City:    address.City(),
			ZipCode: address.ZipCode(),
			Country: address.Country(),
		},
		CustomerType:     int(aggregate.Type()),
		RegistrationDate: aggregate.RegistrationDate(),
		Active:           aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a customer aggregate using RestoreCustomer.
func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmailAddress(dto.Email)
	if err != nil {
		return nil, err
	}

	phoneNumber, err := kernel.NewPhoneNumber(dto.PhoneNumber)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City,
		dto.Address.ZipCode, dto.Address.Country)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, email, dto.FirstName, dto.LastName,
		phoneNumber, address, customer.Type(dto.CustomerType),
		dto.RegistrationDate, dto.Active)
}
