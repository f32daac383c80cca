// Package customerrepo maps the customer aggregate to the customers table.
package customerrepo

import (
	"time"

	"dinner/internal/core/domain/model/customer"
	"dinner/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer aggregates.
type CustomerDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(255);not null"`
	Email       string     `gorm:"type:varchar(320);not null;uniqueIndex"`
	PhoneNumber string     `gorm:"type:varchar(15);not null"`
	Address     AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	Status      int        `gorm:"type:smallint;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (CustomerDTO) TableName() string {
	return "customers"
}

// AddressDTO is the default delivery address embedded in the customer row.
type AddressDTO struct {
	Street     string `gorm:"type:varchar(255)"`
	City       string `gorm:"type:varchar(120)"`
	State      string `gorm:"type:varchar(120)"`
	PostalCode string `gorm:"type:varchar(20)"`
	Country    string `gorm:"type:varchar(60)"`
}

func fromDomain(c *customer.Customer) CustomerDTO {
	addr := c.DeliveryAddress()
	return CustomerDTO{
		ID:          c.ID().Bytes(),
		Name:        c.Name(),
		Email:       c.Email(),
		PhoneNumber: c.PhoneNumber(),
		Address: AddressDTO{
			Street:     addr.Street(),
			City:       addr.City(),
			State:      addr.State(),
			PostalCode: addr.PostalCode(),
			Country:    addr.Country(),
		},
		Status: int(c.Status()),
	}
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	addr, err := kernel.NewAddress(
		dto.Address.Street, dto.Address.City, dto.Address.State, dto.Address.PostalCode, dto.Address.Country)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.PhoneNumber, addr, customer.Status(dto.Status))
}
