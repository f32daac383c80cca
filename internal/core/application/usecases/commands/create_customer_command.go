package commands

import (
	"errors"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CreateCustomerCommand registers a new customer with a default delivery address.
// Contact details are checked by the customer aggregate; the command only checks presence.
//
// Example:
//
//	addr, _ := kernel.NewAddress("10 Downing Street", "London", "", "SW1A 2AA", "UK")
//	cmd, err := NewCreateCustomerCommand(kernel.NewUUID(), "Jane", "jane@example.com", "442079460000", addr)
//	if err != nil {
//	    return fmt.Errorf("invalid customer data: %w", err)
//	}
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID  kernel.UUID
	name        string
	email       string
	phoneNumber string
	address     kernel.Address

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(
	customerID kernel.UUID,
	name, email, phoneNumber string,
	address kernel.Address,
) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		name:        name,
		email:       email,
		phoneNumber: phoneNumber,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		requireText("name", name),
		requireText("email", email),
		requireText("phoneNumber", phoneNumber),
		cmd.setAddress(address),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) Email() string {
	return c.email
}

func (c CreateCustomerCommand) PhoneNumber() string {
	return c.phoneNumber
}

func (c CreateCustomerCommand) Address() kernel.Address {
	return c.address
}

func (c *CreateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("address", err)
	}
	c.address = address
	return nil
}
