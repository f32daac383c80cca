package customer

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

// ErrCustomerIsNotConstructed is returned when a Customer was not built by NewCustomer or RestoreCustomer.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

var phonePattern = regexp.MustCompile(`^[0-9]{10,15}$`)

// Customer is the aggregate root for a person who places dinner orders.
//
// Business rules:
//   - the identifier is assigned once and never changes
//   - name is non-empty after trimming
//   - email contains "@" followed later by "."
//   - phone number is 10 to 15 ASCII digits with no separators
//   - a new customer starts Active
//
// Two customers are equal when their identifiers match, whatever their other fields hold.
type Customer struct {
	id              kernel.UUID
	name            string
	email           string
	phoneNumber     string
	deliveryAddress kernel.Address
	status          Status
	guard           guard.ConstructorGuard
}

// NewCustomer validates every field and returns an Active customer.
// All validation failures are reported together.
//
// Example:
//
//	addr, _ := kernel.NewAddress("1 Main St", "Springfield", "IL", "62701", "US")
//	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada Lovelace", "ada@example.com", "5551234567", addr)
func NewCustomer(
	id kernel.UUID,
	name, email, phoneNumber string,
	deliveryAddress kernel.Address,
) (*Customer, error) {
	return RestoreCustomer(id, name, email, phoneNumber, deliveryAddress, Active)
}

// RestoreCustomer rebuilds a customer loaded from storage with its persisted status.
func RestoreCustomer(
	id kernel.UUID,
	name, email, phoneNumber string,
	deliveryAddress kernel.Address,
	status Status,
) (*Customer, error) {
	c := &Customer{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.SetName(name),
		c.SetEmail(email),
		c.SetPhoneNumber(phoneNumber),
		c.SetDeliveryAddress(deliveryAddress),
		c.setStatus(status),
	); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) IsEqual(other *Customer) bool {
	return other != nil && c.id.IsEqual(other.id)
}

func (c *Customer) ID() kernel.UUID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

// Email is stored trimmed. It contains an "@" followed later by a ".".
func (c *Customer) Email() string {
	return c.email
}

// PhoneNumber holds 10 to 15 digits with no separators, for example "5551234567".
func (c *Customer) PhoneNumber() string {
	return c.phoneNumber
}

// DeliveryAddress is the default address for new orders. An order may override it
// when it is created.
func (c *Customer) DeliveryAddress() kernel.Address {
	return c.deliveryAddress
}

func (c *Customer) Status() Status {
	return c.status
}

// IsActive reports whether the customer may open new orders.
//
// Example:
//
//	if !c.IsActive() {
//	    return fmt.Errorf("%w: %s", commands.ErrCustomerIsNotActive, c.ID())
//	}
func (c *Customer) IsActive() bool {
	return c.status == Active
}

func (c *Customer) Activate() {
	c.status = Active
}

func (c *Customer) Deactivate() {
	c.status = Inactive
}

// Suspend blocks new orders until Activate is called. Orders already placed are unaffected.
// Activate, Deactivate and Suspend are unconditional, so any status can move to any other.
func (c *Customer) Suspend() {
	c.status = Suspended
}

// SetName replaces the name. On error the customer is left unchanged.
func (c *Customer) SetName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

// SetEmail replaces the email address. Only the shape is checked: an "@" and a "." after it.
func (c *Customer) SetEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}

	at := strings.Index(email, "@")
	if at < 0 || !strings.Contains(email[at+1:], ".") {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}

	c.email = email
	return nil
}

func (c *Customer) SetPhoneNumber(phoneNumber string) error {
	phoneNumber = strings.TrimSpace(phoneNumber)
	if phoneNumber == "" {
		return errs.NewValueIsRequiredError("phoneNumber")
	}
	if !phonePattern.MatchString(phoneNumber) {
		return errs.NewValueIsInvalidErrorWithCause(
			"phoneNumber",
			fmt.Errorf("%q must be 10 to 15 digits", phoneNumber),
		)
	}
	c.phoneNumber = phoneNumber
	return nil
}

func (c *Customer) SetDeliveryAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("deliveryAddress", err)
	}
	c.deliveryAddress = address
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	c.status = status
	return nil
}
