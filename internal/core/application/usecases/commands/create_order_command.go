package commands

import (
	"errors"
	"time"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand opens an empty Pending order for an active customer.
// When no delivery address is given the customer's default address is used.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), customerID, nil, kernel.USD, time.Now(), "")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	deliveryAddress *kernel.Address
	currency        kernel.Currency
	orderTime       time.Time
	notes           string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID, customerID kernel.UUID,
	deliveryAddress *kernel.Address,
	currency kernel.Currency,
	orderTime time.Time,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderTime: orderTime,
		notes:     notes,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCustomerID(customerID),
		cmd.setDeliveryAddress(deliveryAddress),
		cmd.setCurrency(currency),
		cmd.setOrderTime(orderTime),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// DeliveryAddress returns nil when the customer's default address should be used.
func (c CreateOrderCommand) DeliveryAddress() *kernel.Address {
	return c.deliveryAddress
}

func (c CreateOrderCommand) Currency() kernel.Currency {
	return c.currency
}

func (c CreateOrderCommand) OrderTime() time.Time {
	return c.orderTime
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerID", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address *kernel.Address) error {
	if address == nil {
		return nil
	}
	if err := address.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("deliveryAddress", err)
	}
	c.deliveryAddress = address
	return nil
}

func (c *CreateOrderCommand) setCurrency(currency kernel.Currency) error {
	if err := currency.Validate(); err != nil {
		return err
	}
	c.currency = currency
	return nil
}

func (c *CreateOrderCommand) setOrderTime(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("orderTime")
	}
	c.orderTime = t
	return nil
}
