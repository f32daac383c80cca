package commands

import (
	"context"
	"errors"
	"fmt"

	"dinner/internal/core/domain/model/order"
)

// ErrCustomerIsNotActive is returned when an inactive or suspended customer opens an order.
var ErrCustomerIsNotActive = errors.New("customer is not active")

// CreateOrderCommandHandler opens new orders on behalf of existing customers.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// the order is Pending and waiting for items
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the customer, builds the order and persists it in one transaction.
// Returns ErrCustomerIsNotActive for inactive or suspended customers.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if !c.IsActive() {
		return fmt.Errorf("%w: %s is %s", ErrCustomerIsNotActive, c.ID(), c.Status())
	}

	address := c.DeliveryAddress()
	if cmd.DeliveryAddress() != nil {
		address = *cmd.DeliveryAddress()
	}

	o, err := order.NewOrder(cmd.OrderID(), c, address, cmd.Currency(), cmd.OrderTime())
	if err != nil {
		return err
	}
	o.SetNotes(cmd.Notes())

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
