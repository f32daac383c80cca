package commands

import (
	"errors"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/guard"
)

var ErrRemoveOrderItemCommandIsNotConstructed = errors.New(
	"RemoveOrderItemCommand must be created via NewRemoveOrderItemCommand constructor",
)

// RemoveOrderItemCommand removes one line from an order. An unknown item id is not an error.
type RemoveOrderItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveOrderItemCommand(orderID, itemID kernel.UUID) (RemoveOrderItemCommand, error) {
	if err := errors.Join(orderID.Validate(), itemID.Validate()); err != nil {
		return RemoveOrderItemCommand{}, err
	}

	return RemoveOrderItemCommand{
		orderID: orderID,
		itemID:  itemID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c RemoveOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveOrderItemCommandIsNotConstructed)
}

func (c RemoveOrderItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RemoveOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}
