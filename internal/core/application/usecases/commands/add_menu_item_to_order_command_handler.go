package commands

import (
	"context"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/core/domain/model/order"
)

// AddMenuItemToOrderCommandHandler appends a single menu item line to an open order.
type AddMenuItemToOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddMenuItemToOrderCommandHandler(uowFactory OrderUoWFactory) AddMenuItemToOrderCommandHandler {
	return AddMenuItemToOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddMenuItemToOrderCommandHandler) Handle(ctx context.Context, cmd AddMenuItemToOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		price, err := kernel.NewMoney(cmd.Price(), o.Currency())
		if err != nil {
			return err
		}

		mi, err := menu.NewMenuItem(cmd.Name(), cmd.Description(), price, cmd.ItemType())
		if err != nil {
			return err
		}
		if err = mi.SetPreparationTimeMinutes(cmd.PreparationTimeMinutes()); err != nil {
			return err
		}

		item, err := order.NewOrderItem(cmd.ItemID(), mi, cmd.Quantity())
		if err != nil {
			return err
		}

		return o.AddOrderItem(item)
	})
}
