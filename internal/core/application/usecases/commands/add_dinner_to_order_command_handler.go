package commands

import (
	"context"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/core/domain/model/order"
)

// AddDinnerToOrderCommandHandler prices a dinner and appends it to an open order.
// The order item snapshots the dinner's unit price at this moment.
type AddDinnerToOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAddDinnerToOrderCommandHandler(uowFactory OrderUoWFactory) AddDinnerToOrderCommandHandler {
	return AddDinnerToOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AddDinnerToOrderCommandHandler) Handle(ctx context.Context, cmd AddDinnerToOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		basePrice, err := kernel.NewMoney(cmd.BasePrice(), o.Currency())
		if err != nil {
			return err
		}

		d, err := menu.NewDinner(cmd.Policy(), cmd.Name(), cmd.Description(), basePrice)
		if err != nil {
			return err
		}

		if cmd.ServingStyle() != menu.UnknownServingStyle {
			if err = d.SetServingStyle(cmd.ServingStyle()); err != nil {
				return err
			}
		}

		item, err := order.NewOrderItem(cmd.ItemID(), d, cmd.Quantity())
		if err != nil {
			return err
		}

		return o.AddOrderItem(item)
	})
}
