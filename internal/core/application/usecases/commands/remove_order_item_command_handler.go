package commands

import (
	"context"

	"dinner/internal/core/domain/model/order"
)

type RemoveOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRemoveOrderItemCommandHandler(uowFactory OrderUoWFactory) RemoveOrderItemCommandHandler {
	return RemoveOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle removes the line and recomputes the totals. A final order still rejects the
// removal with order.ErrOrderIsImmutable even when the item is unknown.
func (h RemoveOrderItemCommandHandler) Handle(ctx context.Context, cmd RemoveOrderItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.RemoveOrderItem(o.FindOrderItem(cmd.ItemID()))
	})
}
