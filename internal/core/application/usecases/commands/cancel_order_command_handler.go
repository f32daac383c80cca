package commands

import (
	"context"

	"dinner/internal/core/domain/model/order"
)

type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Cancel()
	})
}
