package commands

import (
	"context"

	"dinner/internal/core/domain/model/order"
	"dinner/internal/core/domain/services"
)

type AdvanceOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceOrderStatusCommandHandler(uowFactory OrderUoWFactory) AdvanceOrderStatusCommandHandler {
	return AdvanceOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle applies the transition. Confirming through this command also sets the
// estimated delivery time, exactly like ConfirmOrderCommandHandler.
func (h AdvanceOrderStatusCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if cmd.Target() == order.Confirmed {
			return services.NewKitchen().Confirm(o, cmd.ChangedAt())
		}
		return o.ChangeStatus(cmd.Target())
	})
}
