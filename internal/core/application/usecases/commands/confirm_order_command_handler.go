package commands

import (
	"context"

	"dinner/internal/core/domain/model/order"
	"dinner/internal/core/domain/services"
)

// ConfirmOrderCommandHandler confirms orders and promises a delivery time.
//
// Example:
//
//	cmd, _ := NewConfirmOrderCommand(orderID, time.Now())
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrOrderIsEmpty):
//	    // nothing to cook yet
//	case errors.Is(err, errs.ErrInvalidStateTransition):
//	    // already confirmed or cancelled
//	}
type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle confirms the order and sets its estimated delivery time to
// confirmedAt + total preparation time + services.DeliveryAllowance.
func (h ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return services.NewKitchen().Confirm(o, cmd.ConfirmedAt())
	})
}
