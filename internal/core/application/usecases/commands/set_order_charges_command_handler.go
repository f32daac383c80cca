package commands

import (
	"context"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"
)

type SetOrderChargesCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewSetOrderChargesCommandHandler(uowFactory OrderUoWFactory) SetOrderChargesCommandHandler {
	return SetOrderChargesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces both charges. It is accepted in every status, final ones included.
func (h SetOrderChargesCommandHandler) Handle(ctx context.Context, cmd SetOrderChargesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return modifyOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		tax, err := kernel.NewMoney(cmd.Tax(), o.Currency())
		if err != nil {
			return err
		}
		fee, err := kernel.NewMoney(cmd.DeliveryFee(), o.Currency())
		if err != nil {
			return err
		}

		if err = o.SetTax(tax); err != nil {
			return err
		}
		return o.SetDeliveryFee(fee)
	})
}
