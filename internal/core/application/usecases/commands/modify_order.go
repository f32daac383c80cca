package commands

import (
	"context"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"
)

// modifyOrder loads one order under a row lock, applies change and stores the result in a
// single transaction. Nothing is written when change fails.
func modifyOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	change func(o *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = change(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
