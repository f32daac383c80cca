package commands

import (
	"context"

	"dinner/internal/core/domain/model/order"
	"dinner/internal/core/domain/services"
)

// AdvanceKitchenOrdersCommandHandler moves kitchen work forward by at most one step per order.
type AdvanceKitchenOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAdvanceKitchenOrdersCommandHandler(uowFactory OrderUoWFactory) AdvanceKitchenOrdersCommandHandler {
	return AdvanceKitchenOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of orders that changed status.
func (h AdvanceKitchenOrdersCommandHandler) Handle(ctx context.Context, cmd AdvanceKitchenOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	orders, err := orderRepo.GetAllInStatus(ctx, order.Confirmed, order.Preparing)
	if err != nil {
		return 0, err
	}

	kitchen := services.NewKitchen()
	advanced := 0
	for _, o := range orders {
		moved, stepErr := kitchen.Advance(o, cmd.Now())
		if stepErr != nil {
			return 0, stepErr
		}
		if !moved {
			continue
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
		advanced++
	}

	if advanced == 0 {
		return 0, nil
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return advanced, nil
}
