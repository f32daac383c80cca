package commands

import (
	"context"
)

// CancelStalePendingOrdersCommandHandler abandons orders nobody confirmed in time.
// All cancellations of one run share a single transaction.
type CancelStalePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCancelStalePendingOrdersCommandHandler(uowFactory OrderUoWFactory) CancelStalePendingOrdersCommandHandler {
	return CancelStalePendingOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the number of cancelled orders.
func (h CancelStalePendingOrdersCommandHandler) Handle(
	ctx context.Context,
	cmd CancelStalePendingOrdersCommand,
) (int, error) {
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
	stale, err := orderRepo.GetPendingOlderThan(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}
	if len(stale) == 0 {
		return 0, nil
	}

	for _, o := range stale {
		if err = o.Cancel(); err != nil {
			return 0, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
