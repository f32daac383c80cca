package commands

import (
	"errors"
	"time"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

var ErrAdvanceOrderStatusCommandIsNotConstructed = errors.New(
	"AdvanceOrderStatusCommand must be created via NewAdvanceOrderStatusCommand constructor",
)

// AdvanceOrderStatusCommand moves an order to an explicit target status.
// Whether the move is legal is decided by the order status machine, not here.
type AdvanceOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	target    order.Status
	changedAt time.Time

	guard guard.ConstructorGuard
}

func NewAdvanceOrderStatusCommand(
	orderID kernel.UUID,
	target order.Status,
	changedAt time.Time,
) (AdvanceOrderStatusCommand, error) {
	var atErr error
	if changedAt.IsZero() {
		atErr = errs.NewValueIsRequiredError("changedAt")
	}
	if err := errors.Join(orderID.Validate(), target.Validate(), atErr); err != nil {
		return AdvanceOrderStatusCommand{}, err
	}

	return AdvanceOrderStatusCommand{
		orderID:   orderID,
		target:    target,
		changedAt: changedAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderStatusCommandIsNotConstructed)
}

func (c AdvanceOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AdvanceOrderStatusCommand) Target() order.Status {
	return c.target
}

func (c AdvanceOrderStatusCommand) ChangedAt() time.Time {
	return c.changedAt
}
