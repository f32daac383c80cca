package commands

import (
	"errors"
	"time"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand confirms a Pending order at the given instant.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	confirmedAt time.Time

	guard guard.ConstructorGuard
}

func NewConfirmOrderCommand(orderID kernel.UUID, confirmedAt time.Time) (ConfirmOrderCommand, error) {
	var atErr error
	if confirmedAt.IsZero() {
		atErr = errs.NewValueIsRequiredError("confirmedAt")
	}
	if err := errors.Join(orderID.Validate(), atErr); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		orderID:     orderID,
		confirmedAt: confirmedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ConfirmOrderCommand) ConfirmedAt() time.Time {
	return c.confirmedAt
}
