package commands

import (
	"errors"
	"time"

	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

var ErrCancelStalePendingOrdersCommandIsNotConstructed = errors.New(
	"CancelStalePendingOrdersCommand must be created via NewCancelStalePendingOrdersCommand constructor",
)

// CancelStalePendingOrdersCommand cancels every order still Pending that was placed before cutoff.
//
// Example:
//
//	cmd, _ := NewCancelStalePendingOrdersCommand(time.Now().Add(-30 * time.Minute))
//	cancelled, err := handler.Handle(ctx, cmd)
type CancelStalePendingOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

func NewCancelStalePendingOrdersCommand(cutoff time.Time) (CancelStalePendingOrdersCommand, error) {
	if cutoff.IsZero() {
		return CancelStalePendingOrdersCommand{}, errs.NewValueIsRequiredError("cutoff")
	}

	return CancelStalePendingOrdersCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c CancelStalePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelStalePendingOrdersCommandIsNotConstructed)
}

func (c CancelStalePendingOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}
