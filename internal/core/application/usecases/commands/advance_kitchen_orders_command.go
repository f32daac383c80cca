package commands

import (
	"errors"
	"time"

	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

var ErrAdvanceKitchenOrdersCommandIsNotConstructed = errors.New(
	"AdvanceKitchenOrdersCommand must be created via NewAdvanceKitchenOrdersCommand constructor",
)

// AdvanceKitchenOrdersCommand simulates the kitchen at instant now: confirmed orders start
// preparing, and preparing orders become ready once their preparation time has elapsed.
type AdvanceKitchenOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

func NewAdvanceKitchenOrdersCommand(now time.Time) (AdvanceKitchenOrdersCommand, error) {
	if now.IsZero() {
		return AdvanceKitchenOrdersCommand{}, errs.NewValueIsRequiredError("now")
	}

	return AdvanceKitchenOrdersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c AdvanceKitchenOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceKitchenOrdersCommandIsNotConstructed)
}

func (c AdvanceKitchenOrdersCommand) Now() time.Time {
	return c.now
}
