package commands

import (
	"errors"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSetOrderChargesCommandIsNotConstructed = errors.New(
	"SetOrderChargesCommand must be created via NewSetOrderChargesCommand constructor",
)

// SetOrderChargesCommand records the externally computed tax and delivery fee of an order.
// Both amounts are priced in the order's currency.
type SetOrderChargesCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	tax         decimal.Decimal
	deliveryFee decimal.Decimal

	guard guard.ConstructorGuard
}

func NewSetOrderChargesCommand(orderID kernel.UUID, tax, deliveryFee decimal.Decimal) (SetOrderChargesCommand, error) {
	if err := errors.Join(
		orderID.Validate(),
		requireNonNegative("tax", tax),
		requireNonNegative("deliveryFee", deliveryFee),
	); err != nil {
		return SetOrderChargesCommand{}, err
	}

	return SetOrderChargesCommand{
		orderID:     orderID,
		tax:         tax,
		deliveryFee: deliveryFee,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c SetOrderChargesCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderChargesCommandIsNotConstructed)
}

func (c SetOrderChargesCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetOrderChargesCommand) Tax() decimal.Decimal {
	return c.tax
}

func (c SetOrderChargesCommand) DeliveryFee() decimal.Decimal {
	return c.deliveryFee
}
