package commands

import (
	"errors"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddDinnerToOrderCommandIsNotConstructed = errors.New(
	"AddDinnerToOrderCommand must be created via NewAddDinnerToOrderCommand constructor",
)

// AddDinnerToOrderCommand configures a dinner under a pricing policy and adds it to an order.
// The base price is a bare amount: it is priced in the order's currency.
// A zero serving style keeps the policy default.
//
// Example:
//
//	cmd, err := NewAddDinnerToOrderCommand(orderID, kernel.NewUUID(), menu.French,
//	    "Bistro night", "", decimal.NewFromInt(30), menu.UnknownServingStyle, 2)
type AddDinnerToOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	itemID       kernel.UUID
	policy       menu.Policy
	name         string
	description  string
	basePrice    decimal.Decimal
	servingStyle menu.ServingStyle
	quantity     int

	guard guard.ConstructorGuard
}

func NewAddDinnerToOrderCommand(
	orderID, itemID kernel.UUID,
	policy menu.Policy,
	name, description string,
	basePrice decimal.Decimal,
	servingStyle menu.ServingStyle,
	quantity int,
) (AddDinnerToOrderCommand, error) {
	cmd := AddDinnerToOrderCommand{
		orderID:      orderID,
		itemID:       itemID,
		policy:       policy,
		name:         name,
		description:  description,
		basePrice:    basePrice,
		servingStyle: servingStyle,
		quantity:     quantity,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
		policy.Validate(),
		requireText("name", name),
		requireNonNegative("basePrice", basePrice),
		cmd.validateServingStyle(),
		requirePositive("quantity", quantity),
	); err != nil {
		return AddDinnerToOrderCommand{}, err
	}

	return cmd, nil
}

func (c AddDinnerToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddDinnerToOrderCommandIsNotConstructed)
}

func (c AddDinnerToOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddDinnerToOrderCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddDinnerToOrderCommand) Policy() menu.Policy {
	return c.policy
}

func (c AddDinnerToOrderCommand) Name() string {
	return c.name
}

func (c AddDinnerToOrderCommand) Description() string {
	return c.description
}

func (c AddDinnerToOrderCommand) BasePrice() decimal.Decimal {
	return c.basePrice
}

// ServingStyle returns menu.UnknownServingStyle when the policy default applies.
func (c AddDinnerToOrderCommand) ServingStyle() menu.ServingStyle {
	return c.servingStyle
}

func (c AddDinnerToOrderCommand) Quantity() int {
	return c.quantity
}

func (c AddDinnerToOrderCommand) validateServingStyle() error {
	if c.servingStyle == menu.UnknownServingStyle {
		return nil
	}
	return c.servingStyle.Validate()
}
