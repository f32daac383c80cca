package commands

import (
	"errors"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrAddMenuItemToOrderCommandIsNotConstructed = errors.New(
	"AddMenuItemToOrderCommand must be created via NewAddMenuItemToOrderCommand constructor",
)

// AddMenuItemToOrderCommand adds an a-la-carte menu item to an order.
// The price is a bare amount: it is priced in the order's currency.
type AddMenuItemToOrderCommand struct { //nolint:recvcheck //using for validation
	orderID                kernel.UUID
	itemID                 kernel.UUID
	name                   string
	description            string
	price                  decimal.Decimal
	itemType               menu.ItemType
	preparationTimeMinutes int
	quantity               int

	guard guard.ConstructorGuard
}

func NewAddMenuItemToOrderCommand(
	orderID, itemID kernel.UUID,
	name, description string,
	price decimal.Decimal,
	itemType menu.ItemType,
	preparationTimeMinutes, quantity int,
) (AddMenuItemToOrderCommand, error) {
	cmd := AddMenuItemToOrderCommand{
		orderID:                orderID,
		itemID:                 itemID,
		name:                   name,
		description:            description,
		price:                  price,
		itemType:               itemType,
		preparationTimeMinutes: preparationTimeMinutes,
		quantity:               quantity,
		guard:                  guard.NewConstructorGuard(),
	}

	var prepErr error
	if preparationTimeMinutes < 0 {
		prepErr = errs.NewValueIsOutOfRangeError("preparationTimeMinutes", preparationTimeMinutes, 0, "unbounded")
	}

	if err := errors.Join(
		orderID.Validate(),
		itemID.Validate(),
		requireText("name", name),
		requireNonNegative("price", price),
		itemType.Validate(),
		prepErr,
		requirePositive("quantity", quantity),
	); err != nil {
		return AddMenuItemToOrderCommand{}, err
	}

	return cmd, nil
}

func (c AddMenuItemToOrderCommand) Validate() error {
	return c.guard.Validate(ErrAddMenuItemToOrderCommandIsNotConstructed)
}

func (c AddMenuItemToOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddMenuItemToOrderCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c AddMenuItemToOrderCommand) Name() string {
	return c.name
}

func (c AddMenuItemToOrderCommand) Description() string {
	return c.description
}

func (c AddMenuItemToOrderCommand) Price() decimal.Decimal {
	return c.price
}

func (c AddMenuItemToOrderCommand) ItemType() menu.ItemType {
	return c.itemType
}

func (c AddMenuItemToOrderCommand) PreparationTimeMinutes() int {
	return c.preparationTimeMinutes
}

func (c AddMenuItemToOrderCommand) Quantity() int {
	return c.quantity
}
