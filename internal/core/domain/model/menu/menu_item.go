package menu

import (
	"errors"
	"fmt"
	"strings"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

// ErrMenuItemIsNotConstructed is returned when a MenuItem was not built by NewMenuItem.
var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MenuItem is a priced catalog line. It is immutable except for its preparation time,
// which is filled in while a catalog or dinner bundle is assembled.
type MenuItem struct {
	name                   string
	description            string
	price                  kernel.Money
	itemType               ItemType
	preparationTimeMinutes int
	guard                  guard.ConstructorGuard
}

// NewMenuItem validates name, price (constructed, not negative) and itemType.
// Description is optional.
func NewMenuItem(name, description string, price kernel.Money, itemType ItemType) (*MenuItem, error) {
	item := &MenuItem{
		description: strings.TrimSpace(description),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setName(name),
		item.setPrice(price),
		item.setItemType(itemType),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (m *MenuItem) Validate() error {
	if m == nil {
		return ErrMenuItemIsNotConstructed
	}
	return m.guard.Validate(ErrMenuItemIsNotConstructed)
}

func (m *MenuItem) Name() string {
	return m.name
}

func (m *MenuItem) Description() string {
	return m.description
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

func (m *MenuItem) ItemType() ItemType {
	return m.itemType
}

func (m *MenuItem) PreparationTimeMinutes() int {
	return m.preparationTimeMinutes
}

// UnitPrice is the catalog price. It never fails for a constructed item.
func (m *MenuItem) UnitPrice() (kernel.Money, error) {
	return m.price, nil
}

func (m *MenuItem) ProductKind() string {
	return menuItemKind
}

func (m *MenuItem) SetPreparationTimeMinutes(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"preparationTimeMinutes", fmt.Errorf("%d is negative", minutes))
	}
	m.preparationTimeMinutes = minutes
	return nil
}

func (m *MenuItem) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("price", err)
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	m.price = price
	return nil
}

func (m *MenuItem) setItemType(itemType ItemType) error {
	if err := itemType.Validate(); err != nil {
		return err
	}
	m.itemType = itemType
	return nil
}
