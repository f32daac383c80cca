package order

import (
	"errors"
	"fmt"
	"strings"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/pkg/errs"
	"dinner/internal/pkg/guard"
)

const (
	minQuantity = 1
	maxQuantity = 100
)

// ErrOrderItemIsNotConstructed is returned when an OrderItem was not built by NewOrderItem or RestoreOrderItem.
var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem constructor")

// OrderItem is one line of an order: a product, a quantity and the unit price captured when
// the line was created. Later catalog price changes do not affect the line.
type OrderItem struct {
	id                         kernel.UUID
	product                    menu.Product
	productName                string
	productKind                string
	unitPrice                  kernel.Money
	quantity                   int
	unitPreparationTimeMinutes int
	guard                      guard.ConstructorGuard
}

// NewOrderItem snapshots the product's name, kind, unit price and preparation time.
// Quantity must be between 1 and 100.
func NewOrderItem(id kernel.UUID, product menu.Product, quantity int) (*OrderItem, error) {
	if product == nil {
		return nil, errs.NewValueIsRequiredError("product")
	}

	unitPrice, err := product.UnitPrice()
	if err != nil {
		return nil, err
	}

	item, err := RestoreOrderItem(
		id,
		product.Name(),
		product.ProductKind(),
		unitPrice,
		quantity,
		product.PreparationTimeMinutes(),
	)
	if err != nil {
		return nil, err
	}

	item.product = product
	return item, nil
}

// RestoreOrderItem rebuilds a persisted line. The original product is not available,
// so Product returns nil.
func RestoreOrderItem(
	id kernel.UUID,
	productName, productKind string,
	unitPrice kernel.Money,
	quantity int,
	unitPreparationTimeMinutes int,
) (*OrderItem, error) {
	item := &OrderItem{
		productKind: strings.TrimSpace(productKind),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setProductName(productName),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
		item.setUnitPreparationTime(unitPreparationTimeMinutes),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *OrderItem) Validate() error {
	if i == nil {
		return ErrOrderItemIsNotConstructed
	}
	return i.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (i *OrderItem) ID() kernel.UUID {
	return i.id
}

// Product is the catalog object the line was built from, or nil for a restored line.
func (i *OrderItem) Product() menu.Product {
	return i.product
}

func (i *OrderItem) ProductName() string {
	return i.productName
}

func (i *OrderItem) ProductKind() string {
	return i.productKind
}

func (i *OrderItem) UnitPrice() kernel.Money {
	return i.unitPrice
}

func (i *OrderItem) Quantity() int {
	return i.quantity
}

func (i *OrderItem) Currency() kernel.Currency {
	return i.unitPrice.Currency()
}

// TotalPrice is unit price times quantity.
func (i *OrderItem) TotalPrice() kernel.Money {
	return i.unitPrice.Times(i.quantity)
}

func (i *OrderItem) UnitPreparationTimeMinutes() int {
	return i.unitPreparationTimeMinutes
}

// PreparationTimeMinutes is the unit preparation time times quantity.
func (i *OrderItem) PreparationTimeMinutes() int {
	return i.unitPreparationTimeMinutes * i.quantity
}

func (i *OrderItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *OrderItem) setProductName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("productName")
	}
	i.productName = name
	return nil
}

func (i *OrderItem) setUnitPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("unitPrice", err)
	}
	if price.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", price))
	}
	i.unitPrice = price
	return nil
}

func (i *OrderItem) setQuantity(quantity int) error {
	if quantity < minQuantity || quantity > maxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, minQuantity, maxQuantity)
	}
	i.quantity = quantity
	return nil
}

func (i *OrderItem) setUnitPreparationTime(minutes int) error {
	if minutes < 0 {
		return errs.NewValueIsOutOfRangeError("preparationTimeMinutes", minutes, 0, "unbounded")
	}
	i.unitPreparationTimeMinutes = minutes
	return nil
}
