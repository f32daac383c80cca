package menu

import "dinner/internal/core/domain/model/kernel"

// Product is anything that can be put on an order line: a bare MenuItem or a whole Dinner.
// An order line snapshots these values when it is created.
type Product interface {
	Name() string
	UnitPrice() (kernel.Money, error)
	PreparationTimeMinutes() int
	// ProductKind names the concrete product, e.g. "MenuItem" or "FrenchDinner".
	ProductKind() string
}

const menuItemKind = "MenuItem"

var (
	_ Product = (*MenuItem)(nil)
	_ Product = (*Dinner)(nil)
)
