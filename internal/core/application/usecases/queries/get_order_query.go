// Package queries contains read-only operations. Handlers read straight from the database
// with raw SQL and return flat views; they never load aggregates.
package queries

import (
	"errors"
	"time"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with all of its lines.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full read model of an order.
// Amounts are decimal strings with two fraction digits in Currency.
type GetOrderQueryResponse struct {
	ID                          kernel.UUID
	CustomerID                  kernel.UUID
	Status                      string
	Currency                    string
	OrderTime                   time.Time
	Items                       []OrderItemView
	Subtotal                    string
	Tax                         string
	DeliveryFee                 string
	TotalAmount                 string
	DeliveryAddress             string
	EstimatedDeliveryTime       *time.Time
	Notes                       string
	TotalPreparationTimeMinutes int
}

// OrderItemView is one order line as shown to clients.
type OrderItemView struct {
	ID                     kernel.UUID
	ProductName            string
	ProductKind            string
	UnitPrice              string
	Quantity               int
	TotalPrice             string
	PreparationTimeMinutes int
}
