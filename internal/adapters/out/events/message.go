// Package events holds the broker independent parts of order change publishing:
// the JSON wire message, a no-op publisher and a metrics decorator.
package events

import (
	"strings"
	"time"

	"dinner/internal/core/domain/model/order"
)

// OrderChangedMessage is the JSON body sent to brokers for every committed order change.
// Amounts are decimal strings with two fraction digits.
type OrderChangedMessage struct {
	OrderID     string    `json:"orderId"`
	CustomerID  string    `json:"customerId"`
	Status      string    `json:"status"`
	TotalAmount string    `json:"totalAmount"`
	Currency    string    `json:"currency"`
	ItemCount   int       `json:"itemCount"`
	Created     bool      `json:"created"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func NewOrderChangedMessage(event order.ChangedEvent) OrderChangedMessage {
	return OrderChangedMessage{
		OrderID:     event.OrderID.String(),
		CustomerID:  event.CustomerID.String(),
		Status:      event.Status.String(),
		TotalAmount: event.TotalAmount.Amount().StringFixed(2),
		Currency:    event.TotalAmount.Currency().String(),
		ItemCount:   event.ItemCount,
		Created:     event.Created,
		OccurredAt:  event.OccurredAt.UTC(),
	}
}

// RoutingKey returns "order.<status>" in lower case, e.g. "order.outfordelivery".
func RoutingKey(status order.Status) string {
	return "order." + strings.ToLower(status.String())
}
