package order

import (
	"time"

	"dinner/internal/core/domain/model/kernel"
)

// ChangedEvent is a snapshot of an order taken after a committed change.
// Created is true when the change stored the order for the first time.
type ChangedEvent struct {
	OrderID     kernel.UUID
	CustomerID  kernel.UUID
	Status      Status
	TotalAmount kernel.Money
	ItemCount   int
	Created     bool
	OccurredAt  time.Time
}

// NewChangedEvent captures the current state of o.
func NewChangedEvent(o *Order, created bool, occurredAt time.Time) ChangedEvent {
	return ChangedEvent{
		OrderID:     o.ID(),
		CustomerID:  o.CustomerID(),
		Status:      o.Status(),
		TotalAmount: o.TotalAmount(),
		ItemCount:   len(o.orderItems),
		Created:     created,
		OccurredAt:  occurredAt,
	}
}
