// Package ports defines the contracts between the dinner domain core and its infrastructure:
// repositories, the unit of work and the event publisher.
package ports

import (
	"context"
	"time"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order is always stored and loaded together with all of its order items.
type OrderRepository interface {
	// Add persists a new order aggregate.
	// Returns errs.ErrObjectAlreadyExists when the id is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored state of an existing order, including its item set.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get loads an order by id. Inside a transaction the row stays locked until commit or
	// rollback, which serializes concurrent commands on the same order.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus returns every order in one of statuses, oldest first. Orders locked by
	// another transaction are skipped, the returned ones stay locked until commit or rollback.
	GetAllInStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error)

	// GetPendingOlderThan returns Pending orders placed before cutoff, with the same locking
	// as GetAllInStatus.
	GetPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
