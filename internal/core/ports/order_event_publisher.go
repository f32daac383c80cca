package ports

import (
	"context"

	"dinner/internal/core/domain/model/order"
)

// OrderEventPublisher announces committed order changes to other systems.
// Delivery is best effort: a failure is reported but never undoes the committed change.
type OrderEventPublisher interface {
	PublishOrderChanged(ctx context.Context, event order.ChangedEvent) error
	Close() error
}
