// Package postgres provides the GORM-based Unit of Work for the dinner service.
// The unit of work owns one database transaction, hands out repositories bound to it
// and remembers every aggregate those repositories wrote.
//
// Once a transaction commits, every tracked order is announced through the
// configured ports.OrderEventPublisher. Publishing happens strictly after the commit:
// a rolled back transaction announces nothing, and a failed publish is logged
// without touching the committed data.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer uow.Rollback(ctx)
//
//	o, err := uow.OrderRepository().Get(ctx, orderID)
//	if err != nil {
//	    return err
//	}
//	if err := o.Confirm(); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance is meant for a single goroutine and a single command.
package postgres

import (
	"context"
	"log/slog"
	"time"

	"dinner/internal/adapters/out/postgres/customerrepo"
	"dinner/internal/adapters/out/postgres/orderrepo"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate written during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
	IsNew     bool
}

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database handle and one publisher.
type GormUnitOfWorkFactory struct {
	db        *gorm.DB
	publisher ports.OrderEventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
// A nil logger falls back to slog.Default.
func NewGormUnitOfWorkFactory(db *gorm.DB, publisher ports.OrderEventPublisher, logger *slog.Logger) *GormUnitOfWorkFactory {
	if logger == nil {
		logger = slog.Default()
	}
	return &GormUnitOfWorkFactory{
		db:        db,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// Create produces a new UnitOfWork with its own transaction state and tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		publisher:         f.publisher,
		logger:            f.logger,
		now:               f.now,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the events it produces.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	publisher         ports.OrderEventPublisher
	logger            *slog.Logger
	now               func() time.Time
	trackedAggregates []trackedAggregate
}

// Begin starts a database transaction. Calling Begin again while a transaction
// is open is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit makes the transaction permanent and then publishes a ChangedEvent for every
// order written inside it. Returns gorm.ErrInvalidTransaction when no transaction is open.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	tracked := uow.trackedAggregates
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if err != nil {
		return err
	}

	uow.publishOrderChanges(ctx, tracked)
	return nil
}

// Rollback discards the transaction and everything tracked inside it.
// Returns gorm.ErrInvalidTransaction when no transaction is open, so it is safe to defer
// after a successful Commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	uow.trackedAggregates = make([]trackedAggregate, 0)
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// CustomerRepository returns a customer repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn(), uow)
}

// OrderRepository returns an order repository bound to the open transaction,
// or to the plain connection when none is open.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// TrackAggregate registers an aggregate written by one of the repositories.
// isNew is true when the aggregate was inserted rather than updated.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any, isNew bool) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
		IsNew:     isNew,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// publishOrderChanges sends one event per order, in first-write order. An order written
// several times is announced once with its final state; it counts as created if any
// of the writes was an insert.
func (uow *GormUnitOfWork) publishOrderChanges(ctx context.Context, tracked []trackedAggregate) {
	if uow.publisher == nil {
		return
	}

	type change struct {
		order   *order.Order
		created bool
	}
	changes := make([]*change, 0, len(tracked))
	byID := make(map[kernel.UUID]*change, len(tracked))

	for _, t := range tracked {
		o, ok := t.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		if c, seen := byID[t.ID]; seen {
			c.order = o
			c.created = c.created || t.IsNew
			continue
		}
		c := &change{order: o, created: t.IsNew}
		byID[t.ID] = c
		changes = append(changes, c)
	}

	occurredAt := uow.now().UTC()
	for _, c := range changes {
		event := order.NewChangedEvent(c.order, c.created, occurredAt)
		if err := uow.publisher.PublishOrderChanged(ctx, event); err != nil {
			uow.logger.ErrorContext(ctx, "failed to publish order change",
				slog.String("order_id", event.OrderID.String()),
				slog.String("status", event.Status.String()),
				slog.Any("error", err))
		}
	}
}
