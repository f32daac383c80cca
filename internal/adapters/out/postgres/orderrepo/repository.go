package orderrepo

import (
	"context"
	"time"

	"dinner/internal/adapters/out/postgres/pgerrs"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any, isNew bool)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order and its lines.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate, true)
	return nil
}

// Update rewrites the order row and replaces its lines. Lines removed from the aggregate
// are deleted.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	items := dto.Items
	dto.Items = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&OrderDTO{}).
			Where("id = ?", dto.ID).
			Select("*").
			Omit("id", "Items").
			Updates(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("order_id = ?", dto.ID).Delete(&OrderItemDTO{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			return tx.Create(&items).Error
		}
		return nil
	})
	if err != nil {
		return pgerrs.Translate(err, "order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate, false)
	return nil
}

// Get retrieves an order by ID and locks its row for the rest of the transaction.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.withItems(ctx).
		Clauses(lockRows()).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		return nil, pgerrs.Translate(err, "order", id.String())
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders in any of statuses, oldest first.
// Rows locked by another transaction are skipped; the rest stay locked until commit.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	if len(statuses) == 0 {
		return []*order.Order{}, nil
	}

	codes := make([]int, 0, len(statuses))
	for _, s := range statuses {
		codes = append(codes, int(s))
	}

	var dtos []OrderDTO
	if err := r.withItems(ctx).Clauses(skipLockedRows()).
		Where("status IN ?", codes).Order("order_time").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

// GetPendingOlderThan retrieves Pending orders placed before cutoff, skipping locked rows.
func (r *GormOrderRepository) GetPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.withItems(ctx).
		Clauses(skipLockedRows()).
		Where("status = ? AND order_time < ?", int(order.Pending), cutoff).
		Order("order_time").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainAll(dtos)
}

func (r *GormOrderRepository) withItems(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	})
}

func lockRows() clause.Locking {
	return clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: clause.CurrentTable}}
}

func skipLockedRows() clause.Locking {
	l := lockRows()
	l.Options = "SKIP LOCKED"
	return l
}

func toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
