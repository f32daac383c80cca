package customerrepo

import (
	"context"

	"dinner/internal/adapters/out/postgres/pgerrs"
	"dinner/internal/core/domain/model/customer"
	"dinner/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any, isNew bool)
}

func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "customer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate, true)
	return nil
}

func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "email", "phone_number", "address_street", "address_city", "address_state",
			"address_postal_code", "address_country", "status", "updated_at").
		Updates(&dto)
	if result.Error != nil {
		return pgerrs.Translate(result.Error, "customer", aggregate.ID().String())
	}

	if result.RowsAffected == 0 {
		return pgerrs.Translate(gorm.ErrRecordNotFound, "customer", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate, false)
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		return nil, pgerrs.Translate(err, "customer", id.String())
	}

	return toDomain(dto)
}
