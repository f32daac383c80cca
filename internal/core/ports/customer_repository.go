package ports

import (
	"context"

	"dinner/internal/core/domain/model/customer"
	"dinner/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer. Emails are unique: a duplicate yields errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *customer.Customer) error

	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get returns errs.ObjectNotFoundError when no customer has id.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)
}
