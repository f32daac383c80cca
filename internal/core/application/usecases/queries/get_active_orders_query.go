package queries

import (
	"errors"
	"time"

	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/pkg/guard"
)

var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery lists every order that has not reached a final status.
type GetActiveOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveOrdersQuery() GetActiveOrdersQuery {
	return GetActiveOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// GetActiveOrdersQueryResponse summarizes one active order for kitchen and dispatch boards.
type GetActiveOrdersQueryResponse struct {
	ID                    kernel.UUID
	CustomerID            kernel.UUID
	Status                string
	OrderTime             time.Time
	TotalAmount           string
	Currency              string
	ItemCount             int
	EstimatedDeliveryTime *time.Time
}
