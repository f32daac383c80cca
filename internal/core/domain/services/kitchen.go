package services

import (
	"time"

	"dinner/internal/core/domain/model/order"
)

// DeliveryAllowance is added to the kitchen time when a confirmed order gets its
// estimated delivery time.
const DeliveryAllowance = 30 * time.Minute

// Kitchen is a domain service that times an order's way through preparation.
//
// Business rules:
//   - A confirmed order is promised for confirmation time + total preparation time + DeliveryAllowance
//   - A confirmed order starts preparing on the next kitchen step
//   - A preparing order becomes ready once its preparation time, counted from the order time, has elapsed
//
// Example usage:
//
//	kitchen := services.NewKitchen()
//	if err := kitchen.Confirm(o, time.Now()); err != nil {
//	    return err
//	}
//	moved, err := kitchen.Advance(o, time.Now())
type Kitchen struct{}

func NewKitchen() Kitchen {
	return Kitchen{}
}

// Confirm confirms o at instant at and sets its estimated delivery time.
// The order is left untouched when the confirmation is rejected.
func (k Kitchen) Confirm(o *order.Order, at time.Time) error {
	if err := o.Confirm(); err != nil {
		return err
	}
	o.SetEstimatedDeliveryTime(k.EstimateDelivery(o, at))
	return nil
}

// EstimateDelivery is the delivery time promised for o when it is confirmed at instant at.
func (k Kitchen) EstimateDelivery(o *order.Order, at time.Time) time.Time {
	return at.Add(preparationTime(o) + DeliveryAllowance)
}

// Advance moves o at most one kitchen step forward and reports whether its status changed.
// Orders outside Confirmed and Preparing are never moved.
func (k Kitchen) Advance(o *order.Order, now time.Time) (bool, error) {
	switch o.Status() {
	case order.Confirmed:
		return true, o.StartPreparing()
	case order.Preparing:
		if now.Before(o.OrderTime().Add(preparationTime(o))) {
			return false, nil
		}
		return true, o.MarkReady()
	default:
		return false, nil
	}
}

func preparationTime(o *order.Order) time.Duration {
	return time.Duration(o.TotalPreparationTimeMinutes()) * time.Minute
}
