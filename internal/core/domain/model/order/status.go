package order

import (
	"fmt"
	"slices"

	"dinner/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Preparing ──> Ready ──> OutForDelivery ──> Delivered
//	   │            │             │           │              │
//	   └────────────┴─────────────┴───────────┴──────────────┴──────> Cancelled
//
// Delivered and Cancelled are final. No step may be skipped.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is being assembled.
	Pending

	// Confirmed orders have been accepted and wait for the kitchen.
	Confirmed

	// Preparing orders are being cooked.
	Preparing

	// Ready orders wait for pickup.
	Ready

	// OutForDelivery orders are on their way.
	OutForDelivery

	// Delivered is final.
	Delivered

	// Cancelled is final and reachable from every non-final status.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Confirmed:      "Confirmed",
		Preparing:      "Preparing",
		Ready:          "Ready",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
		Cancelled:      "Cancelled",
	}
}

// getTransitions returns the legal successors of every status.
// A status missing from the map, or mapped to nothing, has no successors.
func getTransitions() map[Status][]Status {
	//nolint:exhaustive // final and unknown statuses have no successors
	return map[Status][]Status{
		Pending:        {Confirmed, Cancelled},
		Confirmed:      {Preparing, Cancelled},
		Preparing:      {Ready, Cancelled},
		Ready:          {OutForDelivery, Cancelled},
		OutForDelivery: {Delivered, Cancelled},
	}
}

// Validate checks that s is one of the declared statuses other than Unknown.
//
// It is used to check Status values coming from outside the domain (database, API)
// before they reach an aggregate.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the name of the status. It is safe to call on any value.
//
// Example:
//
//	fmt.Println(order.OutForDelivery) // Output: "OutForDelivery"
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus maps a persisted or transported status name back to its value.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// Successors returns a copy of the statuses reachable in one step.
func (s Status) Successors() []Status {
	return slices.Clone(getTransitions()[s])
}

// CanTransitionTo is the only authority on transition legality.
func (s Status) CanTransitionTo(target Status) bool {
	return slices.Contains(getTransitions()[s], target)
}

// TransitionTo returns target when the move is legal.
//
// Returns:
//   - (target, nil) on a legal transition
//   - (Unknown, *errs.InvalidStateTransitionError) otherwise
//
// Example:
//
//	next, err := order.Pending.TransitionTo(order.Delivered)
//	// err: invalid state transition: cannot transition from Pending to Delivered
func (s Status) TransitionTo(target Status) (Status, error) {
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewInvalidStateTransitionError(s.String(), target.String())
	}
	return target, nil
}
