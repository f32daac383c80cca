package customer

import (
	"fmt"

	"dinner/internal/pkg/errs"
)

// Status is the activation state of a customer account.
// Changes between statuses are unconditional: any status may follow any other.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota
	// Active customers may place orders.
	Active
	// Inactive customers have closed or paused their account.
	Inactive
	// Suspended customers are blocked by the business.
	Suspended
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Active:    "Active",
		Inactive:  "Inactive",
		Suspended: "Suspended",
	}
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ParseStatus maps a persisted status name back to its value.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}
