// Package customer implements the Customer aggregate: a validated contact record with a
// default delivery address and an activation status.
//
// Only Active customers may open new orders; that rule is enforced by the order use cases,
// not here, since status changes themselves are unconditional.
package customer
