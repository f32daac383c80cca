// Package guard provides ConstructorGuard, a marker embedded in domain types so that
// zero values built with a struct literal can be told apart from values produced by
// their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. A zero ConstructorGuard fails Validate.
//
//	type MenuItem struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (m MenuItem) Validate() error {
//	    return m.guard.Validate(ErrMenuItemIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that passes validation.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil) if the guard
// was not created by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
