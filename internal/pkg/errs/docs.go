// Package errs provides the error taxonomy shared by the dinner ordering service.
//
// Validation failures (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError)
// are raised synchronously at the point of invalid input. Money arithmetic across
// currencies yields CurrencyMismatchError, and illegal lifecycle changes yield
// InvalidStateTransitionError. Lookups and inserts at the persistence boundary use
// ObjectNotFoundError and ObjectAlreadyExistsError.
//
// Each typed error unwraps to a package-level sentinel, so handlers classify with
// errors.Is and never inspect message text.
package errs
