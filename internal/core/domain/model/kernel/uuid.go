package kernel

import (
	"fmt"

	"dinner/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed indicates that a UUID was not built by one of the constructor functions.
// It is returned when validating the nil (zero-value) identifier.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError(
	"UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the opaque identifier of customers, orders and order lines.
// It wraps github.com/google/uuid so the domain never depends on the library's API directly.
//
// The zero value is invalid; build identifiers with NewUUID, UUIDFromString or UUIDFromBytes.
// A UUID is generated once and never changes, and entity equality compares only this value.
// UUID is a comparable value type and safe for concurrent use.
//
// Example usage:
//
//	// a fresh identifier for a new order
//	orderID := kernel.NewUUID()
//
//	// an identifier taken from a request path
//	orderID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    return err
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random (version 4) identifier.
// This is how new customers, orders and order lines get their identity.
//
// Example:
//
//	itemID := kernel.NewUUID()
//	fmt.Println(itemID.String()) // e.g. "550e8400-e29b-41d4-a716-446655440000"
func NewUUID() UUID {
	return UUID{id: uuid.New()}
}

// UUIDFromString parses an identifier from its textual form.
// Accepted formats:
//   - "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "{6ba7b810-9dad-11d1-80b4-00c04fd430c8}"
//   - "urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8"
//   - "6ba7b8109dad11d180b400c04fd430c8"
//
// The nil identifier parses but is rejected with ErrUUIDIsNotConstructed.
//
// Example:
//
//	id, err := kernel.UUIDFromString(ctx.Param("orderId"))
//	if err != nil {
//	    return fmt.Errorf("invalid order ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	parsed := UUID{id: id}
	if err = parsed.Validate(); err != nil {
		return UUID{}, err
	}
	return parsed, nil
}

// UUIDFromBytes restores an identifier from its 16-byte database form.
// It is the counterpart of Bytes and is used by the repositories when loading rows.
//
// Example:
//
//	id, err := kernel.UUIDFromBytes(dto.ID[:])
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}

	restored := UUID{id: id}
	if err = restored.Validate(); err != nil {
		return UUID{}, err
	}
	return restored, nil
}

// String returns the canonical hyphenated lower-case form.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the underlying google/uuid value for persistence and transport.
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both identifiers are the same value.
//
// Example:
//
//	if item.ID().IsEqual(itemID) {
//	    // found the line to remove
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate rejects the nil identifier with ErrUUIDIsNotConstructed.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
