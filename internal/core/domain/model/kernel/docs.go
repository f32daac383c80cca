// Package kernel holds the value objects shared by every aggregate of the dinner domain:
// UUID identifiers, Currency codes, Money amounts and delivery Addresses.
//
// All of them are immutable and carry a constructor guard, so a zero value built with a
// struct literal fails Validate instead of silently acting as a valid object.
package kernel
