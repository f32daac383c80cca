// Package services provides domain services that apply business rules to orders
// beyond what a single aggregate method expresses.
//
// The package includes:
//   - Kitchen: confirms orders with a promised delivery time and moves them through
//     preparation as time passes
//
// Domain services are stateless and never touch storage; callers load and save the
// aggregates around them.
package services
