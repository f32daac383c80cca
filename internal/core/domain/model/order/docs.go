// Package order provides the Order aggregate of the dinner delivery domain together with its
// order lines and lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root that owns its lines and keeps subtotal and total consistent
//   - OrderItem: a line that snapshots a product's price and preparation time
//   - Status: the lifecycle Pending -> Confirmed -> Preparing -> Ready -> OutForDelivery -> Delivered,
//     with Cancelled reachable from any non-final status
//
// Key business rules:
//   - totalAmount always equals subtotal + tax + deliveryFee
//   - items and delivery address are frozen once the order is Delivered or Cancelled
//   - tax and delivery fee remain editable in any status
//   - an order must have at least one item to be confirmed
//
// Executable scenarios for pricing and lifecycle live in features/.
package order
