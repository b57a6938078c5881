// Package order provides domain entities and business logic for customer
// orders. It implements the Order aggregate root with lifecycle management
// and state transitions.
//
// The package includes:
//   - Order: the aggregate root managing identity, items, totals and lifecycle
//   - OrderItem: a line item owned by its order (lifetime bound to the order)
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - An order's total always equals the sum of its item totals after a recompute
//   - Status follows Pending -> Confirmed -> Processing -> Shipped -> Delivered,
//     with Cancelled reachable from Pending/Confirmed only and Returned reachable
//     after Delivered
//   - Orders are cancellable exactly while Pending or Confirmed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
