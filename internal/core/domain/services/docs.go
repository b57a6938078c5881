// Package services contains stateless domain services implementing business
// rules that span entities or compute derived facts.
//
// Services in this package:
//   - OrderService: order validation against product availability, discount
//     calculation, and cancellation rules
//   - CaseService: case prioritization by type and age, return request
//     validation against the return window, and escalation rules
//   - ProductService: price-range filtering, special-handling detection,
//     and restock suggestions
//
// Services hold no mutable state of their own. CaseService carries an
// injected clock so age-based prioritization stays deterministic in tests.
package services
