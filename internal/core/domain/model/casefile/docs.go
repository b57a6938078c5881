// Package casefile contains the customer case aggregate.
//
// A Case tracks a customer issue (complaint, return request, damage claim,
// inquiry, technical issue) from the moment it is opened until it is closed.
// The aggregate consists of:
//   - Case: the aggregate root holding the customer reference, an optional
//     order reference, the issue description, and resolution details
//   - CaseType: the kind of issue the case covers
//   - Priority: the urgency assigned by the prioritization rules
//   - Status: the case lifecycle state machine
//
// Cases reference customers and orders by identifier only; they never own
// those aggregates.
package casefile
