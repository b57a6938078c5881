package commands

import "errors"

// Orchestration-level failures surfaced to callers. These sit above the
// value-object and entity errors: they describe why a whole use case was
// aborted rather than which field was malformed.
var (
	// ErrInvalidOrder means the order failed cross-entity validation:
	// it has no items or references products that are missing or out of
	// stock. No side effects occur on this path.
	ErrInvalidOrder = errors.New("invalid order")

	// ErrPaymentFailed means the payment gateway declined the charge.
	// The order is cancelled before this error reaches the caller; no
	// confirmation is sent.
	ErrPaymentFailed = errors.New("payment failed")

	// ErrOrderAlreadyProcessed means processing was requested for an order
	// that already left Pending status.
	ErrOrderAlreadyProcessed = errors.New("order already processed")

	// ErrOrderNotCancellable means cancellation was requested for an order
	// whose fulfillment already started.
	ErrOrderNotCancellable = errors.New("order is not cancellable")
)
