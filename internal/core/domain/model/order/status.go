package order

import (
	"fmt"

	"webshop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct fulfillment workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered ──> Returned
//	   │            │
//	   └────────────┴──> Cancelled
//
// Cancelled and Returned are final states. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status when an order is first created.
	// Payment has not been taken yet.
	StatusPending

	// StatusConfirmed indicates payment succeeded and the order is accepted.
	StatusConfirmed

	// StatusProcessing indicates the warehouse is picking the order.
	StatusProcessing

	// StatusShipped indicates the order left the warehouse.
	StatusShipped

	// StatusDelivered indicates the order reached the customer.
	// Returns may only be opened against delivered orders.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before fulfillment.
	// Reachable from Pending and Confirmed only.
	StatusCancelled

	// StatusReturned indicates a delivered order came back.
	StatusReturned
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusPending:    "Pending",
		StatusConfirmed:  "Confirmed",
		StatusProcessing: "Processing",
		StatusShipped:    "Shipped",
		StatusDelivered:  "Delivered",
		StatusCancelled:  "Cancelled",
		StatusReturned:   "Returned",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:    "Pending",
		StatusConfirmed:  "Confirmed",
		StatusProcessing: "Processing",
		StatusShipped:    "Shipped",
		StatusDelivered:  "Delivered",
		StatusCancelled:  "Cancelled",
		StatusReturned:   "Returned",
	}
}

// Validate checks if the Status value is one of the defined order statuses.
// StatusUnknown (0) and any other values are invalid. Used to ensure Status
// values from external sources (database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer; safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsCancellable reports whether an order in this status may still be
// cancelled: only Pending and Confirmed qualify.
func (s Status) IsCancellable() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Confirm transitions the status to Confirmed.
// Valid only from Pending; payment must have been taken by the caller.
func (s Status) Confirm() (Status, error) {
	if s != StatusPending {
		return 0, s.transitionError("confirm")
	}
	return StatusConfirmed, nil
}

// StartProcessing transitions the status to Processing.
// Valid only from Confirmed.
func (s Status) StartProcessing() (Status, error) {
	if s != StatusConfirmed {
		return 0, s.transitionError("process")
	}
	return StatusProcessing, nil
}

// Ship transitions the status to Shipped.
// Valid only from Processing.
func (s Status) Ship() (Status, error) {
	if s != StatusProcessing {
		return 0, s.transitionError("ship")
	}
	return StatusShipped, nil
}

// Deliver transitions the status to Delivered.
// Valid only from Shipped.
func (s Status) Deliver() (Status, error) {
	if s != StatusShipped {
		return 0, s.transitionError("deliver")
	}
	return StatusDelivered, nil
}

// Cancel transitions the status to Cancelled.
// Valid from Pending and Confirmed only; once fulfillment starts the order
// can no longer be cancelled.
func (s Status) Cancel() (Status, error) {
	if !s.IsCancellable() {
		return 0, s.transitionError("cancel")
	}
	return StatusCancelled, nil
}

// MarkReturned transitions the status to Returned.
// Valid only from Delivered.
func (s Status) MarkReturned() (Status, error) {
	if s != StatusDelivered {
		return 0, s.transitionError("return")
	}
	return StatusReturned, nil
}

func (s Status) transitionError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action))
}
