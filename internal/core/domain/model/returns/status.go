package returns

import (
	"fmt"

	"webshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a return.
//
// State transitions:
//
//	Requested ──┬──> Approved ──> ShippedBack ──> Received ──> Refunded ──> Completed
//	            └──> Rejected
//
// Rejected and Completed are final states.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusRequested is the initial status when a return is opened.
	StatusRequested

	// StatusApproved indicates the return passed the window check.
	StatusApproved

	// StatusRejected indicates the return was declined. Final.
	StatusRejected

	// StatusShippedBack indicates the customer sent the goods back.
	StatusShippedBack

	// StatusReceived indicates the warehouse received the goods.
	StatusReceived

	// StatusRefunded indicates the refund was paid out.
	StatusRefunded

	// StatusCompleted is the final state after bookkeeping finished.
	StatusCompleted
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "Unknown",
		StatusRequested:   "Requested",
		StatusApproved:    "Approved",
		StatusRejected:    "Rejected",
		StatusShippedBack: "ShippedBack",
		StatusReceived:    "Received",
		StatusRefunded:    "Refunded",
		StatusCompleted:   "Completed",
	}
}

// Validate checks if the Status value is one of the defined return statuses.
func (s Status) Validate() error {
	if s == StatusUnknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Approve transitions the status to Approved.
// Valid only from Requested.
func (s Status) Approve() (Status, error) {
	if s != StatusRequested {
		return 0, s.transitionError("approve")
	}
	return StatusApproved, nil
}

// Reject transitions the status to Rejected.
// Valid only from Requested.
func (s Status) Reject() (Status, error) {
	if s != StatusRequested {
		return 0, s.transitionError("reject")
	}
	return StatusRejected, nil
}

// MarkShippedBack transitions the status to ShippedBack.
// Valid only from Approved.
func (s Status) MarkShippedBack() (Status, error) {
	if s != StatusApproved {
		return 0, s.transitionError("ship back")
	}
	return StatusShippedBack, nil
}

// MarkReceived transitions the status to Received.
// Valid only from ShippedBack.
func (s Status) MarkReceived() (Status, error) {
	if s != StatusShippedBack {
		return 0, s.transitionError("receive")
	}
	return StatusReceived, nil
}

// MarkRefunded transitions the status to Refunded.
// Valid only from Received.
func (s Status) MarkRefunded() (Status, error) {
	if s != StatusReceived {
		return 0, s.transitionError("refund")
	}
	return StatusRefunded, nil
}

// Complete transitions the status to Completed.
// Valid only from Refunded.
func (s Status) Complete() (Status, error) {
	if s != StatusRefunded {
		return 0, s.transitionError("complete")
	}
	return StatusCompleted, nil
}

func (s Status) transitionError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action))
}
