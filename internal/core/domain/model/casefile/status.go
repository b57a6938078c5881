package casefile

import (
	"fmt"

	"webshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a case.
//
// State transitions:
//
//	Open ──> InProgress ──┬──> WaitingForCustomer ──┐
//	  │          │        └──> Escalated ───────────┤
//	  │          │                  │               │
//	  │          └──────────────────┴───────────────┴──> Resolved ──> Closed
//	  └──> Escalated
//
// Escalated and WaitingForCustomer may move back to InProgress when an agent
// picks the case up again. Resolved cases can only be closed; Closed is final.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOpen is the initial status when a case is first created.
	StatusOpen

	// StatusInProgress indicates an agent is working the case.
	StatusInProgress

	// StatusWaitingForCustomer indicates the case is blocked on a customer reply.
	StatusWaitingForCustomer

	// StatusEscalated indicates the case was raised to a senior agent.
	StatusEscalated

	// StatusResolved indicates a resolution was recorded.
	StatusResolved

	// StatusClosed is the final state after the customer accepted the resolution.
	StatusClosed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:            "Unknown",
		StatusOpen:               "Open",
		StatusInProgress:         "InProgress",
		StatusWaitingForCustomer: "WaitingForCustomer",
		StatusEscalated:          "Escalated",
		StatusResolved:           "Resolved",
		StatusClosed:             "Closed",
	}
}

// Validate checks if the Status value is one of the defined case statuses.
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

// IsTerminal reports whether no further work happens on a case in this status.
func (s Status) IsTerminal() bool {
	return s == StatusResolved || s == StatusClosed
}

// StartProgress transitions the status to InProgress.
// Valid from Open, WaitingForCustomer, and Escalated. Moving an escalated
// case back to InProgress is allowed so ordinary handling can resume after
// an escalation review.
func (s Status) StartProgress() (Status, error) {
	switch s {
	case StatusOpen, StatusWaitingForCustomer, StatusEscalated:
		return StatusInProgress, nil
	default:
		return 0, s.transitionError("start progress on")
	}
}

// WaitForCustomer transitions the status to WaitingForCustomer.
// Valid only from InProgress.
func (s Status) WaitForCustomer() (Status, error) {
	if s != StatusInProgress {
		return 0, s.transitionError("park")
	}
	return StatusWaitingForCustomer, nil
}

// Escalate transitions the status to Escalated.
// Valid from Open and InProgress.
func (s Status) Escalate() (Status, error) {
	switch s {
	case StatusOpen, StatusInProgress:
		return StatusEscalated, nil
	default:
		return 0, s.transitionError("escalate")
	}
}

// Resolve transitions the status to Resolved.
// Valid from any non-terminal status.
func (s Status) Resolve() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, s.transitionError("resolve")
	}
	if s.IsTerminal() {
		return 0, s.transitionError("resolve")
	}
	return StatusResolved, nil
}

// Close transitions the status to Closed.
// Valid only from Resolved.
func (s Status) Close() (Status, error) {
	if s != StatusResolved {
		return 0, s.transitionError("close")
	}
	return StatusClosed, nil
}

func (s Status) transitionError(action string) error {
	return errs.NewValueIsInvalidErrorWithCause("status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s.String(), action))
}
