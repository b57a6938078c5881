package casefile

import (
	"fmt"

	"webshop/internal/pkg/errs"
)

// Priority is the urgency level assigned to a case.
// Priorities are ordered: Low < Medium < High < Critical.
type Priority int

const (
	// PriorityUnknown represents an invalid or undefined priority.
	PriorityUnknown Priority = iota

	// PriorityLow is the default urgency for fresh, uncategorized cases.
	PriorityLow

	// PriorityMedium covers complaints and cases older than a day.
	PriorityMedium

	// PriorityHigh covers damage claims and cases older than two days.
	PriorityHigh

	// PriorityCritical marks cases that trigger immediate escalation.
	PriorityCritical
)

func getPriorityStrings() map[Priority]string {
	return map[Priority]string{
		PriorityUnknown:  "Unknown",
		PriorityLow:      "Low",
		PriorityMedium:   "Medium",
		PriorityHigh:     "High",
		PriorityCritical: "Critical",
	}
}

// Validate checks if the Priority is one of the defined levels.
func (p Priority) Validate() error {
	if p == PriorityUnknown {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
			fmt.Errorf("%d is not a valid priority", p))
	}
	if _, ok := getPriorityStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("priority is invalid",
			fmt.Errorf("%d is not a valid priority", p))
	}
	return nil
}

// String returns the human-readable name of the priority.
func (p Priority) String() string {
	if str, ok := getPriorityStrings()[p]; ok {
		return str
	}
	return "Unknown"
}

// IsAtLeast reports whether p is of the same or higher urgency than other.
func (p Priority) IsAtLeast(other Priority) bool {
	return p >= other
}
