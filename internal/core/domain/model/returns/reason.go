package returns

import (
	"fmt"

	"webshop/internal/pkg/errs"
)

// Reason records why the customer is returning the goods.
type Reason int

const (
	// ReasonUnknown represents an invalid or undefined reason.
	ReasonUnknown Reason = iota

	// ReasonDefective covers goods that do not work.
	ReasonDefective

	// ReasonWrongItem covers mispicked shipments.
	ReasonWrongItem

	// ReasonNotAsDescribed covers goods that differ from their listing.
	ReasonNotAsDescribed

	// ReasonDamaged covers goods damaged in transit.
	ReasonDamaged

	// ReasonChangedMind covers returns without a product defect.
	ReasonChangedMind

	// ReasonTooLate covers deliveries that arrived past their promise date.
	ReasonTooLate
)

func getReasonStrings() map[Reason]string {
	return map[Reason]string{
		ReasonUnknown:        "Unknown",
		ReasonDefective:      "Defective",
		ReasonWrongItem:      "WrongItem",
		ReasonNotAsDescribed: "NotAsDescribed",
		ReasonDamaged:        "Damaged",
		ReasonChangedMind:    "ChangedMind",
		ReasonTooLate:        "TooLate",
	}
}

// Validate checks if the Reason is one of the defined reasons.
func (r Reason) Validate() error {
	if r == ReasonUnknown {
		return errs.NewValueIsInvalidErrorWithCause("reason is invalid",
			fmt.Errorf("%d is not a valid reason", r))
	}
	if _, ok := getReasonStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("reason is invalid",
			fmt.Errorf("%d is not a valid reason", r))
	}
	return nil
}

// String returns the human-readable name of the reason.
func (r Reason) String() string {
	if str, ok := getReasonStrings()[r]; ok {
		return str
	}
	return "Unknown"
}
