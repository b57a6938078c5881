package casefile

import (
	"fmt"

	"webshop/internal/pkg/errs"
)

// CaseType classifies the kind of customer issue a case covers.
// The type feeds into prioritization: damage claims always rank HIGH and
// complaints at least MEDIUM.
type CaseType int

const (
	// TypeUnknown represents an invalid or undefined case type.
	TypeUnknown CaseType = iota

	// TypeComplaint is a general customer complaint about an order or service.
	TypeComplaint

	// TypeReturnRequest accompanies a product return.
	TypeReturnRequest

	// TypeDamageClaim reports goods that arrived damaged.
	TypeDamageClaim

	// TypeGeneralInquiry is a question without an underlying problem.
	TypeGeneralInquiry

	// TypeTechnicalIssue reports a problem with the shop itself.
	TypeTechnicalIssue
)

func getCaseTypeStrings() map[CaseType]string {
	return map[CaseType]string{
		TypeUnknown:        "Unknown",
		TypeComplaint:      "Complaint",
		TypeReturnRequest:  "ReturnRequest",
		TypeDamageClaim:    "DamageClaim",
		TypeGeneralInquiry: "GeneralInquiry",
		TypeTechnicalIssue: "TechnicalIssue",
	}
}

// Validate checks if the CaseType is one of the defined types.
func (t CaseType) Validate() error {
	if t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("case type is invalid",
			fmt.Errorf("%d is not a valid case type", t))
	}
	if _, ok := getCaseTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("case type is invalid",
			fmt.Errorf("%d is not a valid case type", t))
	}
	return nil
}

// String returns the human-readable name of the case type.
func (t CaseType) String() string {
	if str, ok := getCaseTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
