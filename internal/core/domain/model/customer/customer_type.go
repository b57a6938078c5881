package customer

import (
	"fmt"

	"webshop/internal/pkg/errs"
)

// Type is the customer tier. Tiers drive discount rates and benefit
// eligibility.
type Type int

const (
	// TypeUnknown represents an invalid or undefined tier.
	TypeUnknown Type = iota

	// TypeRegular is the default tier for new customers.
	TypeRegular

	// TypePremium grants premium benefits but not the VIP discount rate.
	TypePremium

	// TypeVIP grants premium benefits and the highest discount rate.
	TypeVIP
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown: "Unknown",
		TypeRegular: "Regular",
		TypePremium: "Premium",
		TypeVIP:     "VIP",
	}
}

// Validate checks if the Type is one of the defined tiers.
func (t Type) Validate() error {
	if t == TypeUnknown {
		return errs.NewValueIsInvalidErrorWithCause("customer type is invalid",
			fmt.Errorf("%d is not a valid customer type", t))
	}
	if _, ok := getTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("customer type is invalid",
			fmt.Errorf("%d is not a valid customer type", t))
	}
	return nil
}

// String returns the human-readable name of the tier.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "Unknown"
}
