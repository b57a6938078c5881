package product

import (
	"fmt"

	"webshop/internal/pkg/errs"
)

// Category classifies a product within the catalog.
// Beyond identification, a category carries handling semantics: whether its
// products are fragile, need special handling in the warehouse, or may be
// returned at all.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	// This value (0) helps catch uninitialized Category values.
	CategoryUnknown Category = iota

	CategoryElectronics
	CategoryClothing
	CategoryBooks
	CategoryHomeAndGarden
	CategorySports
	CategoryToys
	CategoryBeauty
	CategoryFood
	CategoryAutomotive
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:       "Unknown",
		CategoryElectronics:   "Electronics",
		CategoryClothing:      "Clothing",
		CategoryBooks:         "Books",
		CategoryHomeAndGarden: "HomeAndGarden",
		CategorySports:        "Sports",
		CategoryToys:          "Toys",
		CategoryBeauty:        "Beauty",
		CategoryFood:          "Food",
		CategoryAutomotive:    "Automotive",
		CategoryOther:         "Other",
	}
}

// Validate checks that the Category is one of the defined catalog categories.
// CategoryUnknown and out-of-range values are invalid.
func (c Category) Validate() error {
	if c == CategoryUnknown {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid",
			fmt.Errorf("%d is not a valid category", c))
	}
	if _, ok := getCategoryStrings()[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("category is invalid",
			fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the human-readable name of the category.
// Implements fmt.Stringer; safe to call on invalid values.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "Unknown"
}

// IsFragile reports whether products in this category break in transit.
func (c Category) IsFragile() bool {
	return c == CategoryElectronics || c == CategoryHomeAndGarden
}

// RequiresSpecialHandling reports whether the warehouse treats this
// category specially (temperature, anti-static and similar constraints).
func (c Category) RequiresSpecialHandling() bool {
	return c == CategoryElectronics || c == CategoryFood
}

// IsReturnable reports whether products in this category may be returned.
// Food is the only non-returnable category.
func (c Category) IsReturnable() bool {
	return c != CategoryFood
}
