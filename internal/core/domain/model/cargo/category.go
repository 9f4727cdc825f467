package cargo

import (
	"fmt"

	"shipping/internal/pkg/errs"
)

// Category classifies the goods of an item.
type Category int

const (
	// CategoryUnknown represents an invalid or undefined category.
	CategoryUnknown Category = iota

	// CategoryDocuments covers paperwork and printed matter.
	CategoryDocuments

	// CategoryElectronics covers consumer and industrial electronics.
	CategoryElectronics

	// CategoryClothing covers textiles and apparel.
	CategoryClothing

	// CategoryMachinery covers industrial equipment and parts.
	CategoryMachinery

	// CategoryPerishables covers goods requiring timely delivery.
	CategoryPerishables

	// CategoryChemicals covers chemical products, often hazardous.
	CategoryChemicals

	// CategoryFurniture covers furniture and bulky household goods.
	CategoryFurniture

	// CategoryOther covers everything else.
	CategoryOther
)

func getCategoryStrings() map[Category]string {
	return map[Category]string{
		CategoryUnknown:     "unknown",
		CategoryDocuments:   "documents",
		CategoryElectronics: "electronics",
		CategoryClothing:    "clothing",
		CategoryMachinery:   "machinery",
		CategoryPerishables: "perishables",
		CategoryChemicals:   "chemicals",
		CategoryFurniture:   "furniture",
		CategoryOther:       "other",
	}
}

// CategoryFromString parses a category from its wire name.
func CategoryFromString(s string) (Category, error) {
	for category, str := range getCategoryStrings() {
		if category != CategoryUnknown && str == s {
			return category, nil
		}
	}
	return CategoryUnknown, errs.NewValueIsInvalidErrorWithCause(
		"category", fmt.Errorf("%q is not a valid category", s))
}

// Validate checks the category is a recognized value.
func (c Category) Validate() error {
	if _, ok := getCategoryStrings()[c]; !ok || c == CategoryUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"category", fmt.Errorf("%d is not a valid category", c))
	}
	return nil
}

// String returns the wire name of the category.
func (c Category) String() string {
	if str, ok := getCategoryStrings()[c]; ok {
		return str
	}
	return "unknown"
}
