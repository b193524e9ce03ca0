package models

import "strings"

// Category is the fixed editorial section an article belongs to.
type Category string

const (
	CategoryPolitics      Category = "Politics"
	CategorySports        Category = "Sports"
	CategoryEntertainment Category = "Entertainment"
	CategoryBusiness      Category = "Business"
	CategoryTechnology    Category = "Technology"
	CategoryHealth        Category = "Health"
	CategoryEducation     Category = "Education"
	CategoryCrime         Category = "Crime"
)

var categories = []Category{
	CategoryPolitics,
	CategorySports,
	CategoryEntertainment,
	CategoryBusiness,
	CategoryTechnology,
	CategoryHealth,
	CategoryEducation,
	CategoryCrime,
}

// Categories returns the fixed category list in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Valid reports whether c is one of the fixed categories.
func (c Category) Valid() bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// ParseCategory resolves raw input (any casing) to the canonical
// category. The second return is false when the input matches nothing.
func ParseCategory(raw string) (Category, bool) {
	raw = strings.TrimSpace(raw)
	for _, known := range categories {
		if strings.EqualFold(raw, string(known)) {
			return known, true
		}
	}
	return "", false
}
