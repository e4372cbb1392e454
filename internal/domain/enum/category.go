package enum

// MenuCategory is the fixed set of menu item categories.
type MenuCategory string

const (
	CategoryStarters      MenuCategory = "Starters"
	CategoryMainCourse    MenuCategory = "Main Course"
	CategoryBeverages     MenuCategory = "Beverages"
	CategoryDesserts      MenuCategory = "Desserts"
	CategoryUncategorized MenuCategory = "Uncategorized"
)

// Categories lists every selectable category, in display order.
func Categories() []MenuCategory {
	return []MenuCategory{
		CategoryStarters,
		CategoryMainCourse,
		CategoryBeverages,
		CategoryDesserts,
	}
}

// IsValid reports whether c is one of the known categories.
func (c MenuCategory) IsValid() bool {
	switch c {
	case CategoryStarters, CategoryMainCourse, CategoryBeverages, CategoryDesserts, CategoryUncategorized:
		return true
	}
	return false
}

// Normalize maps an unknown or empty category to CategoryUncategorized.
func (c MenuCategory) Normalize() MenuCategory {
	if !c.IsValid() || c == "" {
		return CategoryUncategorized
	}
	return c
}

// String returns the category as a plain string.
func (c MenuCategory) String() string {
	return string(c)
}
