package entity

import "strings"

// Category is the closed set of pin kinds.
type Category string

const (
	CategoryRestaurant  Category = "restaurant"
	CategoryShopping    Category = "shopping"
	CategorySightseeing Category = "sightseeing"
	CategoryWork        Category = "work"
	CategoryOther       Category = "other"
)

// CategoryInfo is the presentation metadata attached to a category.
type CategoryInfo struct {
	Value       Category `json:"value"`
	Label       string   `json:"label"`
	Color       string   `json:"color"`
	Icon        string   `json:"icon"`
	Description string   `json:"description"`
}

// categoryTable is ordered the way categories are listed to users.
var categoryTable = []CategoryInfo{
	{Value: CategoryRestaurant, Label: "Restaurant", Color: "#ef4444", Icon: "🍽️", Description: "Places to eat and drink"},
	{Value: CategoryShopping, Label: "Shopping", Color: "#8b5cf6", Icon: "🛒", Description: "Shops and markets"},
	{Value: CategorySightseeing, Label: "Sightseeing", Color: "#06b6d4", Icon: "📍", Description: "Landmarks and sights"},
	{Value: CategoryWork, Label: "Work", Color: "#10b981", Icon: "💼", Description: "Offices and work-related places"},
	{Value: CategoryOther, Label: "Other", Color: "#6b7280", Icon: "📝", Description: "Everything else"},
}

// Categories returns the category table in display order.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)

	return out
}

// ParseCategory normalises s into a Category. An empty string maps to
// CategoryOther; any other unknown value is rejected.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryOther, true
	}

	c := Category(s)
	if !c.IsValid() {
		return "", false
	}

	return c, true
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the known values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryRestaurant, CategoryShopping, CategorySightseeing, CategoryWork, CategoryOther:
		return true
	default:
		return false
	}
}

// Info returns the lookup entry for c, falling back to CategoryOther.
func (c Category) Info() CategoryInfo {
	for _, info := range categoryTable {
		if info.Value == c {
			return info
		}
	}

	return categoryTable[len(categoryTable)-1]
}
