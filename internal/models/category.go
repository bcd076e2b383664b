package models

// Default category names offered by the entry form.
const (
	CategoryFood      = "Food"
	CategoryTransport = "Transport"
	CategoryUtilities = "Utilities"
	CategoryOther     = "Other"
)

// CategoryConfig represents a category configuration in the YAML file
type CategoryConfig struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// CategoriesConfig represents the structure of the categories YAML file
type CategoriesConfig struct {
	Categories []CategoryConfig `yaml:"categories"`
}

// DefaultCategories returns the built-in category set used when no
// categories file exists.
func DefaultCategories() []CategoryConfig {
	return []CategoryConfig{
		{Name: CategoryFood, Keywords: []string{"lunch", "dinner", "breakfast", "snack", "grocery", "restaurant", "coffee"}},
		{Name: CategoryTransport, Keywords: []string{"bus", "train", "taxi", "fuel", "metro", "parking"}},
		{Name: CategoryUtilities, Keywords: []string{"electricity", "water", "gas", "internet", "phone", "rent"}},
		{Name: CategoryOther},
	}
}

// CategoryNames extracts the names in order.
func CategoryNames(categories []CategoryConfig) []string {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names
}
