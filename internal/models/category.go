package models

// Category is the classification bucket of a candidate path.
type Category string

const (
	CategoryStatic Category = "static"
	CategoryAPI    Category = "api"
	CategoryOther  Category = "other"
)

// AllCategories lists the categories in report order.
var AllCategories = []Category{CategoryStatic, CategoryAPI, CategoryOther}

// CategorizedPaths partitions a path list by category, preserving input order.
type CategorizedPaths struct {
	Static []string `json:"static"`
	API    []string `json:"api"`
	Other  []string `json:"other"`
}

// Total returns the number of paths across all buckets.
func (c CategorizedPaths) Total() int {
	return len(c.Static) + len(c.API) + len(c.Other)
}

// Bucket returns the paths for a single category.
func (c CategorizedPaths) Bucket(category Category) []string {
	switch category {
	case CategoryStatic:
		return c.Static
	case CategoryAPI:
		return c.API
	default:
		return c.Other
	}
}
