package models

// Nutrition is the per-serving nutrition panel shown on a product card.
type Nutrition struct {
	Calories int `json:"calories" yaml:"calories"`
	Fiber    int `json:"fiber"    yaml:"fiber"`
	VitaminC int `json:"vitaminC" yaml:"vitaminC"`
}

// Product represents a product in the catalogue.
type Product struct {
	ID          string    `json:"id"          yaml:"id"          validate:"required"`
	Name        string    `json:"name"        yaml:"name"        validate:"required,min=2,max=255"`
	Category    string    `json:"category"    yaml:"category"    validate:"required"`
	Price       float64   `json:"price"       yaml:"price"       validate:"gt=0"`
	Unit        string    `json:"unit"        yaml:"unit"        validate:"required"`
	Image       string    `json:"image"       yaml:"image"       validate:"nullable,url"`
	Description string    `json:"description" yaml:"description"`
	InStock     bool      `json:"inStock"     yaml:"inStock"`
	Featured    bool      `json:"featured"    yaml:"featured"`
	Nutrition   Nutrition `json:"nutrition"   yaml:"nutrition"`
}

// Category is one entry of the catalogue filter vocabulary.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AllCategories is the filter sentinel that matches every category.
const AllCategories = "all"

// Categories lists the filter options offered on the products page, in display order.
var Categories = []Category{
	{ID: AllCategories, Name: "All Fruits"},
	{ID: "berries", Name: "Berries"},
	{ID: "tropical", Name: "Tropical"},
	{ID: "citrus", Name: "Citrus"},
	{ID: "seasonal", Name: "Seasonal"},
}
