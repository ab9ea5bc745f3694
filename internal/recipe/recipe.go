package recipe

import (
	"fmt"
	"time"
)

// Recipe represents one bakery recipe with its production timings.
type Recipe struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	Name              string    `json:"name"`
	Description       string    `json:"description,omitempty"`
	PrepTimeMinutes   int       `json:"prep_time_minutes"`
	RestTimeMinutes   int       `json:"rest_time_minutes"`
	BakingTimeMinutes int       `json:"baking_time_minutes"`
	BakingTemperature *int      `json:"baking_temperature,omitempty"`
	YieldQuantity     float64   `json:"yield_quantity"`
	YieldUnit         string    `json:"yield_unit"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// TotalTimeMinutes returns prep + rest + baking.
func (r Recipe) TotalTimeMinutes() int {
	return r.PrepTimeMinutes + r.RestTimeMinutes + r.BakingTimeMinutes
}

// Validate checks the recipe fields before persistence.
func (r Recipe) Validate() error {
	if r.Name == "" {
		return fmt.Errorf("recipe name is required")
	}
	if r.PrepTimeMinutes < 0 || r.RestTimeMinutes < 0 || r.BakingTimeMinutes < 0 {
		return fmt.Errorf("recipe durations must not be negative")
	}
	if r.YieldQuantity <= 0 {
		return fmt.Errorf("yield quantity must be positive")
	}
	if r.YieldUnit == "" {
		return fmt.Errorf("yield unit is required")
	}
	return nil
}

// Line is one ingredient line of a recipe, hydrated with the ingredient
// it references. Quantity is the amount per one full batch.
type Line struct {
	ID             string  `json:"id"`
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Unit           string  `json:"unit"`
	Quantity       float64 `json:"quantity"`
	SortOrder      int     `json:"sort_order"`
	StockQuantity  float64 `json:"stock_quantity"`
}

// LineInput describes an ingredient line when creating or replacing the
// lines of a recipe. Display order follows slice order.
type LineInput struct {
	IngredientID string
	Quantity     float64
}

// RecipeWithIngredients is a recipe hydrated with its ingredient lines.
type RecipeWithIngredients struct {
	Recipe
	Lines []Line `json:"lines"`
}
