package inventory

import "time"

// Ingredient is one stocked ingredient. Unit is a free-text label
// ("g", "kg", "L", "unité"); quantities are compared as raw numbers
// without unit conversion.
type Ingredient struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Unit          string    `json:"unit"`
	StockQuantity float64   `json:"stock_quantity"`
	CreatedAt     time.Time `json:"created_at"`
}

// lowStockThreshold marks ingredients worth restocking on the inventory
// view. The value is in the ingredient's own unit.
const lowStockThreshold = 100

// LowStock reports whether the ingredient is running low.
func (i Ingredient) LowStock() bool {
	return i.StockQuantity < lowStockThreshold
}
