package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	inventorydb "fournil/internal/inventory/inventory_db"
)

// Repository is a database-backed repository for ingredient stock.
type Repository struct {
	queries *inventorydb.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: inventorydb.New(d),
		db:      d,
	}
}

// Create inserts a new ingredient for the owner.
func (r *Repository) Create(ctx context.Context, ing Ingredient) (Ingredient, error) {
	if ing.Name == "" {
		return Ingredient{}, fmt.Errorf("ingredient name is required")
	}
	if ing.Unit == "" {
		return Ingredient{}, fmt.Errorf("ingredient unit is required")
	}
	if ing.StockQuantity < 0 {
		return Ingredient{}, fmt.Errorf("stock quantity must not be negative")
	}

	ing.ID = uuid.NewString()
	ing.CreatedAt = time.Now().UTC()

	if err := r.queries.InsertIngredient(ctx, inventorydb.InsertIngredientParams{
		ID:            ing.ID,
		UserID:        ing.UserID,
		Name:          ing.Name,
		Unit:          ing.Unit,
		StockQuantity: ing.StockQuantity,
		CreatedAt:     ing.CreatedAt,
	}); err != nil {
		return Ingredient{}, fmt.Errorf("failed to insert ingredient: %w", err)
	}

	return ing, nil
}

// Get retrieves one ingredient. Returns (nil, nil) when not found.
func (r *Repository) Get(ctx context.Context, ownerID, id string) (*Ingredient, error) {
	row, err := r.queries.GetIngredient(ctx, inventorydb.GetIngredientParams{ID: id, UserID: ownerID})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get ingredient: %w", err)
	}
	ing := fromDBIngredient(row)
	return &ing, nil
}

// List retrieves the owner's full ingredient snapshot, name order.
func (r *Repository) List(ctx context.Context, ownerID string) ([]Ingredient, error) {
	rows, err := r.queries.ListIngredients(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}

	ingredients := make([]Ingredient, 0, len(rows))
	for _, row := range rows {
		ingredients = append(ingredients, fromDBIngredient(row))
	}
	return ingredients, nil
}

// StockByID returns the stock snapshot as an id -> quantity map, the
// shape the shopping reconciliation consumes.
func (r *Repository) StockByID(ctx context.Context, ownerID string) (map[string]float64, error) {
	ingredients, err := r.List(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	stock := make(map[string]float64, len(ingredients))
	for _, ing := range ingredients {
		stock[ing.ID] = ing.StockQuantity
	}
	return stock, nil
}

// SetStock updates the stock quantity of one ingredient. Negative
// quantities are rejected at input, never stored.
func (r *Repository) SetStock(ctx context.Context, ownerID, id string, quantity float64) error {
	if quantity < 0 {
		return fmt.Errorf("stock quantity must not be negative")
	}
	if err := r.queries.UpdateIngredientStock(ctx, inventorydb.UpdateIngredientStockParams{
		StockQuantity: quantity,
		ID:            id,
		UserID:        ownerID,
	}); err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}
	return nil
}

// Update renames an ingredient or changes its unit label.
func (r *Repository) Update(ctx context.Context, ownerID, id, name, unit string) error {
	if name == "" || unit == "" {
		return fmt.Errorf("ingredient name and unit are required")
	}
	if err := r.queries.UpdateIngredient(ctx, inventorydb.UpdateIngredientParams{
		Name:   name,
		Unit:   unit,
		ID:     id,
		UserID: ownerID,
	}); err != nil {
		return fmt.Errorf("failed to update ingredient: %w", err)
	}
	return nil
}

// Delete removes an ingredient from the inventory.
func (r *Repository) Delete(ctx context.Context, ownerID, id string) error {
	if err := r.queries.DeleteIngredient(ctx, inventorydb.DeleteIngredientParams{ID: id, UserID: ownerID}); err != nil {
		return fmt.Errorf("failed to delete ingredient: %w", err)
	}
	return nil
}

func fromDBIngredient(row inventorydb.Ingredient) Ingredient {
	return Ingredient{
		ID:            row.ID,
		UserID:        row.UserID,
		Name:          row.Name,
		Unit:          row.Unit,
		StockQuantity: row.StockQuantity,
		CreatedAt:     row.CreatedAt,
	}
}
