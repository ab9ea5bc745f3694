package recipe

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	db "fournil/internal/recipe/db"
)

// SortOrder selects the listing order for recipes.
type SortOrder string

const (
	// SortByName orders recipes alphabetically.
	SortByName SortOrder = "name"
	// SortByCreation orders recipes newest first.
	SortByCreation SortOrder = "created"
)

// Repository is a database-backed repository for recipes. Every method
// is scoped to an explicit owner; there is no ambient user state.
type Repository struct {
	queries *db.Queries
	db      *sql.DB
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB) *Repository {
	return &Repository{
		queries: db.New(d),
		db:      d,
	}
}

// Create inserts a recipe and its ingredient lines in one transaction.
// The recipe ID is generated here; line order follows slice order.
func (r *Repository) Create(ctx context.Context, rec Recipe, lines []LineInput) (Recipe, error) {
	if err := rec.Validate(); err != nil {
		return Recipe{}, err
	}

	rec.ID = uuid.NewString()
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Recipe{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	if err := qtx.InsertRecipe(ctx, db.InsertRecipeParams{
		ID:                rec.ID,
		UserID:            rec.UserID,
		Name:              rec.Name,
		Description:       toNullString(rec.Description),
		PrepTimeMinutes:   int64(rec.PrepTimeMinutes),
		RestTimeMinutes:   int64(rec.RestTimeMinutes),
		BakingTimeMinutes: int64(rec.BakingTimeMinutes),
		BakingTemperature: toNullInt(rec.BakingTemperature),
		YieldQuantity:     rec.YieldQuantity,
		YieldUnit:         rec.YieldUnit,
		CreatedAt:         rec.CreatedAt,
		UpdatedAt:         rec.UpdatedAt,
	}); err != nil {
		return Recipe{}, fmt.Errorf("failed to insert recipe: %w", err)
	}

	for i, line := range lines {
		if line.Quantity < 0 {
			return Recipe{}, fmt.Errorf("ingredient quantity must not be negative")
		}
		if err := qtx.InsertRecipeIngredient(ctx, db.InsertRecipeIngredientParams{
			ID:           uuid.NewString(),
			RecipeID:     rec.ID,
			IngredientID: line.IngredientID,
			Quantity:     line.Quantity,
			SortOrder:    int64(i),
		}); err != nil {
			return Recipe{}, fmt.Errorf("failed to insert recipe ingredient: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Recipe{}, fmt.Errorf("failed to commit recipe: %w", err)
	}

	return rec, nil
}

// Get retrieves a recipe with its hydrated ingredient lines.
// Returns (nil, nil) when the recipe does not exist for this owner.
func (r *Repository) Get(ctx context.Context, ownerID, id string) (*RecipeWithIngredients, error) {
	dbRec, err := r.queries.GetRecipe(ctx, db.GetRecipeParams{ID: id, UserID: ownerID})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // Recipe not found
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	lines, err := r.Lines(ctx, id)
	if err != nil {
		return nil, err
	}

	return &RecipeWithIngredients{
		Recipe: fromDBRecipe(dbRec),
		Lines:  lines,
	}, nil
}

// List retrieves all recipes for an owner in the requested order.
func (r *Repository) List(ctx context.Context, ownerID string, order SortOrder) ([]Recipe, error) {
	var dbRecipes []db.Recipe
	var err error

	switch order {
	case SortByCreation:
		dbRecipes, err = r.queries.ListRecipesByCreation(ctx, ownerID)
	default:
		dbRecipes, err = r.queries.ListRecipesByName(ctx, ownerID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	recipes := make([]Recipe, 0, len(dbRecipes))
	for _, dbRec := range dbRecipes {
		recipes = append(recipes, fromDBRecipe(dbRec))
	}
	return recipes, nil
}

// Update persists edited recipe fields. Ingredient lines are replaced
// wholesale when lines is non-nil.
func (r *Repository) Update(ctx context.Context, rec Recipe, lines []LineInput) error {
	if err := rec.Validate(); err != nil {
		return err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	qtx := r.queries.WithTx(tx)

	if err := qtx.UpdateRecipe(ctx, db.UpdateRecipeParams{
		Name:              rec.Name,
		Description:       toNullString(rec.Description),
		PrepTimeMinutes:   int64(rec.PrepTimeMinutes),
		RestTimeMinutes:   int64(rec.RestTimeMinutes),
		BakingTimeMinutes: int64(rec.BakingTimeMinutes),
		BakingTemperature: toNullInt(rec.BakingTemperature),
		YieldQuantity:     rec.YieldQuantity,
		YieldUnit:         rec.YieldUnit,
		UpdatedAt:         time.Now().UTC(),
		ID:                rec.ID,
		UserID:            rec.UserID,
	}); err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}

	if lines != nil {
		if err := qtx.DeleteRecipeLines(ctx, rec.ID); err != nil {
			return fmt.Errorf("failed to clear recipe ingredients: %w", err)
		}
		for i, line := range lines {
			if line.Quantity < 0 {
				return fmt.Errorf("ingredient quantity must not be negative")
			}
			if err := qtx.InsertRecipeIngredient(ctx, db.InsertRecipeIngredientParams{
				ID:           uuid.NewString(),
				RecipeID:     rec.ID,
				IngredientID: line.IngredientID,
				Quantity:     line.Quantity,
				SortOrder:    int64(i),
			}); err != nil {
				return fmt.Errorf("failed to insert recipe ingredient: %w", err)
			}
		}
	}

	return tx.Commit()
}

// Delete removes a recipe; its lines cascade in the store.
func (r *Repository) Delete(ctx context.Context, ownerID, id string) error {
	if err := r.queries.DeleteRecipe(ctx, db.DeleteRecipeParams{ID: id, UserID: ownerID}); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	return nil
}

// Lines retrieves the hydrated ingredient lines of a recipe in display order.
func (r *Repository) Lines(ctx context.Context, recipeID string) ([]Line, error) {
	rows, err := r.queries.ListRecipeLines(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipe ingredients: %w", err)
	}

	lines := make([]Line, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, Line{
			ID:             row.ID,
			IngredientID:   row.IngredientID,
			IngredientName: row.IngredientName,
			Unit:           row.Unit,
			Quantity:       row.Quantity,
			SortOrder:      int(row.SortOrder),
			StockQuantity:  row.StockQuantity,
		})
	}
	return lines, nil
}

func fromDBRecipe(dbRec db.Recipe) Recipe {
	rec := Recipe{
		ID:                dbRec.ID,
		UserID:            dbRec.UserID,
		Name:              dbRec.Name,
		PrepTimeMinutes:   int(dbRec.PrepTimeMinutes),
		RestTimeMinutes:   int(dbRec.RestTimeMinutes),
		BakingTimeMinutes: int(dbRec.BakingTimeMinutes),
		YieldQuantity:     dbRec.YieldQuantity,
		YieldUnit:         dbRec.YieldUnit,
		CreatedAt:         dbRec.CreatedAt,
		UpdatedAt:         dbRec.UpdatedAt,
	}
	if dbRec.Description.Valid {
		rec.Description = dbRec.Description.String
	}
	if dbRec.BakingTemperature.Valid {
		temp := int(dbRec.BakingTemperature.Int64)
		rec.BakingTemperature = &temp
	}
	return rec
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func toNullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
