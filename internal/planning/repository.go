package planning

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fournil/internal/planning/plan_db"
	"fournil/internal/recipe"
)

// LineLister hydrates the ingredient lines of a recipe.
// *recipe.Repository satisfies it.
type LineLister interface {
	Lines(ctx context.Context, recipeID string) ([]recipe.Line, error)
}

// Repository is a database-backed repository for production plans.
type Repository struct {
	queries *plan_db.Queries
	db      *sql.DB
	lines   LineLister
}

// NewRepository creates a new Repository.
func NewRepository(d *sql.DB, lines LineLister) *Repository {
	return &Repository{
		queries: plan_db.New(d),
		db:      d,
		lines:   lines,
	}
}

// Create schedules a recipe on a date. Status defaults to planned and
// the multiplier to 1 when unset.
func (r *Repository) Create(ctx context.Context, plan ProductionPlan) (ProductionPlan, error) {
	if plan.Status == "" {
		plan.Status = StatusPlanned
	}
	if plan.QuantityMultiplier == 0 {
		plan.QuantityMultiplier = 1
	}
	if err := plan.Validate(); err != nil {
		return ProductionPlan{}, err
	}

	plan.ID = uuid.NewString()
	plan.CreatedAt = time.Now().UTC()

	if err := r.queries.InsertPlan(ctx, plan_db.InsertPlanParams{
		ID:                 plan.ID,
		UserID:             plan.UserID,
		RecipeID:           plan.RecipeID,
		PlannedDate:        plan.PlannedDate,
		StartTime:          plan.StartTime,
		QuantityMultiplier: plan.QuantityMultiplier,
		Status:             string(plan.Status),
		Notes:              toNullString(plan.Notes),
		CreatedAt:          plan.CreatedAt,
	}); err != nil {
		return ProductionPlan{}, fmt.Errorf("failed to insert plan: %w", err)
	}

	return plan, nil
}

// Get retrieves one plan. Returns (nil, nil) when not found.
func (r *Repository) Get(ctx context.Context, ownerID, id string) (*ProductionPlan, error) {
	row, err := r.queries.GetPlan(ctx, plan_db.GetPlanParams{ID: id, UserID: ownerID})
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	plan := ProductionPlan{
		ID:                 row.ID,
		UserID:             row.UserID,
		RecipeID:           row.RecipeID,
		PlannedDate:        row.PlannedDate,
		StartTime:          row.StartTime,
		QuantityMultiplier: row.QuantityMultiplier,
		Status:             Status(row.Status),
		CreatedAt:          row.CreatedAt,
	}
	if row.Notes.Valid {
		plan.Notes = row.Notes.String
	}
	return &plan, nil
}

// List retrieves all plans for an owner joined with their recipes,
// ordered by planned date then start time. Lines are not hydrated.
func (r *Repository) List(ctx context.Context, ownerID string) ([]PlanWithRecipe, error) {
	rows, err := r.queries.ListPlans(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list plans: %w", err)
	}

	plans := make([]PlanWithRecipe, 0, len(rows))
	for _, row := range rows {
		plans = append(plans, PlanWithRecipe{
			ProductionPlan: ProductionPlan{
				ID:                 row.ID,
				UserID:             row.UserID,
				RecipeID:           row.RecipeID,
				PlannedDate:        row.PlannedDate,
				StartTime:          row.StartTime,
				QuantityMultiplier: row.QuantityMultiplier,
				Status:             Status(row.Status),
				Notes:              nullStringValue(row.Notes),
				CreatedAt:          row.CreatedAt,
			},
			RecipeName:        row.RecipeName,
			PrepTimeMinutes:   int(row.PrepTimeMinutes),
			RestTimeMinutes:   int(row.RestTimeMinutes),
			BakingTimeMinutes: int(row.BakingTimeMinutes),
			YieldQuantity:     row.YieldQuantity,
			YieldUnit:         row.YieldUnit,
		})
	}
	return plans, nil
}

// ListPlannedWithIngredients retrieves plans in status planned whose
// date falls in the inclusive [from, to] range, hydrated with their
// recipes' ingredient lines. A reversed range simply matches nothing.
func (r *Repository) ListPlannedWithIngredients(ctx context.Context, ownerID, from, to string) ([]PlanWithRecipe, error) {
	rows, err := r.queries.ListPlansInRange(ctx, plan_db.ListPlansInRangeParams{
		UserID:        ownerID,
		PlannedDate:   from,
		PlannedDate_2: to,
		Status:        string(StatusPlanned),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list plans in range: %w", err)
	}

	plans := make([]PlanWithRecipe, 0, len(rows))
	for _, row := range rows {
		lines, err := r.lines.Lines(ctx, row.RecipeID)
		if err != nil {
			return nil, fmt.Errorf("failed to hydrate plan %s: %w", row.ID, err)
		}

		plans = append(plans, PlanWithRecipe{
			ProductionPlan: ProductionPlan{
				ID:                 row.ID,
				UserID:             row.UserID,
				RecipeID:           row.RecipeID,
				PlannedDate:        row.PlannedDate,
				StartTime:          row.StartTime,
				QuantityMultiplier: row.QuantityMultiplier,
				Status:             Status(row.Status),
				Notes:              nullStringValue(row.Notes),
				CreatedAt:          row.CreatedAt,
			},
			RecipeName:        row.RecipeName,
			PrepTimeMinutes:   int(row.PrepTimeMinutes),
			RestTimeMinutes:   int(row.RestTimeMinutes),
			BakingTimeMinutes: int(row.BakingTimeMinutes),
			YieldQuantity:     row.YieldQuantity,
			YieldUnit:         row.YieldUnit,
			Lines:             lines,
		})
	}
	return plans, nil
}

// SetStatus moves a plan to the given status. Every transition between
// the three states is permitted.
func (r *Repository) SetStatus(ctx context.Context, ownerID, id string, status Status) error {
	if !status.Valid() {
		return fmt.Errorf("unknown plan status %q", status)
	}
	if err := r.queries.UpdatePlanStatus(ctx, plan_db.UpdatePlanStatusParams{
		Status: string(status),
		ID:     id,
		UserID: ownerID,
	}); err != nil {
		return fmt.Errorf("failed to update plan status: %w", err)
	}
	return nil
}

// Delete removes a plan.
func (r *Repository) Delete(ctx context.Context, ownerID, id string) error {
	if err := r.queries.DeletePlan(ctx, plan_db.DeletePlanParams{ID: id, UserID: ownerID}); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

func toNullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullStringValue(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return ""
}
