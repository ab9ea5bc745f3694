package planning

import (
	"fmt"
	"time"

	"fournil/internal/recipe"
)

// Status is the production state of a plan. Any status may move to any
// other; the selection is a direct user action with no enforced order.
type Status string

const (
	StatusPlanned    Status = "planned"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPlanned, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ProductionPlan schedules one recipe batch on a calendar date.
// PlannedDate is YYYY-MM-DD and StartTime is HH:MM.
type ProductionPlan struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	RecipeID           string    `json:"recipe_id"`
	PlannedDate        string    `json:"planned_date"`
	StartTime          string    `json:"start_time"`
	QuantityMultiplier float64   `json:"quantity_multiplier"`
	Status             Status    `json:"status"`
	Notes              string    `json:"notes,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// Validate checks the plan fields before persistence.
func (p ProductionPlan) Validate() error {
	if p.RecipeID == "" {
		return fmt.Errorf("plan must reference a recipe")
	}
	if _, err := time.Parse("2006-01-02", p.PlannedDate); err != nil {
		return fmt.Errorf("invalid planned date %q: %w", p.PlannedDate, err)
	}
	if _, _, err := parseClock(p.StartTime); err != nil {
		return err
	}
	if p.QuantityMultiplier <= 0 {
		return fmt.Errorf("quantity multiplier must be positive")
	}
	if !p.Status.Valid() {
		return fmt.Errorf("unknown plan status %q", p.Status)
	}
	return nil
}

// PlanWithRecipe is a plan hydrated with its recipe and that recipe's
// ingredient lines, the typed shape the shopping aggregation consumes.
type PlanWithRecipe struct {
	ProductionPlan
	RecipeName        string        `json:"recipe_name"`
	PrepTimeMinutes   int           `json:"prep_time_minutes"`
	RestTimeMinutes   int           `json:"rest_time_minutes"`
	BakingTimeMinutes int           `json:"baking_time_minutes"`
	YieldQuantity     float64       `json:"yield_quantity"`
	YieldUnit         string        `json:"yield_unit"`
	Lines             []recipe.Line `json:"lines,omitempty"`
}

// TotalTimeMinutes returns the recipe's prep + rest + baking time.
func (p PlanWithRecipe) TotalTimeMinutes() int {
	return p.PrepTimeMinutes + p.RestTimeMinutes + p.BakingTimeMinutes
}

// EndTime returns the wrapped end time-of-day for this plan.
func (p PlanWithRecipe) EndTime() (string, error) {
	return EndTime(p.StartTime, p.TotalTimeMinutes())
}

// ScaledYield is the yield quantity after the plan's multiplier.
func (p PlanWithRecipe) ScaledYield() float64 {
	return p.YieldQuantity * p.QuantityMultiplier
}

// GroupByDate buckets plans by planned date, preserving the input order
// inside each bucket. The returned dates keep first-seen order.
func GroupByDate(plans []PlanWithRecipe) ([]string, map[string][]PlanWithRecipe) {
	var dates []string
	grouped := make(map[string][]PlanWithRecipe)
	for _, plan := range plans {
		if _, ok := grouped[plan.PlannedDate]; !ok {
			dates = append(dates, plan.PlannedDate)
		}
		grouped[plan.PlannedDate] = append(grouped[plan.PlannedDate], plan)
	}
	return dates, grouped
}
