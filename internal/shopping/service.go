package shopping

import (
	"context"
	"fmt"

	"fournil/internal/planning"
)

// PlanSource supplies hydrated planned production for a date window.
// *planning.Repository satisfies it.
type PlanSource interface {
	ListPlannedWithIngredients(ctx context.Context, ownerID, from, to string) ([]planning.PlanWithRecipe, error)
}

// StockSource supplies the current stock snapshot by ingredient ID.
// *inventory.Repository satisfies it.
type StockSource interface {
	StockByID(ctx context.Context, ownerID string) (map[string]float64, error)
}

// Service generates shopping lists from the plan and stock stores.
type Service struct {
	plans PlanSource
	stock StockSource
}

// NewService creates a new Service.
func NewService(plans PlanSource, stock StockSource) *Service {
	return &Service{
		plans: plans,
		stock: stock,
	}
}

// Generate computes the purchase list for planned production in the
// inclusive [from, to] date window, sorted by ingredient name. The plan
// and stock reads are independent snapshots; store failures propagate
// unchanged and an empty window yields an empty list.
func (s *Service) Generate(ctx context.Context, ownerID, from, to string) ([]IngredientNeed, error) {
	plans, err := s.plans.ListPlannedWithIngredients(ctx, ownerID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load planned production: %w", err)
	}

	stock, err := s.stock.StockByID(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load stock snapshot: %w", err)
	}

	list := Reconcile(AggregateNeeds(plans), stock)
	SortByName(list)
	return list, nil
}
