package shopping

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fournil/internal/planning"
	"fournil/internal/recipe"
)

type mockPlanSource struct {
	plans []planning.PlanWithRecipe
	err   error
}

func (m *mockPlanSource) ListPlannedWithIngredients(ctx context.Context, ownerID, from, to string) ([]planning.PlanWithRecipe, error) {
	return m.plans, m.err
}

type mockStockSource struct {
	stock map[string]float64
	err   error
}

func (m *mockStockSource) StockByID(ctx context.Context, ownerID string) (map[string]float64, error) {
	return m.stock, m.err
}

func TestServiceGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sorted purchase list", func(t *testing.T) {
		plans := []planning.PlanWithRecipe{
			planWith(1,
				recipe.Line{IngredientID: "salt", IngredientName: "Sel", Unit: "g", Quantity: 20},
				recipe.Line{IngredientID: "flour", IngredientName: "Farine T65", Unit: "g", Quantity: 500},
			),
		}
		service := NewService(&mockPlanSource{plans: plans}, &mockStockSource{stock: map[string]float64{}})

		list, err := service.Generate(ctx, "owner", "2026-09-01", "2026-09-08")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(list) != 2 {
			t.Fatalf("Expected 2 items, got %d", len(list))
		}
		if list[0].Name != "Farine T65" || list[1].Name != "Sel" {
			t.Errorf("Expected name-ascending order, got %s then %s", list[0].Name, list[1].Name)
		}
	})

	t.Run("empty window yields empty list", func(t *testing.T) {
		service := NewService(&mockPlanSource{}, &mockStockSource{stock: map[string]float64{"flour": 999}})

		list, err := service.Generate(ctx, "owner", "2026-09-01", "2026-09-08")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(list) != 0 {
			t.Errorf("Expected empty list, got %d items", len(list))
		}
	})

	t.Run("plan store failure propagates", func(t *testing.T) {
		planErr := errors.New("db locked")
		service := NewService(&mockPlanSource{err: planErr}, &mockStockSource{})

		_, err := service.Generate(ctx, "owner", "2026-09-01", "2026-09-08")
		if err == nil {
			t.Fatal("Expected an error, got nil")
		}
		if !errors.Is(err, planErr) {
			t.Errorf("Expected wrapped plan error, got %v", err)
		}
		if !strings.Contains(err.Error(), "planned production") {
			t.Errorf("Expected context in error message, got %q", err.Error())
		}
	})

	t.Run("stock store failure propagates", func(t *testing.T) {
		stockErr := errors.New("db locked")
		service := NewService(&mockPlanSource{}, &mockStockSource{err: stockErr})

		_, err := service.Generate(ctx, "owner", "2026-09-01", "2026-09-08")
		if !errors.Is(err, stockErr) {
			t.Errorf("Expected wrapped stock error, got %v", err)
		}
	})
}
