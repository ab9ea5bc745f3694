package planning

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"fournil/internal/database"
	"fournil/internal/recipe"
)

type testStore struct {
	repo    *Repository
	recipes *recipe.Repository
	db      *sql.DB
	ownerID string
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	ownerID := "owner-1"
	_, err = db.SQL.Exec(
		"INSERT INTO users (id, email, password_hash, created_at) VALUES (?, ?, ?, ?)",
		ownerID, "owner@fournil.fr", "x", time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("Failed to insert test user: %v", err)
	}

	recipes := recipe.NewRepository(db.SQL)
	return &testStore{
		repo:    NewRepository(db.SQL, recipes),
		recipes: recipes,
		db:      db.SQL,
		ownerID: ownerID,
	}
}

func (s *testStore) insertIngredient(t *testing.T, id, name string, stock float64) {
	t.Helper()
	_, err := s.db.Exec(
		"INSERT INTO ingredients (id, user_id, name, unit, stock_quantity, created_at) VALUES (?, ?, ?, 'g', ?, ?)",
		id, s.ownerID, name, stock, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("Failed to insert test ingredient: %v", err)
	}
}

func (s *testStore) createRecipe(t *testing.T, name string, lines []recipe.LineInput) recipe.Recipe {
	t.Helper()
	created, err := s.recipes.Create(context.Background(), recipe.Recipe{
		UserID:            s.ownerID,
		Name:              name,
		PrepTimeMinutes:   30,
		RestTimeMinutes:   120,
		BakingTimeMinutes: 45,
		YieldQuantity:     2,
		YieldUnit:         "pains",
	}, lines)
	if err != nil {
		t.Fatalf("Failed to create recipe: %v", err)
	}
	return created
}

func TestRepositoryCreate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rec := store.createRecipe(t, "Pain de campagne", nil)

	t.Run("applies defaults", func(t *testing.T) {
		plan, err := store.repo.Create(ctx, ProductionPlan{
			UserID:      store.ownerID,
			RecipeID:    rec.ID,
			PlannedDate: "2026-09-05",
			StartTime:   "06:00",
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if plan.Status != StatusPlanned {
			t.Errorf("Expected default status planned, got %s", plan.Status)
		}
		if plan.QuantityMultiplier != 1 {
			t.Errorf("Expected default multiplier 1, got %g", plan.QuantityMultiplier)
		}
	})

	t.Run("rejects invalid plans", func(t *testing.T) {
		_, err := store.repo.Create(ctx, ProductionPlan{
			UserID:      store.ownerID,
			RecipeID:    rec.ID,
			PlannedDate: "not-a-date",
			StartTime:   "06:00",
		})
		if err == nil {
			t.Error("Expected error for invalid date")
		}
	})
}

func TestRepositorySetStatus(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rec := store.createRecipe(t, "Brioche", nil)

	plan, err := store.repo.Create(ctx, ProductionPlan{
		UserID:      store.ownerID,
		RecipeID:    rec.ID,
		PlannedDate: "2026-09-05",
		StartTime:   "06:00",
	})
	if err != nil {
		t.Fatalf("Failed to create plan: %v", err)
	}

	// Any transition is allowed, including going back.
	for _, status := range []Status{StatusCompleted, StatusInProgress, StatusPlanned} {
		if err := store.repo.SetStatus(ctx, store.ownerID, plan.ID, status); err != nil {
			t.Fatalf("Expected no error moving to %s, got %v", status, err)
		}
		got, err := store.repo.Get(ctx, store.ownerID, plan.ID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got.Status != status {
			t.Errorf("Expected status %s, got %s", status, got.Status)
		}
	}

	if err := store.repo.SetStatus(ctx, store.ownerID, plan.ID, "done"); err == nil {
		t.Error("Expected error for unknown status")
	}
}

func TestListPlannedWithIngredients(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	store.insertIngredient(t, "flour", "Farine T65", 200)
	rec := store.createRecipe(t, "Pain de campagne", []recipe.LineInput{
		{IngredientID: "flour", Quantity: 500},
	})

	mustCreate := func(date string, status Status) ProductionPlan {
		plan, err := store.repo.Create(ctx, ProductionPlan{
			UserID:      store.ownerID,
			RecipeID:    rec.ID,
			PlannedDate: date,
			StartTime:   "06:00",
			Status:      status,
		})
		if err != nil {
			t.Fatalf("Failed to create plan: %v", err)
		}
		return plan
	}

	inWindow := mustCreate("2026-09-05", StatusPlanned)
	mustCreate("2026-09-05", StatusCompleted) // wrong status
	mustCreate("2026-09-20", StatusPlanned)   // outside the window
	onEdge := mustCreate("2026-09-08", StatusPlanned)

	plans, err := store.repo.ListPlannedWithIngredients(ctx, store.ownerID, "2026-09-05", "2026-09-08")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(plans) != 2 {
		t.Fatalf("Expected 2 plans in the window, got %d", len(plans))
	}
	if plans[0].ID != inWindow.ID || plans[1].ID != onEdge.ID {
		t.Errorf("Expected plans %s and %s, got %s and %s", inWindow.ID, onEdge.ID, plans[0].ID, plans[1].ID)
	}

	if len(plans[0].Lines) != 1 {
		t.Fatalf("Expected hydrated lines, got %d", len(plans[0].Lines))
	}
	line := plans[0].Lines[0]
	if line.IngredientName != "Farine T65" || line.Quantity != 500 {
		t.Errorf("Expected Farine T65 500, got %+v", line)
	}

	t.Run("reversed range matches nothing", func(t *testing.T) {
		plans, err := store.repo.ListPlannedWithIngredients(ctx, store.ownerID, "2026-09-08", "2026-09-05")
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(plans) != 0 {
			t.Errorf("Expected empty result, got %d plans", len(plans))
		}
	})
}

func TestRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	rec := store.createRecipe(t, "Fougasse", nil)

	plan, err := store.repo.Create(ctx, ProductionPlan{
		UserID:      store.ownerID,
		RecipeID:    rec.ID,
		PlannedDate: "2026-09-05",
		StartTime:   "06:00",
	})
	if err != nil {
		t.Fatalf("Failed to create plan: %v", err)
	}

	if err := store.repo.Delete(ctx, store.ownerID, plan.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	got, err := store.repo.Get(ctx, store.ownerID, plan.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Error("Expected the plan to be gone")
	}
}
