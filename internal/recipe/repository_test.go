package recipe

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"fournil/internal/database"
)

type testStore struct {
	repo    *Repository
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

	return &testStore{repo: NewRepository(db.SQL), db: db.SQL, ownerID: ownerID}
}

func (s *testStore) insertIngredient(t *testing.T, id, name, unit string, stock float64) {
	t.Helper()
	_, err := s.db.Exec(
		"INSERT INTO ingredients (id, user_id, name, unit, stock_quantity, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, s.ownerID, name, unit, stock, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("Failed to insert test ingredient: %v", err)
	}
}

func breadRecipe(ownerID string) Recipe {
	return Recipe{
		UserID:            ownerID,
		Name:              "Pain de campagne",
		Description:       "Pain au levain sur deux jours.",
		PrepTimeMinutes:   30,
		RestTimeMinutes:   180,
		BakingTimeMinutes: 45,
		YieldQuantity:     2,
		YieldUnit:         "pains",
	}
}

func TestRepositoryCreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	store.insertIngredient(t, "flour", "Farine T65", "g", 200)
	store.insertIngredient(t, "salt", "Sel", "g", 500)

	lines := []LineInput{
		{IngredientID: "flour", Quantity: 500},
		{IngredientID: "salt", Quantity: 10},
	}
	created, err := store.repo.Create(ctx, breadRecipe(store.ownerID), lines)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if created.ID == "" {
		t.Error("Expected a generated recipe ID")
	}

	got, err := store.repo.Get(ctx, store.ownerID, created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got == nil {
		t.Fatal("Expected the recipe back, got nil")
	}
	if got.Name != "Pain de campagne" || got.Description != "Pain au levain sur deux jours." {
		t.Errorf("Expected stored fields back, got %+v", got.Recipe)
	}
	if got.TotalTimeMinutes() != 255 {
		t.Errorf("Expected total time 255, got %d", got.TotalTimeMinutes())
	}

	if len(got.Lines) != 2 {
		t.Fatalf("Expected 2 hydrated lines, got %d", len(got.Lines))
	}
	if got.Lines[0].IngredientName != "Farine T65" || got.Lines[0].Quantity != 500 {
		t.Errorf("Expected Farine T65 500 first, got %+v", got.Lines[0])
	}
	if got.Lines[0].StockQuantity != 200 {
		t.Errorf("Expected hydrated stock 200, got %g", got.Lines[0].StockQuantity)
	}
	if got.Lines[1].IngredientName != "Sel" {
		t.Errorf("Expected Sel second, got %s", got.Lines[1].IngredientName)
	}
}

func TestRepositoryGetMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	got, err := store.repo.Get(ctx, store.ownerID, "no-such-recipe")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Error("Expected nil for a missing recipe")
	}
}

func TestRepositoryCreateValidation(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	t.Run("rejects invalid recipes", func(t *testing.T) {
		rec := breadRecipe(store.ownerID)
		rec.Name = ""
		if _, err := store.repo.Create(ctx, rec, nil); err == nil {
			t.Error("Expected error for missing name")
		}
	})

	t.Run("rejects negative line quantities", func(t *testing.T) {
		store.insertIngredient(t, "sugar", "Sucre", "g", 0)
		lines := []LineInput{{IngredientID: "sugar", Quantity: -1}}
		if _, err := store.repo.Create(ctx, breadRecipe(store.ownerID), lines); err == nil {
			t.Error("Expected error for negative quantity")
		}
	})
}

func TestRepositoryList(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	first := breadRecipe(store.ownerID)
	first.Name = "Pain de campagne"
	second := breadRecipe(store.ownerID)
	second.Name = "Brioche"

	if _, err := store.repo.Create(ctx, first, nil); err != nil {
		t.Fatalf("Failed to create recipe: %v", err)
	}
	if _, err := store.repo.Create(ctx, second, nil); err != nil {
		t.Fatalf("Failed to create recipe: %v", err)
	}

	t.Run("by name", func(t *testing.T) {
		recipes, err := store.repo.List(ctx, store.ownerID, SortByName)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(recipes) != 2 {
			t.Fatalf("Expected 2 recipes, got %d", len(recipes))
		}
		if recipes[0].Name != "Brioche" || recipes[1].Name != "Pain de campagne" {
			t.Errorf("Expected alphabetical order, got %s then %s", recipes[0].Name, recipes[1].Name)
		}
	})

	t.Run("other owners see nothing", func(t *testing.T) {
		recipes, err := store.repo.List(ctx, "someone-else", SortByName)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(recipes) != 0 {
			t.Errorf("Expected no recipes for another owner, got %d", len(recipes))
		}
	})
}

func TestRepositoryUpdate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	store.insertIngredient(t, "flour", "Farine T65", "g", 0)
	store.insertIngredient(t, "butter", "Beurre", "g", 0)

	created, err := store.repo.Create(ctx, breadRecipe(store.ownerID), []LineInput{
		{IngredientID: "flour", Quantity: 500},
	})
	if err != nil {
		t.Fatalf("Failed to create recipe: %v", err)
	}

	t.Run("replaces lines wholesale", func(t *testing.T) {
		updated := created
		updated.Name = "Pain de mie"
		err := store.repo.Update(ctx, updated, []LineInput{
			{IngredientID: "flour", Quantity: 400},
			{IngredientID: "butter", Quantity: 50},
		})
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		got, err := store.repo.Get(ctx, store.ownerID, created.ID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if got.Name != "Pain de mie" {
			t.Errorf("Expected renamed recipe, got %s", got.Name)
		}
		if len(got.Lines) != 2 || got.Lines[0].Quantity != 400 || got.Lines[1].IngredientName != "Beurre" {
			t.Errorf("Expected replaced lines, got %+v", got.Lines)
		}
	})

	t.Run("nil lines keep existing lines", func(t *testing.T) {
		updated := created
		updated.Name = "Pain de mie"
		if err := store.repo.Update(ctx, updated, nil); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}

		got, err := store.repo.Get(ctx, store.ownerID, created.ID)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if len(got.Lines) != 2 {
			t.Errorf("Expected lines untouched, got %d", len(got.Lines))
		}
	})
}

func TestRepositoryDelete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	store.insertIngredient(t, "flour", "Farine T65", "g", 0)

	created, err := store.repo.Create(ctx, breadRecipe(store.ownerID), []LineInput{
		{IngredientID: "flour", Quantity: 500},
	})
	if err != nil {
		t.Fatalf("Failed to create recipe: %v", err)
	}

	if err := store.repo.Delete(ctx, store.ownerID, created.ID); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got, err := store.repo.Get(ctx, store.ownerID, created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if got != nil {
		t.Error("Expected the recipe to be gone")
	}

	// Lines cascade with the recipe.
	lines, err := store.repo.Lines(ctx, created.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("Expected lines removed with the recipe, got %d", len(lines))
	}
}
