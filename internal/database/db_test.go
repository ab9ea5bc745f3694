package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNewDBAppliesSchema(t *testing.T) {
	db := newTestDB(t)

	for _, table := range []string{"users", "sessions", "recipes", "ingredients", "recipe_ingredients", "production_plans"} {
		var name string
		err := db.SQL.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s to exist: %v", table, err)
		}
	}
}

// Foreign keys must be on for every connection in the pool, not just
// the first one handed out.
func TestForeignKeysOnEveryConnection(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	// Pin two distinct pooled connections at the same time.
	conn1, err := db.SQL.Conn(ctx)
	if err != nil {
		t.Fatalf("Failed to get first connection: %v", err)
	}
	defer conn1.Close()
	conn2, err := db.SQL.Conn(ctx)
	if err != nil {
		t.Fatalf("Failed to get second connection: %v", err)
	}
	defer conn2.Close()

	for i, conn := range []*sql.Conn{conn1, conn2} {
		var enabled int
		if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
			t.Fatalf("Failed to read pragma on connection %d: %v", i+1, err)
		}
		if enabled != 1 {
			t.Errorf("Expected foreign_keys = 1 on connection %d, got %d", i+1, enabled)
		}

		// An orphan line referencing a nonexistent recipe must be refused.
		_, err := conn.ExecContext(ctx,
			"INSERT INTO recipe_ingredients (id, recipe_id, ingredient_id, quantity, sort_order) VALUES (?, 'no-such-recipe', 'no-such-ingredient', 1, 0)",
			"orphan-line",
		)
		if err == nil {
			t.Errorf("Expected a constraint error on connection %d, got none", i+1)
		}
	}
}

func TestDeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)

	mustExec := func(query string, args ...any) {
		t.Helper()
		if _, err := db.SQL.ExecContext(ctx, query, args...); err != nil {
			t.Fatalf("Failed to seed row: %v", err)
		}
	}

	mustExec("INSERT INTO users (id, email, password_hash, created_at) VALUES ('u1', 'a@b.fr', 'x', datetime('now'))")
	mustExec("INSERT INTO recipes (id, user_id, name, yield_unit, created_at, updated_at) VALUES ('r1', 'u1', 'Pain', 'pains', datetime('now'), datetime('now'))")
	mustExec("INSERT INTO ingredients (id, user_id, name, unit, created_at) VALUES ('i1', 'u1', 'Farine', 'g', datetime('now'))")
	mustExec("INSERT INTO recipe_ingredients (id, recipe_id, ingredient_id, quantity, sort_order) VALUES ('l1', 'r1', 'i1', 500, 0)")
	mustExec("DELETE FROM recipes WHERE id = 'r1'")

	var count int
	if err := db.SQL.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipe_ingredients").Scan(&count); err != nil {
		t.Fatalf("Failed to count lines: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected lines to cascade with the recipe, got %d left", count)
	}
}
