package telegram

import "testing"

func TestShoppingArgs(t *testing.T) {
	t.Run("no bounds defaults the window", func(t *testing.T) {
		from, to, ok := shoppingArgs([]string{"/shopping"})
		if !ok {
			t.Fatal("Expected bare /shopping to be accepted")
		}
		if from != "" || to != "" {
			t.Errorf("Expected empty bounds, got %q..%q", from, to)
		}
	})

	t.Run("two bounds are passed through", func(t *testing.T) {
		from, to, ok := shoppingArgs([]string{"/shopping", "2026-09-01", "2026-09-08"})
		if !ok {
			t.Fatal("Expected two bounds to be accepted")
		}
		if from != "2026-09-01" || to != "2026-09-08" {
			t.Errorf("Expected the given bounds, got %q..%q", from, to)
		}
	})

	t.Run("a lone bound is rejected, not silently dropped", func(t *testing.T) {
		if _, _, ok := shoppingArgs([]string{"/shopping", "2026-09-01"}); ok {
			t.Error("Expected a single date to be rejected")
		}
	})

	t.Run("extra arguments are rejected", func(t *testing.T) {
		if _, _, ok := shoppingArgs([]string{"/shopping", "a", "b", "c"}); ok {
			t.Error("Expected extra arguments to be rejected")
		}
	})
}
