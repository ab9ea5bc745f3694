// Package shopping derives a purchase list from planned production and
// the current ingredient stock. The list is recomputed on demand and
// never persisted.
package shopping

import (
	"sort"

	"fournil/internal/planning"
)

// IngredientNeed is the computed requirement for one ingredient over a
// date window. ToBuy is the shortfall after stock is subtracted.
type IngredientNeed struct {
	IngredientID string  `json:"ingredient_id"`
	Name         string  `json:"name"`
	Unit         string  `json:"unit"`
	TotalNeeded  float64 `json:"total_needed"`
	InStock      float64 `json:"in_stock"`
	ToBuy        float64 `json:"to_buy"`
}

// AggregateNeeds folds planned production into per-ingredient totals.
// Each line contributes line quantity times the plan's multiplier, and
// contributions for the same ingredient accumulate across all plans.
// The result preserves first-seen order; summation follows plan order
// then line order, plain float64 addition.
func AggregateNeeds(plans []planning.PlanWithRecipe) []IngredientNeed {
	byID := make(map[string]int)
	var needs []IngredientNeed

	for _, plan := range plans {
		for _, line := range plan.Lines {
			contribution := line.Quantity * plan.QuantityMultiplier

			idx, ok := byID[line.IngredientID]
			if !ok {
				idx = len(needs)
				byID[line.IngredientID] = idx
				needs = append(needs, IngredientNeed{
					IngredientID: line.IngredientID,
					Name:         line.IngredientName,
					Unit:         line.Unit,
				})
			}
			needs[idx].TotalNeeded += contribution
		}
	}

	return needs
}

// Reconcile joins aggregated needs against a stock snapshot and keeps
// only the ingredients with a positive deficit. An ingredient missing
// from the snapshot counts as zero stock, not an error.
func Reconcile(needs []IngredientNeed, stock map[string]float64) []IngredientNeed {
	var list []IngredientNeed
	for _, need := range needs {
		need.InStock = stock[need.IngredientID]
		need.ToBuy = need.TotalNeeded - need.InStock
		if need.ToBuy <= 0 {
			need.ToBuy = 0
			continue
		}
		list = append(list, need)
	}
	return list
}

// SortByName orders the list by ingredient name ascending, the
// documented deterministic presentation order.
func SortByName(list []IngredientNeed) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
}
