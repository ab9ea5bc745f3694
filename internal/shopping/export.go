package shopping

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ExportText renders the purchase list as plain text suitable for the
// clipboard: one "<qty> <unit> - <name>" line per ingredient, with the
// quantity rounded up to a whole number.
func ExportText(list []IngredientNeed) string {
	lines := make([]string, 0, len(list))
	for _, item := range list {
		lines = append(lines, fmt.Sprintf("%d %s - %s", int64(math.Ceil(item.ToBuy)), item.Unit, item.Name))
	}
	return strings.Join(lines, "\n")
}

// FormatAmount renders an on-screen quantity with one decimal place,
// unrounded beyond that.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}
