// Package clipper imports recipes from the web. Most recipe sites
// publish schema.org/Recipe structured data; the clipper reads the
// JSON-LD block when present and falls back to microdata attributes.
package clipper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// ClippedRecipe is the raw recipe data extracted from a page. The
// ingredient lines are free text; linking them to stocked ingredients
// is left to the user.
type ClippedRecipe struct {
	Name              string
	Description       string
	PrepTimeMinutes   int
	RestTimeMinutes   int
	BakingTimeMinutes int
	YieldQuantity     float64
	YieldUnit         string
	Ingredients       []string
}

// Clipper fetches and extracts recipes from URLs.
type Clipper struct {
	client *http.Client
}

// NewClipper creates a new Clipper instance.
func NewClipper() *Clipper {
	return &Clipper{
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// ClipURL fetches the URL and extracts the recipe it describes.
func (c *Clipper) ClipURL(ctx context.Context, url string) (*ClippedRecipe, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", "fournil-clipper/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s fetching %s", resp.Status, url)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	return Extract(doc)
}

// Extract pulls a recipe out of a parsed document.
func Extract(doc *goquery.Document) (*ClippedRecipe, error) {
	if rec := extractJSONLD(doc); rec != nil {
		return rec, nil
	}
	if rec := extractMicrodata(doc); rec != nil {
		return rec, nil
	}
	return nil, fmt.Errorf("no recipe structured data found in page")
}

// jsonLDRecipe mirrors the schema.org/Recipe fields we read. Yield and
// type come in several shapes across sites, hence the raw messages.
type jsonLDRecipe struct {
	Type             json.RawMessage `json:"@type"`
	Graph            []jsonLDRecipe  `json:"@graph"`
	Name             string          `json:"name"`
	Description      string          `json:"description"`
	PrepTime         string          `json:"prepTime"`
	CookTime         string          `json:"cookTime"`
	TotalTime        string          `json:"totalTime"`
	RecipeYield      json.RawMessage `json:"recipeYield"`
	RecipeIngredient []string        `json:"recipeIngredient"`
}

func extractJSONLD(doc *goquery.Document) *ClippedRecipe {
	var found *jsonLDRecipe

	doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		raw := strings.TrimSpace(s.Text())
		if raw == "" {
			return true
		}

		for _, candidate := range decodeJSONLD(raw) {
			if isRecipeType(candidate.Type) && candidate.Name != "" {
				found = &candidate
				return false
			}
		}
		return true
	})

	if found == nil {
		return nil
	}

	rec := &ClippedRecipe{
		Name:        found.Name,
		Description: found.Description,
		Ingredients: found.RecipeIngredient,
	}
	rec.PrepTimeMinutes = parseISODuration(found.PrepTime)
	rec.BakingTimeMinutes = parseISODuration(found.CookTime)
	// schema.org has no rest time; infer it from the total when given.
	if total := parseISODuration(found.TotalTime); total > rec.PrepTimeMinutes+rec.BakingTimeMinutes {
		rec.RestTimeMinutes = total - rec.PrepTimeMinutes - rec.BakingTimeMinutes
	}
	rec.YieldQuantity, rec.YieldUnit = parseYield(decodeYield(found.RecipeYield))
	return rec
}

// decodeJSONLD tolerates the three shapes sites use: a single object,
// a top-level array, and an @graph wrapper.
func decodeJSONLD(raw string) []jsonLDRecipe {
	var single jsonLDRecipe
	if err := json.Unmarshal([]byte(raw), &single); err == nil {
		if len(single.Graph) > 0 {
			return single.Graph
		}
		return []jsonLDRecipe{single}
	}

	var list []jsonLDRecipe
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		return list
	}
	return nil
}

// isRecipeType matches @type as either "Recipe" or a list containing it.
func isRecipeType(raw json.RawMessage) bool {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s == "Recipe"
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		for _, t := range list {
			if t == "Recipe" {
				return true
			}
		}
	}
	return false
}

func decodeYield(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil && len(list) > 0 {
		return list[len(list)-1] // the last entry is usually the wordier one
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	return ""
}

func extractMicrodata(doc *goquery.Document) *ClippedRecipe {
	scope := doc.Find(`[itemtype$="schema.org/Recipe"]`).First()
	if scope.Length() == 0 {
		return nil
	}

	rec := &ClippedRecipe{
		Name:        strings.TrimSpace(scope.Find(`[itemprop="name"]`).First().Text()),
		Description: strings.TrimSpace(scope.Find(`[itemprop="description"]`).First().Text()),
	}
	if rec.Name == "" {
		return nil
	}

	scope.Find(`[itemprop="recipeIngredient"], [itemprop="ingredients"]`).Each(func(_ int, s *goquery.Selection) {
		if line := strings.TrimSpace(s.Text()); line != "" {
			rec.Ingredients = append(rec.Ingredients, line)
		}
	})

	rec.PrepTimeMinutes = parseISODuration(microdataDuration(scope, "prepTime"))
	rec.BakingTimeMinutes = parseISODuration(microdataDuration(scope, "cookTime"))
	if total := parseISODuration(microdataDuration(scope, "totalTime")); total > rec.PrepTimeMinutes+rec.BakingTimeMinutes {
		rec.RestTimeMinutes = total - rec.PrepTimeMinutes - rec.BakingTimeMinutes
	}

	yield := scope.Find(`[itemprop="recipeYield"]`).First()
	if content, ok := yield.Attr("content"); ok {
		rec.YieldQuantity, rec.YieldUnit = parseYield(content)
	} else {
		rec.YieldQuantity, rec.YieldUnit = parseYield(strings.TrimSpace(yield.Text()))
	}
	return rec
}

// microdataDuration reads a duration itemprop, preferring the machine
// readable attributes over the visible text.
func microdataDuration(scope *goquery.Selection, prop string) string {
	node := scope.Find(fmt.Sprintf(`[itemprop=%q]`, prop)).First()
	if v, ok := node.Attr("datetime"); ok {
		return v
	}
	if v, ok := node.Attr("content"); ok {
		return v
	}
	return strings.TrimSpace(node.Text())
}

var isoDurationRe = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)

// parseISODuration converts an ISO 8601 duration ("PT1H30M") to whole
// minutes. Unparseable input yields 0.
func parseISODuration(s string) int {
	m := isoDurationRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 0
	}
	days, _ := strconv.Atoi(m[1])
	hours, _ := strconv.Atoi(m[2])
	minutes, _ := strconv.Atoi(m[3])
	seconds, _ := strconv.Atoi(m[4])
	return days*24*60 + hours*60 + minutes + seconds/60
}

var yieldRe = regexp.MustCompile(`(\d+(?:[.,]\d+)?)\s*(.*)`)

// parseYield splits "12 pièces" into quantity and unit. A bare number
// gets the generic unit; missing data defaults to one batch.
func parseYield(s string) (float64, string) {
	m := yieldRe.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return 1, "fournée"
	}
	qty, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil || qty <= 0 {
		qty = 1
	}
	unit := strings.TrimSpace(m[2])
	if unit == "" {
		unit = "pièces"
	}
	return qty, unit
}
