package clipper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("Failed to parse fixture HTML: %v", err)
	}
	return doc
}

func TestExtractJSONLD(t *testing.T) {
	t.Run("single recipe object", func(t *testing.T) {
		doc := docFromHTML(t, `<html><head><script type="application/ld+json">
		{
			"@type": "Recipe",
			"name": "Pain de campagne",
			"description": "Un pain rustique au levain.",
			"prepTime": "PT30M",
			"cookTime": "PT45M",
			"totalTime": "PT3H15M",
			"recipeYield": "2 pains",
			"recipeIngredient": ["500 g de farine T65", "350 g d'eau", "10 g de sel"]
		}
		</script></head><body></body></html>`)

		rec, err := Extract(doc)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Name != "Pain de campagne" {
			t.Errorf("Expected name Pain de campagne, got %s", rec.Name)
		}
		if rec.PrepTimeMinutes != 30 || rec.BakingTimeMinutes != 45 {
			t.Errorf("Expected 30/45 minutes, got %d/%d", rec.PrepTimeMinutes, rec.BakingTimeMinutes)
		}
		// 3h15 total minus prep and cook leaves the rest time.
		if rec.RestTimeMinutes != 120 {
			t.Errorf("Expected 120 minutes rest, got %d", rec.RestTimeMinutes)
		}
		if rec.YieldQuantity != 2 || rec.YieldUnit != "pains" {
			t.Errorf("Expected 2 pains, got %g %s", rec.YieldQuantity, rec.YieldUnit)
		}
		if len(rec.Ingredients) != 3 {
			t.Errorf("Expected 3 ingredient lines, got %d", len(rec.Ingredients))
		}
	})

	t.Run("recipe inside a graph wrapper", func(t *testing.T) {
		doc := docFromHTML(t, `<html><head><script type="application/ld+json">
		{
			"@graph": [
				{"@type": "WebSite", "name": "Le blog"},
				{"@type": "Recipe", "name": "Brioche", "recipeYield": "12"}
			]
		}
		</script></head><body></body></html>`)

		rec, err := Extract(doc)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Name != "Brioche" {
			t.Errorf("Expected Brioche, got %s", rec.Name)
		}
		if rec.YieldQuantity != 12 || rec.YieldUnit != "pièces" {
			t.Errorf("Expected 12 pièces, got %g %s", rec.YieldQuantity, rec.YieldUnit)
		}
	})

	t.Run("type given as a list", func(t *testing.T) {
		doc := docFromHTML(t, `<html><head><script type="application/ld+json">
		[{"@type": ["Recipe", "NewsArticle"], "name": "Fougasse"}]
		</script></head><body></body></html>`)

		rec, err := Extract(doc)
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if rec.Name != "Fougasse" {
			t.Errorf("Expected Fougasse, got %s", rec.Name)
		}
	})
}

func TestExtractMicrodata(t *testing.T) {
	doc := docFromHTML(t, `<html><body>
	<div itemscope itemtype="https://schema.org/Recipe">
		<h1 itemprop="name">Baguette tradition</h1>
		<p itemprop="description">La baguette du concours.</p>
		<time itemprop="prepTime" datetime="PT20M"></time>
		<time itemprop="cookTime" datetime="PT25M"></time>
		<li itemprop="recipeIngredient">350 g de farine</li>
		<li itemprop="recipeIngredient">7 g de sel</li>
	</div>
	</body></html>`)

	rec, err := Extract(doc)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if rec.Name != "Baguette tradition" {
		t.Errorf("Expected Baguette tradition, got %s", rec.Name)
	}
	if rec.PrepTimeMinutes != 20 || rec.BakingTimeMinutes != 25 {
		t.Errorf("Expected 20/25 minutes, got %d/%d", rec.PrepTimeMinutes, rec.BakingTimeMinutes)
	}
	if len(rec.Ingredients) != 2 {
		t.Errorf("Expected 2 ingredient lines, got %d", len(rec.Ingredients))
	}
}

func TestExtractNoRecipe(t *testing.T) {
	doc := docFromHTML(t, `<html><body><p>Just a blog post about bread.</p></body></html>`)
	if _, err := Extract(doc); err == nil {
		t.Error("Expected error when the page has no recipe data")
	}
}

func TestParseISODuration(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"PT45M", 45},
		{"PT1H", 60},
		{"PT1H30M", 90},
		{"P1DT2H", 1560},
		{"PT90S", 1},
		{"", 0},
		{"45 minutes", 0},
	}
	for _, c := range cases {
		if got := parseISODuration(c.in); got != c.want {
			t.Errorf("parseISODuration(%q): expected %d, got %d", c.in, c.want, got)
		}
	}
}

func TestParseYield(t *testing.T) {
	cases := []struct {
		in       string
		wantQty  float64
		wantUnit string
	}{
		{"12 pièces", 12, "pièces"},
		{"2 pains", 2, "pains"},
		{"8", 8, "pièces"},
		{"1,5 kg", 1.5, "kg"},
		{"", 1, "fournée"},
	}
	for _, c := range cases {
		qty, unit := parseYield(c.in)
		if qty != c.wantQty || unit != c.wantUnit {
			t.Errorf("parseYield(%q): expected %g %s, got %g %s", c.in, c.wantQty, c.wantUnit, qty, unit)
		}
	}
}
