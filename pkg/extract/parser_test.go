package extract

import (
	"strings"
	"testing"
)

func TestParseText(t *testing.T) {
	text := `Classic Pancakes

Fluffy weekend pancakes.

Ingredients:
- 2 cups flour
- 3 eggs
- 1 pinch salt
- butter for the pan

Instructions:
1. Whisk the dry ingredients.
2. Add the eggs and milk.
3. Fry until golden.`

	draft := ParseText(text)
	r := draft.Recipe

	if r.Name != "Classic Pancakes" {
		t.Errorf("Name = %q", r.Name)
	}
	if r.Description != "Fluffy weekend pancakes." {
		t.Errorf("Description = %q", r.Description)
	}
	if len(r.Ingredients) != 4 {
		t.Fatalf("ingredients = %d, want 4", len(r.Ingredients))
	}

	first := r.Ingredients[0]
	if first.Amount != "2" || first.Unit != "cups" || first.Item != "flour" {
		t.Errorf("first ingredient = %+v, want {2 cups flour}", first)
	}
	last := r.Ingredients[3]
	if last.Amount != "" || last.Unit != "" || last.Item != "butter for the pan" {
		t.Errorf("unitless ingredient = %+v", last)
	}

	if len(r.Instructions) != 3 {
		t.Fatalf("instructions = %d, want 3", len(r.Instructions))
	}
	if r.Instructions[0].Text != "Whisk the dry ingredients." {
		t.Errorf("step prefix not stripped: %q", r.Instructions[0].Text)
	}

	if draft.Confidence < 0.9 {
		t.Errorf("Confidence = %f, want high for a fully-parsed recipe", draft.Confidence)
	}
}

func TestParseIngredientLine(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		amount string
		unit   string
		item   string
	}{
		{"amount unit item", "2 cups flour", "2", "cups", "flour"},
		{"fraction", "1/2 tsp vanilla", "1/2", "tsp", "vanilla"},
		{"range amount", "1-2 cloves garlic", "1-2", "cloves", "garlic"},
		{"no unit", "3 eggs", "3", "", "eggs"},
		{"no amount", "salt to taste", "", "", "salt to taste"},
		{"bullet stripped", "- 200 g sugar", "200", "g", "sugar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseIngredientLine(tt.line)
			if got.Amount != tt.amount || got.Unit != tt.unit || got.Item != tt.item {
				t.Errorf("parseIngredientLine(%q) = {%q %q %q}, want {%q %q %q}",
					tt.line, got.Amount, got.Unit, got.Item, tt.amount, tt.unit, tt.item)
			}
		})
	}
}

func TestCleanWebText(t *testing.T) {
	text := `Best Brownies
ADVERTISEMENT
Subscribe to our newsletter for more recipes!
Ingredients:
- 200 g chocolate
Rate this recipe: 5 ★
Jump to recipe
Instructions:
1. Melt the chocolate.`

	got := CleanWebText(text)

	for _, noise := range []string{"ADVERTISEMENT", "newsletter", "Rate this", "Jump to"} {
		if strings.Contains(got, noise) {
			t.Errorf("noise %q survived cleaning:\n%s", noise, got)
		}
	}
	for _, want := range []string{"Best Brownies", "200 g chocolate", "Melt the chocolate."} {
		if !strings.Contains(got, want) {
			t.Errorf("content %q lost in cleaning:\n%s", want, got)
		}
	}
}

func TestConfidenceWeights(t *testing.T) {
	if ExtractionConfidenceWeight+ParseConfidenceWeight != 1.0 {
		t.Error("confidence weights must sum to 1")
	}

	if got := CombineConfidence(1, 1); got != 1 {
		t.Errorf("CombineConfidence(1,1) = %f", got)
	}
	if got := CombineConfidence(0, 0); got != 0 {
		t.Errorf("CombineConfidence(0,0) = %f", got)
	}
	if got := CombineConfidence(2, -1); got < 0 || got > 1 {
		t.Errorf("CombineConfidence must clamp, got %f", got)
	}
}

func TestParseTextEmpty(t *testing.T) {
	draft := ParseText("")
	if draft.Recipe.Name != "" {
		t.Errorf("Name = %q, want empty", draft.Recipe.Name)
	}
	if draft.Confidence != 0 {
		t.Errorf("Confidence = %f, want 0 for empty input", draft.Confidence)
	}
}
