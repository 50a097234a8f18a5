package composer

import (
	"strings"
	"testing"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

func TestComposeRecipeFlat(t *testing.T) {
	r := models.NewRecipe("Pancakes")
	r.Description = "Weekend breakfast."
	r.Category = "breakfast"
	servings := 4
	r.Servings = &servings
	r.Ingredients = []models.Ingredient{
		{ID: "i1", Amount: "2", Unit: "cups", Item: "flour"},
		{ID: "i2", Amount: "3", Item: "eggs"},
	}
	r.Instructions = []models.Instruction{
		{ID: "s1", Text: "Mix the batter."},
		{ID: "s2", Text: "Fry until golden."},
	}
	r.Tags = []string{"breakfast", "quick"}
	r.Comments = "Rest the batter 10 minutes."

	got, err := ComposeRecipe(r, DefaultOptions())
	if err != nil {
		t.Fatalf("ComposeRecipe() error = %v", err)
	}

	for _, want := range []string{
		"# Pancakes",
		"Weekend breakfast.",
		"Category: breakfast",
		"Serves 4",
		"- 2 cups flour",
		"- 3 eggs",
		"1. Mix the batter.",
		"2. Fry until golden.",
		"## Notes",
		"Rest the batter 10 minutes.",
		"Tags: breakfast, quick",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestComposeRecipeStaged(t *testing.T) {
	r := models.NewRecipe("Layer Cake")
	r.IngredientStages = []models.IngredientStage{
		{ID: "st1", Title: "Batter", Ingredients: []models.Ingredient{{ID: "i1", Amount: "200", Unit: "g", Item: "sugar"}}},
		{ID: "st2", Title: "Frosting", Ingredients: []models.Ingredient{{ID: "i2", Amount: "100", Unit: "g", Item: "butter"}}},
	}
	r.InstructionStages = []models.InstructionStage{
		{ID: "st3", Title: "Bake", Instructions: []models.Instruction{{ID: "s1", Text: "Bake at 180C."}}},
	}

	got, err := ComposeRecipe(r, DefaultOptions())
	if err != nil {
		t.Fatalf("ComposeRecipe() error = %v", err)
	}

	batterIdx := strings.Index(got, "### Batter")
	frostingIdx := strings.Index(got, "### Frosting")
	if batterIdx == -1 || frostingIdx == -1 {
		t.Fatalf("stage headings missing:\n%s", got)
	}
	if batterIdx > frostingIdx {
		t.Error("stages rendered out of order")
	}
	if !strings.Contains(got, "### Bake") {
		t.Errorf("instruction stage heading missing:\n%s", got)
	}
}

func TestComposeRecipeOptions(t *testing.T) {
	r := models.NewRecipe("Toast")
	r.Comments = "Butter generously."
	r.Tags = []string{"snack"}

	got, err := ComposeRecipe(r, Options{})
	if err != nil {
		t.Fatalf("ComposeRecipe() error = %v", err)
	}
	if strings.Contains(got, "Notes") || strings.Contains(got, "Tags:") {
		t.Errorf("disabled sections rendered:\n%s", got)
	}
}

func TestComposeRecipeNil(t *testing.T) {
	if _, err := ComposeRecipe(nil, DefaultOptions()); err == nil {
		t.Error("ComposeRecipe(nil) did not error")
	}
}

func TestComposeSkipsBlankRows(t *testing.T) {
	r := models.NewRecipe("Sparse")
	r.Ingredients = []models.Ingredient{{ID: "i1"}, {ID: "i2", Item: "salt"}}
	r.Instructions = []models.Instruction{{ID: "s1"}, {ID: "s2", Text: "Season."}}

	got, err := ComposeRecipe(r, DefaultOptions())
	if err != nil {
		t.Fatalf("ComposeRecipe() error = %v", err)
	}
	if strings.Contains(got, "- \n") {
		t.Errorf("blank ingredient rendered:\n%s", got)
	}
	if !strings.Contains(got, "1. Season.") {
		t.Errorf("numbering must skip blank lines:\n%s", got)
	}
}
