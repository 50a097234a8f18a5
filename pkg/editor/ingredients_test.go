package editor

import (
	"testing"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

func TestAddThenEditIngredient(t *testing.T) {
	r := models.NewRecipe("Pancakes")
	r.Ingredients = []models.Ingredient{}
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	ref := s.AddIngredient("")

	if len(r.Ingredients) != 1 {
		t.Fatalf("ingredients = %d, want 1 after add", len(r.Ingredients))
	}
	if !s.Active() || !s.Field().SameItem(ref) {
		t.Fatal("editing did not auto-start on the new row")
	}

	s.Update(SubAmount, "2")
	s.Update(SubUnit, "cups")
	s.Update(SubItem, "flour")
	s.Commit()

	got := r.Ingredients[0]
	if got.Amount != "2" || got.Unit != "cups" || got.Item != "flour" {
		t.Errorf("committed row = %+v, want {2 cups flour}", got)
	}
}

func TestEmptyRowPruning(t *testing.T) {
	r := models.NewRecipe("Pancakes")
	r.Ingredients = []models.Ingredient{
		{ID: "i1", Amount: "2", Unit: "cups", Item: "flour"},
		{ID: "i2"}, // fully blank row
	}
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	s.StartEdit(IngredientRef("", "i2"))
	s.Update(SubAmount, "   ") // still blank after trim
	s.Commit()

	if len(r.Ingredients) != 1 {
		t.Fatalf("ingredients = %d, want blank row pruned to 1", len(r.Ingredients))
	}
	if r.Ingredients[0].ID != "i1" {
		t.Errorf("wrong row pruned: %+v", r.Ingredients)
	}
}

func TestCommitClearsRowToBlankDeletesIt(t *testing.T) {
	r := models.NewRecipe("Pancakes")
	r.Ingredients = []models.Ingredient{{ID: "i1", Amount: "1", Unit: "tsp", Item: "salt"}}
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	s.StartEdit(IngredientRef("", "i1"))
	s.Update(SubAmount, "")
	s.Update(SubUnit, "")
	s.Update(SubItem, "")
	s.Commit()

	if len(r.Ingredients) != 0 {
		t.Errorf("ingredients = %d, want 0 after clearing all sub-fields", len(r.Ingredients))
	}
}

func TestStagedIngredientCommit(t *testing.T) {
	r := models.NewRecipe("Cake")
	r.IngredientStages = []models.IngredientStage{
		{ID: "st1", Title: "Batter", Ingredients: []models.Ingredient{{ID: "i1", Amount: "200", Unit: "g", Item: "sugar"}}},
		{ID: "st2", Title: "Frosting", Ingredients: []models.Ingredient{{ID: "i2", Amount: "100", Unit: "g", Item: "butter"}}},
	}
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	s.StartEdit(IngredientRef("st2", "i2"))
	s.Update(SubAmount, "150")
	s.Commit()

	if r.IngredientStages[1].Ingredients[0].Amount != "150" {
		t.Errorf("staged row not updated: %+v", r.IngredientStages[1].Ingredients[0])
	}
	if r.IngredientStages[0].Ingredients[0].Amount != "200" {
		t.Error("commit leaked into another stage")
	}
}

func TestStageTitleCommit(t *testing.T) {
	r := models.NewRecipe("Cake")
	r.IngredientStages = []models.IngredientStage{{ID: "st1", Ingredients: []models.Ingredient{}}}
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	s.StartEdit(IngredientStageTitleRef("st1"))
	s.Update(SubValue, "  Batter ")
	s.Commit()

	if r.IngredientStages[0].Title != "Batter" {
		t.Errorf("stage title = %q, want trimmed %q", r.IngredientStages[0].Title, "Batter")
	}
}

func TestDeleteIngredientCancelsOwnSession(t *testing.T) {
	r := models.NewRecipe("Pancakes")
	r.Ingredients = []models.Ingredient{{ID: "i1", Amount: "2", Unit: "cups", Item: "flour"}}
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	s.StartEdit(IngredientRef("", "i1"))
	s.Update(SubItem, "spelt flour")
	s.DeleteIngredient(IngredientRef("", "i1"))

	if s.Active() {
		t.Error("session survived deleting its own row")
	}
	if len(r.Ingredients) != 0 {
		t.Errorf("ingredients = %d, want row deleted", len(r.Ingredients))
	}
}

func TestMoveIngredient(t *testing.T) {
	r := models.NewRecipe("Pancakes")
	r.Ingredients = []models.Ingredient{{ID: "a", Item: "flour"}, {ID: "b", Item: "eggs"}, {ID: "c", Item: "milk"}}
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	tests := []struct {
		name  string
		id    string
		delta int
		want  []string
	}{
		{"move down", "a", 1, []string{"b", "a", "c"}},
		{"move up", "c", -1, []string{"b", "c", "a"}},
		{"move past top", "b", -1, []string{"b", "c", "a"}},
		{"move past bottom", "a", 1, []string{"b", "c", "a"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.MoveIngredient(IngredientRef("", tt.id), tt.delta)
			for i, want := range tt.want {
				if r.Ingredients[i].ID != want {
					t.Fatalf("order = %v, want %v", ids(r.Ingredients), tt.want)
				}
			}
		})
	}
}

func ids(list []models.Ingredient) []string {
	out := make([]string, len(list))
	for i, ing := range list {
		out[i] = ing.ID
	}
	return out
}

func TestIngredientStageAddDelete(t *testing.T) {
	r := models.NewRecipe("Cake")
	r.IngredientStages = []models.IngredientStage{
		{ID: "st1", Title: "Batter", Ingredients: []models.Ingredient{{ID: "i1", Item: "sugar"}}},
	}
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	ref := s.AddIngredientStage()
	if len(r.IngredientStages) != 2 {
		t.Fatalf("stages = %d, want 2 after add", len(r.IngredientStages))
	}
	if !s.Active() || s.Field().Kind != KindIngredientStageTitle {
		t.Error("title editing did not auto-start on the new stage")
	}
	s.Update(SubValue, "Frosting")
	s.Commit()
	if r.IngredientStages[1].Title != "Frosting" {
		t.Errorf("new stage title = %q", r.IngredientStages[1].Title)
	}

	s.DeleteIngredientStage(ref.StageID)
	if len(r.IngredientStages) != 1 {
		t.Errorf("stages = %d, want 1 after delete", len(r.IngredientStages))
	}
}

func TestStaleIngredientCommitIsNoop(t *testing.T) {
	r := models.NewRecipe("Pancakes")
	r.Ingredients = []models.Ingredient{{ID: "i1", Item: "flour"}}
	updates := 0
	doc := NewDocument(r, func(Patch) { updates++ })
	s := NewSession(doc)

	s.StartEdit(IngredientRef("", "deleted-long-ago"))
	s.Update(SubItem, "ghost")
	s.Commit()

	if updates != 0 {
		t.Errorf("stale commit produced %d patches, want 0", updates)
	}
	if len(r.Ingredients) != 1 || r.Ingredients[0].Item != "flour" {
		t.Errorf("document mutated by stale commit: %+v", r.Ingredients)
	}
}
