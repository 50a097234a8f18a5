package models

import (
	"testing"
)

func TestRecipeValidate(t *testing.T) {
	tests := []struct {
		name    string
		recipe  func() *Recipe
		wantErr error
	}{
		{
			"valid flat recipe",
			func() *Recipe {
				r := NewRecipe("Pancakes")
				r.Ingredients = []Ingredient{{ID: NewID(), Amount: "2", Unit: "cups", Item: "flour"}}
				r.Instructions = []Instruction{NewInstruction("Mix everything.")}
				return r
			},
			nil,
		},
		{
			"empty name",
			func() *Recipe { return NewRecipe("") },
			ErrEmptyRecipeName,
		},
		{
			"both ingredient shapes",
			func() *Recipe {
				r := NewRecipe("Broken")
				r.Ingredients = []Ingredient{NewIngredient()}
				r.IngredientStages = []IngredientStage{{ID: NewID(), Title: "Dough"}}
				return r
			},
			ErrBothIngredientShapes,
		},
		{
			"both instruction shapes",
			func() *Recipe {
				r := NewRecipe("Broken")
				r.Instructions = []Instruction{NewInstruction("Mix.")}
				r.InstructionStages = []InstructionStage{{ID: NewID(), Title: "Prep"}}
				return r
			},
			ErrBothInstructionShapes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.recipe().Validate()
			if err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEnsureIDs(t *testing.T) {
	r := &Recipe{
		Name: "Soup",
		IngredientStages: []IngredientStage{
			{Title: "Base", Ingredients: []Ingredient{{Item: "onion"}, {Item: "carrot"}}},
		},
		InstructionStages: []InstructionStage{
			{Title: "Prep", Instructions: []Instruction{{Text: "Chop."}}},
		},
	}

	r.EnsureIDs()

	if r.ID == "" {
		t.Error("recipe ID not assigned")
	}
	seen := map[string]bool{}
	check := func(id string) {
		if id == "" {
			t.Error("entry left without ID")
		}
		if seen[id] {
			t.Errorf("duplicate ID %q", id)
		}
		seen[id] = true
	}
	for _, s := range r.IngredientStages {
		check(s.ID)
		for _, i := range s.Ingredients {
			check(i.ID)
		}
	}
	for _, s := range r.InstructionStages {
		check(s.ID)
		for _, i := range s.Instructions {
			check(i.ID)
		}
	}
}

func TestIngredientEmpty(t *testing.T) {
	tests := []struct {
		name     string
		ing      Ingredient
		expected bool
	}{
		{"all blank", Ingredient{ID: "x"}, true},
		{"amount only", Ingredient{ID: "x", Amount: "2"}, false},
		{"unit only", Ingredient{ID: "x", Unit: "cups"}, false},
		{"item only", Ingredient{ID: "x", Item: "flour"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ing.Empty(); got != tt.expected {
				t.Errorf("Empty() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestClone(t *testing.T) {
	r := NewRecipe("Stew")
	r.Tags = []string{"winter"}
	r.Ingredients = []Ingredient{{ID: NewID(), Amount: "1", Unit: "kg", Item: "beef"}}
	servings := 4
	r.Servings = &servings

	c := r.Clone()
	c.Tags[0] = "summer"
	c.Ingredients[0].Item = "lamb"
	*c.Servings = 8

	if r.Tags[0] != "winter" {
		t.Error("clone shares tag backing array")
	}
	if r.Ingredients[0].Item != "beef" {
		t.Error("clone shares ingredient backing array")
	}
	if *r.Servings != 4 {
		t.Error("clone shares servings pointer")
	}
}
