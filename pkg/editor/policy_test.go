package editor

import (
	"testing"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

func TestShouldCommit(t *testing.T) {
	r := models.NewRecipe("Pancakes")
	r.Ingredients = []models.Ingredient{
		{ID: "i1", Amount: "2", Unit: "cups", Item: "flour"},
		{ID: "i2", Amount: "3", Item: "eggs"},
	}
	doc := NewDocument(r, nil)

	tests := []struct {
		name   string
		start  func(s *Session)
		target Target
		want   bool
	}{
		{
			"idle session never commits",
			func(s *Session) {},
			Target{Field: MetaRef(MetaName), HasField: true},
			false,
		},
		{
			"same ingredient row is ignored",
			func(s *Session) { s.StartEdit(IngredientRef("", "i1")) },
			Target{Field: IngredientRef("", "i1"), HasField: true},
			false,
		},
		{
			"different ingredient row commits",
			func(s *Session) { s.StartEdit(IngredientRef("", "i1")) },
			Target{Field: IngredientRef("", "i2"), HasField: true},
			true,
		},
		{
			"select control is ignored",
			func(s *Session) { s.StartEdit(MetaRef(MetaName)) },
			Target{SelectControl: true},
			false,
		},
		{
			"non-committing control is ignored",
			func(s *Session) { s.StartEdit(IngredientRef("", "i1")) },
			Target{NonCommitting: true},
			false,
		},
		{
			"unrelated region commits",
			func(s *Session) { s.StartEdit(IngredientRef("", "i1")) },
			Target{},
			true,
		},
		{
			"metadata edit commits even on same-field target",
			func(s *Session) { s.StartEdit(MetaRef(MetaName)) },
			Target{Field: MetaRef(MetaName), HasField: true},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSession(doc)
			tt.start(s)
			if got := ShouldCommit(s, tt.target); got != tt.want {
				t.Errorf("ShouldCommit() = %v, want %v", got, tt.want)
			}
			s.Cancel()
		})
	}
}

func TestHandleOutsideCommits(t *testing.T) {
	r := models.NewRecipe("Pancakes")
	r.Ingredients = []models.Ingredient{{ID: "i1", Amount: "2", Unit: "cups", Item: "flour"}}
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	s.StartEdit(IngredientRef("", "i1"))
	s.Update(SubAmount, "4")

	// Click inside the same row: pending edits survive.
	if HandleOutside(s, Target{Field: IngredientRef("", "i1"), HasField: true}) {
		t.Fatal("same-row interaction committed the session")
	}
	if s.Pending(SubAmount) != "4" {
		t.Fatal("pending value lost on ignored interaction")
	}

	// Click elsewhere: commit.
	if !HandleOutside(s, Target{}) {
		t.Fatal("outside interaction did not commit")
	}
	if r.Ingredients[0].Amount != "4" {
		t.Errorf("Amount = %q, want committed pending value", r.Ingredients[0].Amount)
	}
}
