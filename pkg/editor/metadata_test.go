package editor

import (
	"testing"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

func TestNumericCoercion(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{"valid number", "30", intPtr(30)},
		{"non-numeric", "abc", nil},
		{"blank", "", nil},
		{"blank after trim", "   ", nil},
		{"negative", "-5", nil},
		{"trailing junk", "30 min", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.NewRecipe("Pancakes")
			prep := 30
			r.PrepTime = &prep
			doc := NewDocument(r, nil)
			s := NewSession(doc)

			s.StartEdit(MetaRef(MetaPrepTime))
			s.Update(SubValue, tt.input)
			s.Commit()

			switch {
			case tt.want == nil && r.PrepTime != nil:
				t.Errorf("PrepTime = %d, want nil", *r.PrepTime)
			case tt.want != nil && (r.PrepTime == nil || *r.PrepTime != *tt.want):
				t.Errorf("PrepTime = %v, want %d", r.PrepTime, *tt.want)
			}
		})
	}
}

func intPtr(n int) *int { return &n }

func TestEnumFieldsRevertOnInvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		meta  MetaField
		prior string
		input string
		want  string
	}{
		{"valid category", MetaCategory, "", "dessert", "dessert"},
		{"category case folded", MetaCategory, "", "Dessert", "dessert"},
		{"invalid category keeps prior", MetaCategory, "main", "midnight-snack", "main"},
		{"empty clears category", MetaCategory, "main", "", ""},
		{"valid difficulty", MetaDifficulty, "", "easy", "easy"},
		{"invalid difficulty keeps prior", MetaDifficulty, "hard", "brutal", "hard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := models.NewRecipe("Pancakes")
			if tt.meta == MetaCategory {
				r.Category = tt.prior
			} else {
				r.Difficulty = tt.prior
			}
			doc := NewDocument(r, nil)
			s := NewSession(doc)

			s.StartEdit(MetaRef(tt.meta))
			s.Update(SubValue, tt.input)
			s.Commit()

			got := r.Category
			if tt.meta == MetaDifficulty {
				got = r.Difficulty
			}
			if got != tt.want {
				t.Errorf("%s = %q, want %q", tt.meta, got, tt.want)
			}
		})
	}
}

func TestNameAndDescriptionTrimmed(t *testing.T) {
	r := models.NewRecipe("Pancakes")
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	s.StartEdit(MetaRef(MetaName))
	s.Update(SubValue, "  Thin Pancakes  ")
	s.Commit()
	if r.Name != "Thin Pancakes" {
		t.Errorf("Name = %q", r.Name)
	}

	s.StartEdit(MetaRef(MetaDescription))
	s.Update(SubValue, " A weekend favorite. ")
	s.Commit()
	if r.Description != "A weekend favorite." {
		t.Errorf("Description = %q", r.Description)
	}
}

func TestMissingPendingKeysReadAsEmpty(t *testing.T) {
	// Best-effort commit: a session with no Update calls commits the seed
	// (or empty strings), never panics.
	r := models.NewRecipe("Pancakes")
	servings := 4
	r.Servings = &servings
	doc := NewDocument(r, nil)
	s := NewSession(doc)

	s.Start(MetaRef(MetaServings), nil)
	s.Commit()

	if r.Servings != nil {
		t.Errorf("Servings = %v, want nil for empty pending value", *r.Servings)
	}
}
