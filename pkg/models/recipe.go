package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recipe-related errors
var (
	ErrBothIngredientShapes  = errors.New("recipe has both flat and staged ingredients")
	ErrBothInstructionShapes = errors.New("recipe has both flat and staged instructions")
	ErrEmptyRecipeName       = errors.New("recipe name cannot be empty")
)

// Recipe is the root document. Ingredients live in exactly one of
// Ingredients / IngredientStages at any time, and instructions in exactly
// one of Instructions / InstructionStages. Converting between the two
// shapes goes through the editor's shape toggles, never by populating both.
type Recipe struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Category    string `yaml:"category,omitempty"`
	Difficulty  string `yaml:"difficulty,omitempty"`
	Servings    *int   `yaml:"servings,omitempty"`
	PrepTime    *int   `yaml:"prep_time,omitempty"`
	CookTime    *int   `yaml:"cook_time,omitempty"`
	Comments    string `yaml:"comments,omitempty"`

	// Tags keep their display order; they are never sorted.
	Tags []string `yaml:"tags,omitempty"`

	Ingredients      []Ingredient      `yaml:"ingredients,omitempty"`
	IngredientStages []IngredientStage `yaml:"ingredient_stages,omitempty"`

	Instructions      []Instruction      `yaml:"instructions,omitempty"`
	InstructionStages []InstructionStage `yaml:"stages,omitempty"`

	SourceURL string    `yaml:"source_url,omitempty"`
	CreatedAt time.Time `yaml:"created_at,omitempty"`
	UpdatedAt time.Time `yaml:"updated_at,omitempty"`

	// Path is the file the recipe was loaded from, relative to the
	// recipes directory. Not serialized.
	Path string `yaml:"-"`
}

// Ingredient is a single ingredient row. Amount is a string on purpose:
// real recipes contain ranges and fractions ("1-2", "1/2") that must
// round-trip unchanged.
type Ingredient struct {
	ID     string `yaml:"id"`
	Amount string `yaml:"amount"`
	Unit   string `yaml:"unit"`
	Item   string `yaml:"item"`
}

// Instruction is a single instruction line.
type Instruction struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

// IngredientStage groups ingredients under a stage title.
type IngredientStage struct {
	ID          string       `yaml:"id"`
	Title       string       `yaml:"title"`
	Ingredients []Ingredient `yaml:"ingredients"`
}

// InstructionStage groups instruction lines under a stage title.
type InstructionStage struct {
	ID           string        `yaml:"id"`
	Title        string        `yaml:"title"`
	Instructions []Instruction `yaml:"instructions"`
}

// NewID returns a fresh identity key for a recipe, ingredient, instruction
// or stage. Identity is assigned at creation and never derived from
// content, so two rows with identical content stay distinguishable across
// reorders and edits.
func NewID() string {
	return uuid.NewString()
}

// NewRecipe creates an empty recipe with an identity and timestamps.
func NewRecipe(name string) *Recipe {
	now := time.Now().UTC()
	return &Recipe{
		ID:        NewID(),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewIngredient creates a blank ingredient row with a fresh identity.
func NewIngredient() Ingredient {
	return Ingredient{ID: NewID()}
}

// NewInstruction creates an instruction line with a fresh identity.
func NewInstruction(text string) Instruction {
	return Instruction{ID: NewID(), Text: text}
}

// Empty reports whether every sub-field of the ingredient is blank.
func (i Ingredient) Empty() bool {
	return i.Amount == "" && i.Unit == "" && i.Item == ""
}

// UsesIngredientStages reports whether the recipe currently holds its
// ingredients in the staged shape.
func (r *Recipe) UsesIngredientStages() bool {
	return r.IngredientStages != nil
}

// UsesInstructionStages reports whether the recipe currently holds its
// instructions in the staged shape.
func (r *Recipe) UsesInstructionStages() bool {
	return r.InstructionStages != nil
}

// IngredientCount returns the total ingredient rows across either shape.
func (r *Recipe) IngredientCount() int {
	if r.UsesIngredientStages() {
		n := 0
		for _, s := range r.IngredientStages {
			n += len(s.Ingredients)
		}
		return n
	}
	return len(r.Ingredients)
}

// InstructionCount returns the total instruction lines across either shape.
func (r *Recipe) InstructionCount() int {
	if r.UsesInstructionStages() {
		n := 0
		for _, s := range r.InstructionStages {
			n += len(s.Instructions)
		}
		return n
	}
	return len(r.Instructions)
}

// Validate checks the structural invariants that persistence relies on.
func (r *Recipe) Validate() error {
	if r.Name == "" {
		return ErrEmptyRecipeName
	}
	if r.Ingredients != nil && r.IngredientStages != nil {
		return ErrBothIngredientShapes
	}
	if r.Instructions != nil && r.InstructionStages != nil {
		return ErrBothInstructionShapes
	}
	return nil
}

// EnsureIDs assigns identity keys to any entries that lack one. Recipes
// written by hand or imported from other tools routinely omit them.
func (r *Recipe) EnsureIDs() {
	if r.ID == "" {
		r.ID = NewID()
	}
	for i := range r.Ingredients {
		if r.Ingredients[i].ID == "" {
			r.Ingredients[i].ID = NewID()
		}
	}
	for i := range r.IngredientStages {
		if r.IngredientStages[i].ID == "" {
			r.IngredientStages[i].ID = NewID()
		}
		for j := range r.IngredientStages[i].Ingredients {
			if r.IngredientStages[i].Ingredients[j].ID == "" {
				r.IngredientStages[i].Ingredients[j].ID = NewID()
			}
		}
	}
	for i := range r.Instructions {
		if r.Instructions[i].ID == "" {
			r.Instructions[i].ID = NewID()
		}
	}
	for i := range r.InstructionStages {
		if r.InstructionStages[i].ID == "" {
			r.InstructionStages[i].ID = NewID()
		}
		for j := range r.InstructionStages[i].Instructions {
			if r.InstructionStages[i].Instructions[j].ID == "" {
				r.InstructionStages[i].Instructions[j].ID = NewID()
			}
		}
	}
}

// Normalize trims surrounding whitespace from every text field and folds
// category and difficulty to lower case. Editing already stores values in
// this form; normalizing at load time brings hand-written and imported
// files onto the same footing, so saving an untouched recipe never
// rewrites its content.
func (r *Recipe) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Description = strings.TrimSpace(r.Description)
	r.Comments = strings.TrimSpace(r.Comments)
	r.Category = strings.ToLower(strings.TrimSpace(r.Category))
	r.Difficulty = strings.ToLower(strings.TrimSpace(r.Difficulty))
	r.SourceURL = strings.TrimSpace(r.SourceURL)
	for i := range r.Tags {
		r.Tags[i] = strings.TrimSpace(r.Tags[i])
	}
	for i := range r.Ingredients {
		normalizeIngredient(&r.Ingredients[i])
	}
	for i := range r.IngredientStages {
		r.IngredientStages[i].Title = strings.TrimSpace(r.IngredientStages[i].Title)
		for j := range r.IngredientStages[i].Ingredients {
			normalizeIngredient(&r.IngredientStages[i].Ingredients[j])
		}
	}
	for i := range r.Instructions {
		r.Instructions[i].Text = strings.TrimSpace(r.Instructions[i].Text)
	}
	for i := range r.InstructionStages {
		r.InstructionStages[i].Title = strings.TrimSpace(r.InstructionStages[i].Title)
		for j := range r.InstructionStages[i].Instructions {
			r.InstructionStages[i].Instructions[j].Text = strings.TrimSpace(r.InstructionStages[i].Instructions[j].Text)
		}
	}
}

func normalizeIngredient(in *Ingredient) {
	in.Amount = strings.TrimSpace(in.Amount)
	in.Unit = strings.TrimSpace(in.Unit)
	in.Item = strings.TrimSpace(in.Item)
}

// Clone returns a deep copy of the recipe.
func (r *Recipe) Clone() *Recipe {
	c := *r
	c.Tags = append([]string(nil), r.Tags...)
	if r.Servings != nil {
		v := *r.Servings
		c.Servings = &v
	}
	if r.PrepTime != nil {
		v := *r.PrepTime
		c.PrepTime = &v
	}
	if r.CookTime != nil {
		v := *r.CookTime
		c.CookTime = &v
	}
	if r.Ingredients != nil {
		c.Ingredients = append([]Ingredient(nil), r.Ingredients...)
	}
	if r.IngredientStages != nil {
		c.IngredientStages = make([]IngredientStage, len(r.IngredientStages))
		for i, s := range r.IngredientStages {
			s.Ingredients = append([]Ingredient(nil), s.Ingredients...)
			c.IngredientStages[i] = s
		}
	}
	if r.Instructions != nil {
		c.Instructions = append([]Instruction(nil), r.Instructions...)
	}
	if r.InstructionStages != nil {
		c.InstructionStages = make([]InstructionStage, len(r.InstructionStages))
		for i, s := range r.InstructionStages {
			s.Instructions = append([]Instruction(nil), s.Instructions...)
			c.InstructionStages[i] = s
		}
	}
	return &c
}
