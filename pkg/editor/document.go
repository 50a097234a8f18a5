package editor

import (
	"strconv"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

// Patch keys. A patch carries only the top-level fields a commit changed.
const (
	PatchName              = "name"
	PatchDescription       = "description"
	PatchCategory          = "category"
	PatchDifficulty        = "difficulty"
	PatchServings          = "servings"
	PatchPrepTime          = "prep_time"
	PatchCookTime          = "cook_time"
	PatchComments          = "comments"
	PatchTags              = "tags"
	PatchIngredients       = "ingredients"
	PatchIngredientStages  = "ingredient_stages"
	PatchInstructions      = "instructions"
	PatchInstructionStages = "stages"
)

// Patch is a shallow merge of named top-level recipe fields. Values carry
// the field's full new contents; a key present with a nil value clears the
// field (used when toggling between the two list shapes).
type Patch map[string]any

// UpdateFunc receives every committed patch. The document applies the
// patch itself before calling it; the callback exists so the surrounding
// application can persist or mirror the change.
type UpdateFunc func(Patch)

// Document holds the canonical recipe and applies committed mutations.
// Section commit logic is the only intended writer; reads are unrestricted.
type Document struct {
	recipe   *models.Recipe
	onUpdate UpdateFunc
}

// NewDocument wraps a recipe. onUpdate may be nil.
func NewDocument(r *models.Recipe, onUpdate UpdateFunc) *Document {
	r.EnsureIDs()
	return &Document{recipe: r, onUpdate: onUpdate}
}

// Recipe returns the live document. Callers must treat it as read-only;
// all writes go through ApplyPatch.
func (d *Document) Recipe() *models.Recipe {
	return d.recipe
}

// ApplyPatch shallow-merges the named top-level fields into the recipe and
// then invokes the update callback. It performs no validation beyond type
// shape; commit logic is responsible for producing valid patches.
func (d *Document) ApplyPatch(p Patch) {
	if len(p) == 0 {
		return
	}
	for key, v := range p {
		switch key {
		case PatchName:
			d.recipe.Name, _ = v.(string)
		case PatchDescription:
			d.recipe.Description, _ = v.(string)
		case PatchCategory:
			d.recipe.Category, _ = v.(string)
		case PatchDifficulty:
			d.recipe.Difficulty, _ = v.(string)
		case PatchServings:
			d.recipe.Servings, _ = v.(*int)
		case PatchPrepTime:
			d.recipe.PrepTime, _ = v.(*int)
		case PatchCookTime:
			d.recipe.CookTime, _ = v.(*int)
		case PatchComments:
			d.recipe.Comments, _ = v.(string)
		case PatchTags:
			d.recipe.Tags, _ = v.([]string)
		case PatchIngredients:
			d.recipe.Ingredients, _ = v.([]models.Ingredient)
		case PatchIngredientStages:
			d.recipe.IngredientStages, _ = v.([]models.IngredientStage)
		case PatchInstructions:
			d.recipe.Instructions, _ = v.([]models.Instruction)
		case PatchInstructionStages:
			d.recipe.InstructionStages, _ = v.([]models.InstructionStage)
		}
	}
	if d.onUpdate != nil {
		d.onUpdate(p)
	}
}

// TitledIngredientStages reports whether converting staged ingredients to
// the flat shape would discard a non-blank stage title. Callers must
// confirm with the user before toggling when this returns true.
func (d *Document) TitledIngredientStages() bool {
	for _, s := range d.recipe.IngredientStages {
		if s.Title != "" {
			return true
		}
	}
	return false
}

// TitledInstructionStages is TitledIngredientStages for instructions.
func (d *Document) TitledInstructionStages() bool {
	for _, s := range d.recipe.InstructionStages {
		if s.Title != "" {
			return true
		}
	}
	return false
}

// ToggleIngredientShape converts flat ingredients to a single untitled
// stage, or concatenates all stages back into a flat list, discarding
// titles. The lossy direction must be gated on TitledIngredientStages.
// Not safe while a session is editing ingredients; use the session-level
// toggle, which commits first.
func (d *Document) ToggleIngredientShape() {
	if d.recipe.UsesIngredientStages() {
		flat := []models.Ingredient{}
		for _, s := range d.recipe.IngredientStages {
			flat = append(flat, s.Ingredients...)
		}
		d.ApplyPatch(Patch{PatchIngredients: flat, PatchIngredientStages: nil})
		return
	}
	stage := models.IngredientStage{
		ID:          models.NewID(),
		Ingredients: append([]models.Ingredient{}, d.recipe.Ingredients...),
	}
	d.ApplyPatch(Patch{PatchIngredients: nil, PatchIngredientStages: []models.IngredientStage{stage}})
}

// ToggleInstructionShape is ToggleIngredientShape for instructions.
func (d *Document) ToggleInstructionShape() {
	if d.recipe.UsesInstructionStages() {
		flat := []models.Instruction{}
		for _, s := range d.recipe.InstructionStages {
			flat = append(flat, s.Instructions...)
		}
		d.ApplyPatch(Patch{PatchInstructions: flat, PatchInstructionStages: nil})
		return
	}
	stage := models.InstructionStage{
		ID:           models.NewID(),
		Instructions: append([]models.Instruction{}, d.recipe.Instructions...),
	}
	d.ApplyPatch(Patch{PatchInstructions: nil, PatchInstructionStages: []models.InstructionStage{stage}})
}

// Seed returns the pending-value map for starting an edit on ref, read
// from the current document state. Ingredient rows seed all three
// sub-fields so the user can move between them without committing.
func (d *Document) Seed(ref FieldRef) map[string]string {
	r := d.recipe
	switch ref.Kind {
	case KindIngredient:
		if ing, ok := d.lookupIngredient(ref.StageID, ref.ItemID); ok {
			return map[string]string{SubAmount: ing.Amount, SubUnit: ing.Unit, SubItem: ing.Item}
		}
		return map[string]string{SubAmount: "", SubUnit: "", SubItem: ""}
	case KindIngredientStageTitle:
		for _, s := range r.IngredientStages {
			if s.ID == ref.StageID {
				return map[string]string{SubValue: s.Title}
			}
		}
	case KindInstruction:
		if ins, ok := d.lookupInstruction(ref.StageID, ref.ItemID); ok {
			return map[string]string{SubValue: ins.Text}
		}
	case KindInstructionStageTitle:
		for _, s := range r.InstructionStages {
			if s.ID == ref.StageID {
				return map[string]string{SubValue: s.Title}
			}
		}
	case KindMeta:
		return map[string]string{SubValue: d.metaValue(ref.Meta)}
	case KindTag:
		if ref.TagIndex >= 0 && ref.TagIndex < len(r.Tags) {
			return map[string]string{SubValue: r.Tags[ref.TagIndex]}
		}
	case KindComments:
		return map[string]string{SubValue: r.Comments}
	}
	return map[string]string{SubValue: ""}
}

func (d *Document) metaValue(m MetaField) string {
	r := d.recipe
	switch m {
	case MetaName:
		return r.Name
	case MetaDescription:
		return r.Description
	case MetaCategory:
		return r.Category
	case MetaDifficulty:
		return r.Difficulty
	case MetaServings:
		return formatOptionalInt(r.Servings)
	case MetaPrepTime:
		return formatOptionalInt(r.PrepTime)
	case MetaCookTime:
		return formatOptionalInt(r.CookTime)
	}
	return ""
}

func formatOptionalInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// lookupIngredient resolves an identity key to the current row, in either
// shape. Resolution happens at read/commit time only; indices are never
// cached across edits.
func (d *Document) lookupIngredient(stageID, itemID string) (models.Ingredient, bool) {
	if stageID == "" {
		for _, ing := range d.recipe.Ingredients {
			if ing.ID == itemID {
				return ing, true
			}
		}
		return models.Ingredient{}, false
	}
	for _, s := range d.recipe.IngredientStages {
		if s.ID != stageID {
			continue
		}
		for _, ing := range s.Ingredients {
			if ing.ID == itemID {
				return ing, true
			}
		}
	}
	return models.Ingredient{}, false
}

func (d *Document) lookupInstruction(stageID, itemID string) (models.Instruction, bool) {
	if stageID == "" {
		for _, ins := range d.recipe.Instructions {
			if ins.ID == itemID {
				return ins, true
			}
		}
		return models.Instruction{}, false
	}
	for _, s := range d.recipe.InstructionStages {
		if s.ID != stageID {
			continue
		}
		for _, ins := range s.Instructions {
			if ins.ID == itemID {
				return ins, true
			}
		}
	}
	return models.Instruction{}, false
}
