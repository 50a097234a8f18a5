package editor

import (
	"strings"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

// commitIngredients interprets a committed ingredient edit: stage title
// writes, or an amount/unit/item row write followed by empty-row pruning.
// A reference that no longer resolves (the row or stage was deleted while
// the session was open) commits as a no-op rather than mutating a
// neighbor; identity keys are re-resolved here, never cached.
func commitIngredients(doc *Document, ref FieldRef, pending map[string]string) {
	r := doc.Recipe()
	switch ref.Kind {
	case KindIngredientStageTitle:
		stages := cloneIngredientStages(r.IngredientStages)
		for i := range stages {
			if stages[i].ID == ref.StageID {
				stages[i].Title = strings.TrimSpace(pending[SubValue])
				doc.ApplyPatch(Patch{PatchIngredientStages: stages})
				return
			}
		}

	case KindIngredient:
		row := models.Ingredient{
			ID:     ref.ItemID,
			Amount: strings.TrimSpace(pending[SubAmount]),
			Unit:   strings.TrimSpace(pending[SubUnit]),
			Item:   strings.TrimSpace(pending[SubItem]),
		}
		if ref.StageID == "" {
			list := writeIngredientRow(r.Ingredients, row)
			if list != nil {
				doc.ApplyPatch(Patch{PatchIngredients: list})
			}
			return
		}
		stages := cloneIngredientStages(r.IngredientStages)
		for i := range stages {
			if stages[i].ID != ref.StageID {
				continue
			}
			list := writeIngredientRow(stages[i].Ingredients, row)
			if list != nil {
				stages[i].Ingredients = list
				doc.ApplyPatch(Patch{PatchIngredientStages: stages})
			}
			return
		}
	}
}

// writeIngredientRow replaces the row with row.ID in a copy of list,
// dropping it when all three sub-fields ended up blank. Returns nil when
// the ID does not resolve.
func writeIngredientRow(list []models.Ingredient, row models.Ingredient) []models.Ingredient {
	for i := range list {
		if list[i].ID != row.ID {
			continue
		}
		out := append([]models.Ingredient{}, list...)
		if row.Empty() {
			return append(out[:i], out[i+1:]...)
		}
		out[i] = row
		return out
	}
	return nil
}

func cloneIngredientStages(stages []models.IngredientStage) []models.IngredientStage {
	out := make([]models.IngredientStage, len(stages))
	for i, s := range stages {
		s.Ingredients = append([]models.Ingredient{}, s.Ingredients...)
		out[i] = s
	}
	return out
}

// AddIngredient appends a blank row to the flat list (stageID "") or to
// the given stage, commits any active session first, and immediately
// starts editing the new row's amount sub-field. Returns the new row's
// reference.
func (s *Session) AddIngredient(stageID string) FieldRef {
	if s.active {
		s.Commit()
	}
	r := s.doc.Recipe()
	row := models.NewIngredient()
	if stageID == "" && !r.UsesIngredientStages() {
		list := append(append([]models.Ingredient{}, r.Ingredients...), row)
		s.doc.ApplyPatch(Patch{PatchIngredients: list})
	} else {
		stages := cloneIngredientStages(r.IngredientStages)
		placed := false
		for i := range stages {
			if stages[i].ID == stageID {
				stages[i].Ingredients = append(stages[i].Ingredients, row)
				placed = true
				break
			}
		}
		if !placed {
			return FieldRef{}
		}
		s.doc.ApplyPatch(Patch{PatchIngredientStages: stages})
	}
	ref := IngredientRef(stageID, row.ID)
	s.StartEdit(ref)
	return ref
}

// DeleteIngredient removes the referenced row. An active session on the
// same row is cancelled (committing a row being deleted would resurrect
// it); any other active session commits first.
func (s *Session) DeleteIngredient(ref FieldRef) {
	if s.active {
		if s.field.SameItem(ref) {
			s.Cancel()
		} else {
			s.Commit()
		}
	}
	r := s.doc.Recipe()
	if ref.StageID == "" {
		if list := removeIngredient(r.Ingredients, ref.ItemID); list != nil {
			s.doc.ApplyPatch(Patch{PatchIngredients: list})
		}
		return
	}
	stages := cloneIngredientStages(r.IngredientStages)
	for i := range stages {
		if stages[i].ID != ref.StageID {
			continue
		}
		if list := removeIngredient(stages[i].Ingredients, ref.ItemID); list != nil {
			stages[i].Ingredients = list
			s.doc.ApplyPatch(Patch{PatchIngredientStages: stages})
		}
		return
	}
}

func removeIngredient(list []models.Ingredient, itemID string) []models.Ingredient {
	for i := range list {
		if list[i].ID == itemID {
			out := append([]models.Ingredient{}, list...)
			return append(out[:i], out[i+1:]...)
		}
	}
	return nil
}

// MoveIngredient moves the referenced row by delta (-1 up, +1 down)
// within its own list level. Cross-stage moves are not supported; moves
// past either end are no-ops. Any active session commits first.
func (s *Session) MoveIngredient(ref FieldRef, delta int) {
	if s.active {
		s.Commit()
	}
	r := s.doc.Recipe()
	if ref.StageID == "" {
		if list := swapIngredient(r.Ingredients, ref.ItemID, delta); list != nil {
			s.doc.ApplyPatch(Patch{PatchIngredients: list})
		}
		return
	}
	stages := cloneIngredientStages(r.IngredientStages)
	for i := range stages {
		if stages[i].ID != ref.StageID {
			continue
		}
		if list := swapIngredient(stages[i].Ingredients, ref.ItemID, delta); list != nil {
			stages[i].Ingredients = list
			s.doc.ApplyPatch(Patch{PatchIngredientStages: stages})
		}
		return
	}
}

func swapIngredient(list []models.Ingredient, itemID string, delta int) []models.Ingredient {
	for i := range list {
		if list[i].ID != itemID {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(list) {
			return nil
		}
		out := append([]models.Ingredient{}, list...)
		out[i], out[j] = out[j], out[i]
		return out
	}
	return nil
}

// AddIngredientStage appends an untitled stage and starts editing its
// title. Only valid in the staged shape.
func (s *Session) AddIngredientStage() FieldRef {
	if s.active {
		s.Commit()
	}
	r := s.doc.Recipe()
	if !r.UsesIngredientStages() {
		return FieldRef{}
	}
	stage := models.IngredientStage{ID: models.NewID(), Ingredients: []models.Ingredient{}}
	stages := append(cloneIngredientStages(r.IngredientStages), stage)
	s.doc.ApplyPatch(Patch{PatchIngredientStages: stages})
	ref := IngredientStageTitleRef(stage.ID)
	s.StartEdit(ref)
	return ref
}

// DeleteIngredientStage removes a stage and every ingredient in it. An
// active session inside the stage is cancelled.
func (s *Session) DeleteIngredientStage(stageID string) {
	if s.active {
		if s.field.StageID == stageID {
			s.Cancel()
		} else {
			s.Commit()
		}
	}
	r := s.doc.Recipe()
	for i := range r.IngredientStages {
		if r.IngredientStages[i].ID != stageID {
			continue
		}
		stages := cloneIngredientStages(r.IngredientStages)
		stages = append(stages[:i], stages[i+1:]...)
		s.doc.ApplyPatch(Patch{PatchIngredientStages: stages})
		return
	}
}
