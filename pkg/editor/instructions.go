package editor

import (
	"strings"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

// commitInstructions interprets a committed instruction edit. A line left
// blank after the commit is deleted rather than kept as an empty row.
// Stale references (line or stage deleted mid-session) are no-ops.
func commitInstructions(doc *Document, ref FieldRef, pending map[string]string) {
	r := doc.Recipe()
	switch ref.Kind {
	case KindInstructionStageTitle:
		stages := cloneInstructionStages(r.InstructionStages)
		for i := range stages {
			if stages[i].ID == ref.StageID {
				stages[i].Title = strings.TrimSpace(pending[SubValue])
				doc.ApplyPatch(Patch{PatchInstructionStages: stages})
				return
			}
		}

	case KindInstruction:
		text := strings.TrimSpace(pending[SubValue])
		if ref.StageID == "" {
			if list := writeInstructionLine(r.Instructions, ref.ItemID, text); list != nil {
				doc.ApplyPatch(Patch{PatchInstructions: list})
			}
			return
		}
		stages := cloneInstructionStages(r.InstructionStages)
		for i := range stages {
			if stages[i].ID != ref.StageID {
				continue
			}
			if list := writeInstructionLine(stages[i].Instructions, ref.ItemID, text); list != nil {
				stages[i].Instructions = list
				doc.ApplyPatch(Patch{PatchInstructionStages: stages})
			}
			return
		}
	}
}

// writeInstructionLine replaces the line with itemID in a copy of list,
// dropping it when the text is blank. Returns nil when the ID does not
// resolve.
func writeInstructionLine(list []models.Instruction, itemID, text string) []models.Instruction {
	for i := range list {
		if list[i].ID != itemID {
			continue
		}
		out := append([]models.Instruction{}, list...)
		if text == "" {
			return append(out[:i], out[i+1:]...)
		}
		out[i].Text = text
		return out
	}
	return nil
}

func cloneInstructionStages(stages []models.InstructionStage) []models.InstructionStage {
	out := make([]models.InstructionStage, len(stages))
	for i, s := range stages {
		s.Instructions = append([]models.Instruction{}, s.Instructions...)
		out[i] = s
	}
	return out
}

// AddInstruction appends a blank line to the flat list (stageID "") or to
// the given stage and starts editing it. Returns the new line's reference.
func (s *Session) AddInstruction(stageID string) FieldRef {
	if s.active {
		s.Commit()
	}
	r := s.doc.Recipe()
	line := models.Instruction{ID: models.NewID()}
	if stageID == "" && !r.UsesInstructionStages() {
		list := append(append([]models.Instruction{}, r.Instructions...), line)
		s.doc.ApplyPatch(Patch{PatchInstructions: list})
	} else {
		stages := cloneInstructionStages(r.InstructionStages)
		placed := false
		for i := range stages {
			if stages[i].ID == stageID {
				stages[i].Instructions = append(stages[i].Instructions, line)
				placed = true
				break
			}
		}
		if !placed {
			return FieldRef{}
		}
		s.doc.ApplyPatch(Patch{PatchInstructionStages: stages})
	}
	ref := InstructionRef(stageID, line.ID)
	s.StartEdit(ref)
	return ref
}

// DeleteInstruction removes the referenced line. An active session on the
// same line is cancelled; any other active session commits first.
func (s *Session) DeleteInstruction(ref FieldRef) {
	if s.active {
		if s.field.SameItem(ref) {
			s.Cancel()
		} else {
			s.Commit()
		}
	}
	r := s.doc.Recipe()
	if ref.StageID == "" {
		if list := removeInstruction(r.Instructions, ref.ItemID); list != nil {
			s.doc.ApplyPatch(Patch{PatchInstructions: list})
		}
		return
	}
	stages := cloneInstructionStages(r.InstructionStages)
	for i := range stages {
		if stages[i].ID != ref.StageID {
			continue
		}
		if list := removeInstruction(stages[i].Instructions, ref.ItemID); list != nil {
			stages[i].Instructions = list
			s.doc.ApplyPatch(Patch{PatchInstructionStages: stages})
		}
		return
	}
}

func removeInstruction(list []models.Instruction, itemID string) []models.Instruction {
	for i := range list {
		if list[i].ID == itemID {
			out := append([]models.Instruction{}, list...)
			return append(out[:i], out[i+1:]...)
		}
	}
	return nil
}

// MoveInstruction moves the referenced line by delta within its own list
// level. Moves past either end and cross-stage moves are no-ops.
func (s *Session) MoveInstruction(ref FieldRef, delta int) {
	if s.active {
		s.Commit()
	}
	r := s.doc.Recipe()
	if ref.StageID == "" {
		if list := swapInstruction(r.Instructions, ref.ItemID, delta); list != nil {
			s.doc.ApplyPatch(Patch{PatchInstructions: list})
		}
		return
	}
	stages := cloneInstructionStages(r.InstructionStages)
	for i := range stages {
		if stages[i].ID != ref.StageID {
			continue
		}
		if list := swapInstruction(stages[i].Instructions, ref.ItemID, delta); list != nil {
			stages[i].Instructions = list
			s.doc.ApplyPatch(Patch{PatchInstructionStages: stages})
		}
		return
	}
}

func swapInstruction(list []models.Instruction, itemID string, delta int) []models.Instruction {
	for i := range list {
		if list[i].ID != itemID {
			continue
		}
		j := i + delta
		if j < 0 || j >= len(list) {
			return nil
		}
		out := append([]models.Instruction{}, list...)
		out[i], out[j] = out[j], out[i]
		return out
	}
	return nil
}

// AddInstructionStage appends an untitled stage and starts editing its
// title. Only valid in the staged shape.
func (s *Session) AddInstructionStage() FieldRef {
	if s.active {
		s.Commit()
	}
	r := s.doc.Recipe()
	if !r.UsesInstructionStages() {
		return FieldRef{}
	}
	stage := models.InstructionStage{ID: models.NewID(), Instructions: []models.Instruction{}}
	stages := append(cloneInstructionStages(r.InstructionStages), stage)
	s.doc.ApplyPatch(Patch{PatchInstructionStages: stages})
	ref := InstructionStageTitleRef(stage.ID)
	s.StartEdit(ref)
	return ref
}

// DeleteInstructionStage removes a stage and every line in it. An active
// session inside the stage is cancelled.
func (s *Session) DeleteInstructionStage(stageID string) {
	if s.active {
		if s.field.StageID == stageID {
			s.Cancel()
		} else {
			s.Commit()
		}
	}
	r := s.doc.Recipe()
	for i := range r.InstructionStages {
		if r.InstructionStages[i].ID != stageID {
			continue
		}
		stages := cloneInstructionStages(r.InstructionStages)
		stages = append(stages[:i], stages[i+1:]...)
		s.doc.ApplyPatch(Patch{PatchInstructionStages: stages})
		return
	}
}
