package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tastebook/tastebook-cli/pkg/editor"
	"github.com/tastebook/tastebook-cli/pkg/files"
	"github.com/tastebook/tastebook-cli/pkg/tags"
)

func (m *RecipeEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		if m.confirm.Active() {
			return m, m.confirm.Update(msg)
		}
		if m.session.Active() {
			return m.updateEditing(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *RecipeEditorModel) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.confirm.Active() {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return m, nil
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return m, nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	clicked, ok := m.rowAt(msg.Y)

	if m.session.Active() {
		// A click is an outside interaction for every target except the
		// edited row itself and the structural action rows.
		target := editor.Target{}
		if ok {
			switch clicked.kind {
			case rowField:
				target = editor.Target{Field: clicked.ref, HasField: true}
			case rowAction:
				target = editor.Target{NonCommitting: true}
			}
		}
		if editor.HandleOutside(m.session, target) {
			m.stopInput()
			m.rebuildRows()
		}
	}

	if !ok {
		return m, nil
	}

	switch clicked.kind {
	case rowField:
		if i := m.rowIndexFor(clicked.ref); i >= 0 {
			m.cursor = i
		}
		if !m.session.Active() {
			m.startEditCurrent()
			return m, textinput.Blink
		}
	case rowAction:
		return m, m.performAction(clicked)
	}
	return m, nil
}

// rowAt maps a terminal line to a row; the header occupies line zero.
func (m *RecipeEditorModel) rowAt(y int) (editorRow, bool) {
	i := m.offset + y - 1
	if i < 0 || i >= len(m.rows) {
		return editorRow{}, false
	}
	return m.rows[i], true
}

func (m *RecipeEditorModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)

	case "enter":
		row := m.currentRow()
		switch row.kind {
		case rowField:
			m.startEditCurrent()
			return m, textinput.Blink
		case rowAction:
			return m, m.performAction(row)
		}

	case "d":
		return m, m.deleteCurrent()

	case "shift+up", "K":
		m.moveCurrentItem(-1)
	case "shift+down", "J":
		m.moveCurrentItem(1)

	case "ctrl+s":
		return m, m.save()

	case "esc", "q":
		return m, m.leave()
	}

	return m, nil
}

func (m *RecipeEditorModel) updateEditing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.session.Commit()
		m.stopInput()
		m.rebuildRows()
		return m, nil

	case "esc":
		m.session.Cancel()
		m.stopInput()
		return m, nil

	case "tab", "shift+tab":
		// Moving between an ingredient's own inputs never commits
		if m.session.Field().Kind == editor.KindIngredient {
			delta := 1
			if msg.String() == "shift+tab" {
				delta = -1
			}
			m.cycleSub(delta)
		}
		return m, nil

	case "up", "down":
		delta := 1
		if msg.String() == "up" {
			delta = -1
		}
		m.leaveActiveField(delta)
		return m, nil

	case "ctrl+s":
		// Saving commits the open edit first
		m.session.Commit()
		m.stopInput()
		m.rebuildRows()
		return m, m.save()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.session.Update(m.activeSub, m.input.Value())
	return m, cmd
}

// leaveActiveField handles a cursor move while an edit is open. The
// destination decides what happens: another field commits the session,
// an action row or the edited row itself leaves it untouched.
func (m *RecipeEditorModel) leaveActiveField(delta int) {
	from := m.cursor
	m.moveCursor(delta)
	if m.cursor == from {
		return
	}

	dest := m.currentRow()
	target := editor.Target{}
	switch dest.kind {
	case rowField:
		target.Field = dest.ref
		target.HasField = true
	case rowAction:
		target.NonCommitting = true
	}

	if editor.HandleOutside(m.session, target) {
		m.stopInput()
		m.rebuildRows()
		// The commit may have pruned or renumbered rows under the cursor
		if i := m.rowIndexFor(dest.ref); i >= 0 {
			m.cursor = i
		}
	}
}

func (m *RecipeEditorModel) currentRow() editorRow {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return editorRow{}
	}
	return m.rows[m.cursor]
}

func (m *RecipeEditorModel) startEditCurrent() {
	row := m.currentRow()
	if row.kind != rowField {
		return
	}

	m.session.StartEdit(row.ref)

	sub := editor.SubValue
	if row.ref.Kind == editor.KindIngredient {
		sub = editor.SubAmount
	}
	m.focusSub(sub)
}

// startEditAt begins editing the row for ref, used after structural
// operations that open a fresh field.
func (m *RecipeEditorModel) startEditAt(ref editor.FieldRef) {
	m.rebuildRows()
	if i := m.rowIndexFor(ref); i >= 0 {
		m.cursor = i
	}

	sub := editor.SubValue
	if ref.Kind == editor.KindIngredient {
		sub = editor.SubAmount
	}
	m.focusSub(sub)
}

func (m *RecipeEditorModel) focusSub(sub string) {
	m.activeSub = sub
	m.input.SetValue(m.session.Pending(sub))
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *RecipeEditorModel) cycleSub(delta int) {
	order := []string{editor.SubAmount, editor.SubUnit, editor.SubItem}
	current := 0
	for i, sub := range order {
		if sub == m.activeSub {
			current = i
		}
	}
	next := (current + delta + len(order)) % len(order)
	m.focusSub(order[next])
}

func (m *RecipeEditorModel) stopInput() {
	m.input.Blur()
	m.input.SetValue("")
	m.activeSub = ""
}

func (m *RecipeEditorModel) performAction(row editorRow) tea.Cmd {
	switch row.action {
	case actionAddIngredient:
		ref := m.session.AddIngredient(row.stageID)
		if ref.Kind != editor.KindNone {
			m.startEditAt(ref)
		}
		return textinput.Blink

	case actionAddInstruction:
		ref := m.session.AddInstruction(row.stageID)
		if ref.Kind != editor.KindNone {
			m.startEditAt(ref)
		}
		return textinput.Blink

	case actionAddIngredientStage:
		ref := m.session.AddIngredientStage()
		if ref.Kind != editor.KindNone {
			m.startEditAt(ref)
		}
		return textinput.Blink

	case actionAddInstructionStage:
		ref := m.session.AddInstructionStage()
		if ref.Kind != editor.KindNone {
			m.startEditAt(ref)
		}
		return textinput.Blink

	case actionToggleIngredientShape:
		return m.toggleIngredientShape()

	case actionToggleInstructionShape:
		return m.toggleInstructionShape()
	}
	return nil
}

func (m *RecipeEditorModel) toggleIngredientShape() tea.Cmd {
	doc := m.document()
	if doc.Recipe().UsesIngredientStages() && doc.TitledIngredientStages() {
		m.confirm.ShowDialog(
			"Flatten Stages",
			"Merge all ingredient stages into one list?",
			"Stage titles will be lost.",
			true,
			func() tea.Cmd {
				m.session.ToggleIngredientShape()
				m.rebuildRows()
				return nil
			},
			nil,
		)
		return nil
	}
	m.session.ToggleIngredientShape()
	m.rebuildRows()
	return nil
}

func (m *RecipeEditorModel) toggleInstructionShape() tea.Cmd {
	doc := m.document()
	if doc.Recipe().UsesInstructionStages() && doc.TitledInstructionStages() {
		m.confirm.ShowDialog(
			"Flatten Stages",
			"Merge all instruction stages into one list?",
			"Stage titles will be lost.",
			true,
			func() tea.Cmd {
				m.session.ToggleInstructionShape()
				m.rebuildRows()
				return nil
			},
			nil,
		)
		return nil
	}
	m.session.ToggleInstructionShape()
	m.rebuildRows()
	return nil
}

func (m *RecipeEditorModel) deleteCurrent() tea.Cmd {
	row := m.currentRow()
	if row.kind != rowField {
		return nil
	}

	switch row.ref.Kind {
	case editor.KindIngredient:
		m.session.DeleteIngredient(row.ref)
		m.rebuildRows()
	case editor.KindInstruction:
		m.session.DeleteInstruction(row.ref)
		m.rebuildRows()
	case editor.KindTag:
		if row.ref.TagIndex != editor.NewTagIndex {
			m.session.RemoveTag(row.ref.TagIndex)
			m.rebuildRows()
		}
	case editor.KindIngredientStageTitle:
		stageID := row.ref.StageID
		m.confirm.ShowInline("Delete this stage and its ingredients?", true,
			func() tea.Cmd {
				m.session.DeleteIngredientStage(stageID)
				m.rebuildRows()
				return nil
			},
			nil,
		)
	case editor.KindInstructionStageTitle:
		stageID := row.ref.StageID
		m.confirm.ShowInline("Delete this stage and its steps?", true,
			func() tea.Cmd {
				m.session.DeleteInstructionStage(stageID)
				m.rebuildRows()
				return nil
			},
			nil,
		)
	}
	return nil
}

func (m *RecipeEditorModel) moveCurrentItem(delta int) {
	row := m.currentRow()
	if row.kind != rowField {
		return
	}

	switch row.ref.Kind {
	case editor.KindIngredient:
		m.session.MoveIngredient(row.ref, delta)
	case editor.KindInstruction:
		m.session.MoveInstruction(row.ref, delta)
	default:
		return
	}
	m.rebuildRows()
	if i := m.rowIndexFor(row.ref); i >= 0 {
		m.cursor = i
	}
}

func (m *RecipeEditorModel) save() tea.Cmd {
	recipe := m.recipe()
	if err := files.WriteRecipe(recipe); err != nil {
		return statusCmd("Error: " + err.Error())
	}
	m.dirty = false
	m.syncTagRegistry()
	return statusCmd(fmt.Sprintf("Saved '%s'", recipe.Name))
}

// syncTagRegistry records any new tags in tags.yaml. Registry failures
// never block a save.
func (m *RecipeEditorModel) syncTagRegistry() {
	registry, err := tags.NewRegistry()
	if err != nil {
		return
	}
	if err := registry.SyncFromStore(); err != nil {
		return
	}
	if err := registry.Save(); err != nil {
		return
	}
	m.knownTags = nil
	for _, tag := range registry.ListTags() {
		m.knownTags = append(m.knownTags, tag.Name)
	}
}

// leave returns to the list, committing any open edit first and asking
// about unsaved changes.
func (m *RecipeEditorModel) leave() tea.Cmd {
	if m.session.Active() {
		m.session.Commit()
		m.stopInput()
		m.rebuildRows()
	}

	if !m.dirty {
		return switchToList()
	}

	m.confirm.ShowDialog(
		"Unsaved Changes",
		fmt.Sprintf("Save changes to '%s'?", displayName(m.recipe().Name)),
		"",
		false,
		func() tea.Cmd {
			return tea.Sequence(m.save(), switchToList())
		},
		func() tea.Cmd {
			return switchToList()
		},
	)
	return nil
}

func displayName(name string) string {
	if name == "" {
		return "(untitled)"
	}
	return name
}
