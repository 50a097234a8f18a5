package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tastebook/tastebook-cli/pkg/editor"
	"github.com/tastebook/tastebook-cli/pkg/files"
	"github.com/tastebook/tastebook-cli/pkg/models"
	"github.com/tastebook/tastebook-cli/pkg/tags"
)

type rowKind int

const (
	rowHeading rowKind = iota
	rowField
	rowAction
)

type actionType int

const (
	actionNone actionType = iota
	actionAddIngredient
	actionAddInstruction
	actionAddIngredientStage
	actionAddInstructionStage
	actionToggleIngredientShape
	actionToggleInstructionShape
)

// editorRow is one selectable line in the editor. Field rows carry the
// field reference the session edits; action rows carry a structural
// operation and, for per-stage adds, the stage it applies to.
type editorRow struct {
	kind    rowKind
	ref     editor.FieldRef
	action  actionType
	stageID string
	label   string
}

type RecipeEditorModel struct {
	session *editor.Session

	rows   []editorRow
	cursor int

	// Active field input
	input     textinput.Model
	activeSub string

	dirty     bool
	confirm   *ConfirmationModel
	knownTags []string

	width  int
	height int
	offset int // first visible row
}

func NewRecipeEditorModel() *RecipeEditorModel {
	input := textinput.New()
	input.CharLimit = 500

	return &RecipeEditorModel{
		input:   input,
		confirm: NewConfirmation(),
	}
}

func (m *RecipeEditorModel) Init() tea.Cmd {
	return nil
}

func (m *RecipeEditorModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetRecipe loads the recipe at path, or starts a fresh one when path
// is empty. Must be called before the first Update.
func (m *RecipeEditorModel) SetRecipe(path string) error {
	var recipe *models.Recipe
	if path == "" {
		recipe = models.NewRecipe("")
	} else {
		loaded, err := files.ReadRecipe(path)
		if err != nil {
			return err
		}
		recipe = loaded
	}

	m.setRecipe(recipe)
	m.loadTagSuggestions()
	return nil
}

// loadTagSuggestions gathers the tags already used across the store so
// the add-tag field can hint at them. Failures leave the list empty.
func (m *RecipeEditorModel) loadTagSuggestions() {
	registry, err := tags.NewRegistry()
	if err != nil {
		return
	}
	if err := registry.SyncFromStore(); err != nil {
		return
	}
	m.knownTags = nil
	for _, tag := range registry.ListTags() {
		m.knownTags = append(m.knownTags, tag.Name)
	}
}

func (m *RecipeEditorModel) setRecipe(recipe *models.Recipe) {
	doc := editor.NewDocument(recipe, func(editor.Patch) {
		m.dirty = true
	})
	m.session = editor.NewSession(doc)
	m.rebuildRows()
}

// StartNameEdit opens the editor with the name field already active,
// used when creating a new recipe.
func (m *RecipeEditorModel) StartNameEdit() {
	for i, row := range m.rows {
		if row.kind == rowField && row.ref == editor.MetaRef(editor.MetaName) {
			m.cursor = i
			m.startEditCurrent()
			return
		}
	}
}

func (m *RecipeEditorModel) document() *editor.Document {
	return m.session.Document()
}

func (m *RecipeEditorModel) recipe() *models.Recipe {
	return m.document().Recipe()
}

// rebuildRows regenerates the row list from the current recipe shape.
// Called after every commit and structural operation.
func (m *RecipeEditorModel) rebuildRows() {
	r := m.recipe()
	var rows []editorRow

	rows = append(rows, editorRow{kind: rowHeading, label: "Details"})
	for _, meta := range []editor.MetaField{
		editor.MetaName,
		editor.MetaDescription,
		editor.MetaCategory,
		editor.MetaDifficulty,
		editor.MetaServings,
		editor.MetaPrepTime,
		editor.MetaCookTime,
	} {
		rows = append(rows, editorRow{kind: rowField, ref: editor.MetaRef(meta)})
	}

	rows = append(rows, editorRow{kind: rowHeading, label: "Tags"})
	for i := range r.Tags {
		rows = append(rows, editorRow{kind: rowField, ref: editor.TagRef(i)})
	}
	rows = append(rows, editorRow{kind: rowField, ref: editor.TagRef(editor.NewTagIndex), label: "+ add tag"})

	rows = append(rows, editorRow{kind: rowHeading, label: "Ingredients"})
	if r.UsesIngredientStages() {
		for _, stage := range r.IngredientStages {
			rows = append(rows, editorRow{kind: rowField, ref: editor.IngredientStageTitleRef(stage.ID)})
			for _, ing := range stage.Ingredients {
				rows = append(rows, editorRow{kind: rowField, ref: editor.IngredientRef(stage.ID, ing.ID)})
			}
			rows = append(rows, editorRow{
				kind: rowAction, action: actionAddIngredient, stageID: stage.ID, label: "+ add ingredient",
			})
		}
		rows = append(rows, editorRow{kind: rowAction, action: actionAddIngredientStage, label: "+ add stage"})
		rows = append(rows, editorRow{kind: rowAction, action: actionToggleIngredientShape, label: "⇄ flatten stages"})
	} else {
		for _, ing := range r.Ingredients {
			rows = append(rows, editorRow{kind: rowField, ref: editor.IngredientRef("", ing.ID)})
		}
		rows = append(rows, editorRow{kind: rowAction, action: actionAddIngredient, label: "+ add ingredient"})
		rows = append(rows, editorRow{kind: rowAction, action: actionToggleIngredientShape, label: "⇄ group into stages"})
	}

	rows = append(rows, editorRow{kind: rowHeading, label: "Instructions"})
	if r.UsesInstructionStages() {
		for _, stage := range r.InstructionStages {
			rows = append(rows, editorRow{kind: rowField, ref: editor.InstructionStageTitleRef(stage.ID)})
			for _, ins := range stage.Instructions {
				rows = append(rows, editorRow{kind: rowField, ref: editor.InstructionRef(stage.ID, ins.ID)})
			}
			rows = append(rows, editorRow{
				kind: rowAction, action: actionAddInstruction, stageID: stage.ID, label: "+ add step",
			})
		}
		rows = append(rows, editorRow{kind: rowAction, action: actionAddInstructionStage, label: "+ add stage"})
		rows = append(rows, editorRow{kind: rowAction, action: actionToggleInstructionShape, label: "⇄ flatten stages"})
	} else {
		for _, ins := range r.Instructions {
			rows = append(rows, editorRow{kind: rowField, ref: editor.InstructionRef("", ins.ID)})
		}
		rows = append(rows, editorRow{kind: rowAction, action: actionAddInstruction, label: "+ add step"})
		rows = append(rows, editorRow{kind: rowAction, action: actionToggleInstructionShape, label: "⇄ group into stages"})
	}

	rows = append(rows, editorRow{kind: rowHeading, label: "Notes"})
	rows = append(rows, editorRow{kind: rowField, ref: editor.CommentsRef()})

	m.rows = rows
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.rows[m.cursor].kind == rowHeading {
		m.moveCursor(1)
	}
}

// moveCursor advances past headings in the given direction.
func (m *RecipeEditorModel) moveCursor(delta int) {
	i := m.cursor + delta
	for i >= 0 && i < len(m.rows) && m.rows[i].kind == rowHeading {
		i += delta
	}
	if i >= 0 && i < len(m.rows) {
		m.cursor = i
	}
}

// rowIndexFor finds the row for a field reference, or -1.
func (m *RecipeEditorModel) rowIndexFor(ref editor.FieldRef) int {
	for i, row := range m.rows {
		if row.kind == rowField && row.ref == ref {
			return i
		}
	}
	return -1
}
