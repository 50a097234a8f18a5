package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tastebook/tastebook-cli/pkg/composer"
	"github.com/tastebook/tastebook-cli/pkg/files"
	"github.com/tastebook/tastebook-cli/pkg/models"
	"github.com/tastebook/tastebook-cli/pkg/search"
)

type RecipeListModel struct {
	// Recipes data
	recipes  []*models.Recipe
	filtered []*models.Recipe
	cursor   int

	// Archived view
	showArchived bool

	// Preview
	previewViewport viewport.Model

	// Search state
	searchInput  textinput.Model
	searchActive bool
	searchEngine *search.Engine

	// Confirmations
	confirm *ConfirmationModel

	// Window dimensions
	width  int
	height int

	err error
}

func NewRecipeListModel() *RecipeListModel {
	input := textinput.New()
	input.Placeholder = "name, tag:weeknight, category:main, ingredient:chicken"
	input.CharLimit = 120

	m := &RecipeListModel{
		previewViewport: viewport.New(80, 20),
		searchInput:     input,
		searchEngine:    search.NewEngine(),
		confirm:         NewConfirmation(),
	}
	m.loadRecipes()
	return m
}

func (m *RecipeListModel) Init() tea.Cmd {
	return nil
}

func (m *RecipeListModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.previewViewport.Width = width/2 - 4
	m.previewViewport.Height = height - 8
	m.updatePreview()
}

func (m *RecipeListModel) loadRecipes() {
	var recipes []*models.Recipe
	var err error

	if m.showArchived {
		recipes, err = loadArchivedRecipes()
	} else {
		recipes, err = files.LoadAllRecipes()
	}
	if err != nil {
		m.err = err
		return
	}

	sort.Slice(recipes, func(i, j int) bool {
		return strings.ToLower(recipes[i].Name) < strings.ToLower(recipes[j].Name)
	})

	m.err = nil
	m.recipes = recipes
	m.applyFilter()
}

func loadArchivedRecipes() ([]*models.Recipe, error) {
	paths, err := files.ListArchivedRecipes()
	if err != nil {
		return nil, err
	}
	var recipes []*models.Recipe
	for _, path := range paths {
		recipe, err := files.ReadArchivedRecipe(path)
		if err != nil {
			continue
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}

func (m *RecipeListModel) applyFilter() {
	m.filtered = m.searchEngine.Filter(m.recipes, m.searchInput.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.updatePreview()
}

func (m *RecipeListModel) selected() *models.Recipe {
	if m.cursor < 0 || m.cursor >= len(m.filtered) {
		return nil
	}
	return m.filtered[m.cursor]
}

func (m *RecipeListModel) updatePreview() {
	recipe := m.selected()
	if recipe == nil {
		m.previewViewport.SetContent("")
		return
	}
	content, err := composer.ComposeRecipe(recipe, composer.DefaultOptions())
	if err != nil {
		m.previewViewport.SetContent("Preview unavailable: " + err.Error())
		return
	}
	m.previewViewport.SetContent(wrapForPane(content, m.previewViewport.Width))
}

func (m *RecipeListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// Confirmations swallow all keys while active
	if m.confirm.Active() {
		return m, m.confirm.Update(keyMsg)
	}

	if m.searchActive {
		return m.updateSearch(keyMsg)
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
			m.updatePreview()
		}
	case "down", "j":
		if m.cursor < len(m.filtered)-1 {
			m.cursor++
			m.updatePreview()
		}
	case "pgup":
		m.previewViewport.HalfViewUp()
	case "pgdown":
		m.previewViewport.HalfViewDown()

	case "/":
		m.searchActive = true
		m.searchInput.Focus()
		return m, textinput.Blink

	case "enter", "e":
		if recipe := m.selected(); recipe != nil && !m.showArchived {
			return m, switchToEditor(recipe.Path, false)
		}

	case "n":
		if !m.showArchived {
			return m, switchToEditor("", true)
		}

	case "v":
		m.showArchived = !m.showArchived
		m.cursor = 0
		m.loadRecipes()

	case "c":
		return m, m.copyToClipboard()

	case "a":
		return m, m.archiveSelected()

	case "d":
		return m, m.deleteSelected()

	case "q", "esc":
		if m.searchInput.Value() != "" {
			m.searchInput.SetValue("")
			m.applyFilter()
			return m, nil
		}
		return m, tea.Quit
	}

	return m, nil
}

func (m *RecipeListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	case "esc":
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.applyFilter()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *RecipeListModel) copyToClipboard() tea.Cmd {
	recipe := m.selected()
	if recipe == nil {
		return nil
	}
	content, err := composer.ComposeRecipe(recipe, composer.DefaultOptions())
	if err != nil {
		return statusCmd("Error: " + err.Error())
	}
	if err := clipboard.WriteAll(content); err != nil {
		return statusCmd("Error: failed to copy to clipboard")
	}
	return statusCmd(fmt.Sprintf("Copied '%s' to clipboard", recipe.Name))
}

func (m *RecipeListModel) archiveSelected() tea.Cmd {
	recipe := m.selected()
	if recipe == nil {
		return nil
	}

	if m.showArchived {
		// Restoring needs no confirmation
		if err := files.UnarchiveRecipe(recipe.Path); err != nil {
			return statusCmd("Error: " + err.Error())
		}
		m.loadRecipes()
		return statusCmd(fmt.Sprintf("Restored '%s'", recipe.Name))
	}

	name := recipe.Name
	path := recipe.Path
	m.confirm.ShowInline(fmt.Sprintf("Archive '%s'?", name), false,
		func() tea.Cmd {
			if err := files.ArchiveRecipe(path); err != nil {
				return statusCmd("Error: " + err.Error())
			}
			m.loadRecipes()
			return statusCmd(fmt.Sprintf("Archived '%s'", name))
		},
		nil,
	)
	return nil
}

func (m *RecipeListModel) deleteSelected() tea.Cmd {
	recipe := m.selected()
	if recipe == nil {
		return nil
	}

	name := recipe.Name
	path := recipe.Path
	m.confirm.ShowDialog(
		"Delete Recipe",
		fmt.Sprintf("Delete '%s'?", name),
		"This cannot be undone.",
		true,
		func() tea.Cmd {
			if err := files.DeleteRecipe(path); err != nil {
				return statusCmd("Error: " + err.Error())
			}
			m.loadRecipes()
			return statusCmd(fmt.Sprintf("Deleted '%s'", name))
		},
		nil,
	)
	return nil
}

func statusCmd(message string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(message)
	}
}

func switchToEditor(path string, startNameEdit bool) tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: recipeEditorView, path: path, startNameEdit: startNameEdit}
	}
}

func switchToList() tea.Cmd {
	return func() tea.Msg {
		return SwitchViewMsg{view: recipeListView}
	}
}
