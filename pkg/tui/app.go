package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type sessionState int

const (
	recipeListView sessionState = iota
	recipeEditorView
)

type App struct {
	state     sessionState
	list      *RecipeListModel
	editor    *RecipeEditorModel
	width     int
	height    int
	statusMsg string
}

func NewApp() *App {
	return &App{
		state: recipeListView,
		list:  NewRecipeListModel(),
	}
}

func (a *App) Init() tea.Cmd {
	return a.list.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Pass window size to all sub-models
		if a.list != nil {
			a.list.SetSize(msg.Width, msg.Height)
		}
		if a.editor != nil {
			a.editor.SetSize(msg.Width, msg.Height)
		}

	case tea.KeyMsg:
		// Global keybindings
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil

	case SwitchViewMsg:
		switch msg.view {
		case recipeListView:
			a.state = recipeListView
			if a.list == nil {
				a.list = NewRecipeListModel()
			} else {
				// Reload recipes when returning to the list
				a.list.loadRecipes()
			}
			a.list.SetSize(a.width, a.height)
			return a, a.list.Init()
		case recipeEditorView:
			a.state = recipeEditorView
			a.editor = NewRecipeEditorModel()
			a.editor.SetSize(a.width, a.height)
			if err := a.editor.SetRecipe(msg.path); err != nil {
				a.state = recipeListView
				a.statusMsg = "Error: " + err.Error()
				return a, nil
			}
			if msg.startNameEdit {
				a.editor.StartNameEdit()
			}
			return a, a.editor.Init()
		}
	}

	// Route updates to the active view
	var cmd tea.Cmd
	switch a.state {
	case recipeListView:
		var m tea.Model
		m, cmd = a.list.Update(msg)
		if lm, ok := m.(*RecipeListModel); ok {
			a.list = lm
		}
	case recipeEditorView:
		var m tea.Model
		m, cmd = a.editor.Update(msg)
		if em, ok := m.(*RecipeEditorModel); ok {
			a.editor = em
		}
	}

	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	var content string
	switch a.state {
	case recipeListView:
		content = a.list.View()
	case recipeEditorView:
		content = a.editor.View()
	default:
		content = "Unknown view"
	}

	// Add status bar if there's a message
	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)

		statusBar := statusStyle.Render(a.statusMsg)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusBar)
	}

	return content
}

// Messages for communication between views
type StatusMsg string

type SwitchViewMsg struct {
	view          sessionState
	path          string // recipe file path for the editor
	startNameEdit bool   // begin the editor with the name field active
}
