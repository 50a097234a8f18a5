package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

func wrapForPane(content string, width int) string {
	if width <= 0 {
		return content
	}
	return wordwrap.String(content, width)
}

func (m *RecipeListModel) View() string {
	var b strings.Builder

	title := "RECIPES"
	if m.showArchived {
		title = "ARCHIVED RECIPES"
	}
	b.WriteString(renderHeader(m.width, title))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(ContentPaddingStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
	}

	if m.searchActive || m.searchInput.Value() != "" {
		b.WriteString(ContentPaddingStyle.Render("Search: " + m.searchInput.View()))
		b.WriteString("\n")
	}

	listPane := m.renderListPane()
	previewPane := m.renderPreviewPane()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listPane, previewPane))
	b.WriteString("\n")

	if m.confirm.Active() {
		b.WriteString(m.confirm.ViewWithWidth(m.width))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *RecipeListModel) renderListPane() string {
	paneWidth := m.width/2 - 2
	paneHeight := m.height - 8

	var lines []string
	if len(m.filtered) == 0 {
		empty := "No recipes yet. Press 'n' to add one."
		if m.searchInput.Value() != "" {
			empty = "No recipes match your search."
		}
		lines = append(lines, DimStyle.Render(empty))
	}

	for i, recipe := range m.filtered {
		name := recipe.Name
		if name == "" {
			name = "(untitled)"
		}
		line := name
		if len(recipe.Tags) > 0 {
			line += DimStyle.Render("  #" + strings.Join(recipe.Tags, " #"))
		}
		if i == m.cursor {
			line = SelectedStyle.Render("> " + line)
		} else {
			line = NormalStyle.Render("  " + line)
		}
		lines = append(lines, line)
	}

	content := strings.Join(lines, "\n")
	border := InactiveBorderStyle
	if !m.searchActive {
		border = ActiveBorderStyle
	}
	return border.Width(paneWidth).Height(paneHeight).Render(content)
}

func (m *RecipeListModel) renderPreviewPane() string {
	paneWidth := m.width/2 - 2
	paneHeight := m.height - 8

	return InactiveBorderStyle.
		Width(paneWidth).
		Height(paneHeight).
		Render(m.previewViewport.View())
}

func (m *RecipeListModel) renderHelp() string {
	parts := []string{
		"↑/↓ navigate",
		"enter edit",
		"n new",
		"/ search",
		"c copy",
		"a archive",
		"d delete",
		"v archived",
		"q quit",
	}
	if m.showArchived {
		parts = []string{
			"↑/↓ navigate",
			"a restore",
			"d delete",
			"v recipes",
			"q quit",
		}
	}
	help := strings.Join(parts, " · ")
	count := fmt.Sprintf("%d recipe(s)", len(m.filtered))
	return HelpStyle.Render(help + "   " + count)
}
