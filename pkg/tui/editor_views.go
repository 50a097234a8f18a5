package tui

import (
	"fmt"
	"strings"

	"github.com/tastebook/tastebook-cli/pkg/editor"
)

func (m *RecipeEditorModel) View() string {
	var b strings.Builder

	b.WriteString(renderHeader(m.width, "EDIT RECIPE — "+displayName(m.recipe().Name)))
	b.WriteString("\n")

	visible := m.height - 6
	if visible < 1 {
		visible = 1
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+visible {
		m.offset = m.cursor - visible + 1
	}

	end := m.offset + visible
	if end > len(m.rows) {
		end = len(m.rows)
	}
	for i := m.offset; i < end; i++ {
		b.WriteString(m.renderRow(i))
		b.WriteString("\n")
	}

	if m.confirm.Active() {
		b.WriteString(m.confirm.ViewWithWidth(m.width))
		b.WriteString("\n")
	}

	b.WriteString(m.renderHelp())
	return b.String()
}

func (m *RecipeEditorModel) renderRow(i int) string {
	row := m.rows[i]
	selected := i == m.cursor

	switch row.kind {
	case rowHeading:
		return SectionHeaderStyle.Render(" " + row.label)

	case rowAction:
		line := "  " + row.label
		if selected {
			return SelectedStyle.Render(line)
		}
		return ActionStyle.Render(line)

	default:
		return m.renderFieldRow(row, selected)
	}
}

func (m *RecipeEditorModel) renderFieldRow(row editorRow, selected bool) string {
	editing := selected && m.session.Active() && m.session.Field() == row.ref

	label := fieldLabel(row)
	value := m.fieldDisplay(row.ref, editing)

	line := fmt.Sprintf("  %s%s", label, value)
	if editing {
		return line
	}
	if selected {
		return SelectedStyle.Render(line)
	}
	return NormalStyle.Render(line)
}

func fieldLabel(row editorRow) string {
	switch row.ref.Kind {
	case editor.KindMeta:
		return fmt.Sprintf("%-13s", metaLabel(row.ref.Meta)+":")
	case editor.KindIngredientStageTitle, editor.KindInstructionStageTitle:
		return "stage: "
	case editor.KindTag:
		if row.ref.TagIndex == editor.NewTagIndex {
			return ""
		}
		return "# "
	default:
		return ""
	}
}

func metaLabel(meta editor.MetaField) string {
	switch meta {
	case editor.MetaName:
		return "Name"
	case editor.MetaDescription:
		return "Description"
	case editor.MetaCategory:
		return "Category"
	case editor.MetaDifficulty:
		return "Difficulty"
	case editor.MetaServings:
		return "Servings"
	case editor.MetaPrepTime:
		return "Prep (min)"
	case editor.MetaCookTime:
		return "Cook (min)"
	default:
		return string(meta)
	}
}

// fieldDisplay renders a field's current value, substituting the live
// input for the sub-field being edited.
func (m *RecipeEditorModel) fieldDisplay(ref editor.FieldRef, editing bool) string {
	if ref.Kind == editor.KindIngredient {
		return m.ingredientDisplay(ref, editing)
	}

	if editing {
		return m.input.View()
	}

	seed := m.document().Seed(ref)
	value := seed[editor.SubValue]
	if value == "" {
		switch ref.Kind {
		case editor.KindTag:
			if ref.TagIndex == editor.NewTagIndex {
				return ActionStyle.Render("+ add tag")
			}
		case editor.KindIngredientStageTitle, editor.KindInstructionStageTitle:
			return DimStyle.Render("(untitled)")
		default:
			return DimStyle.Render("—")
		}
	}
	return value
}

func (m *RecipeEditorModel) ingredientDisplay(ref editor.FieldRef, editing bool) string {
	subs := []string{editor.SubAmount, editor.SubUnit, editor.SubItem}

	var parts []string
	if editing {
		for _, sub := range subs {
			if sub == m.activeSub {
				parts = append(parts, m.input.View())
			} else {
				parts = append(parts, displayOrSlot(m.session.Pending(sub)))
			}
		}
		return strings.Join(parts, " ")
	}

	seed := m.document().Seed(ref)
	for _, sub := range subs {
		if seed[sub] != "" {
			parts = append(parts, seed[sub])
		}
	}
	if len(parts) == 0 {
		return DimStyle.Render("(empty)")
	}
	return strings.Join(parts, " ")
}

func displayOrSlot(value string) string {
	if value == "" {
		return DimStyle.Render("·")
	}
	return value
}

func (m *RecipeEditorModel) renderHelp() string {
	if m.session.Active() {
		parts := []string{
			"enter commit",
			"esc cancel",
			"↑/↓ commit+move",
		}
		if m.session.Field().Kind == editor.KindIngredient {
			parts = append(parts, "tab next part")
		}
		parts = append(parts, "ctrl+s save")
		help := HelpStyle.Render(strings.Join(parts, " · "))
		if m.session.Field().Kind == editor.KindTag && len(m.knownTags) > 0 {
			help += "\n" + HelpStyle.Render("known tags: "+strings.Join(m.knownTags, ", "))
		}
		return help
	}

	parts := []string{
		"↑/↓ navigate",
		"enter edit",
		"d delete",
		"shift+↑/↓ reorder",
		"ctrl+s save",
		"esc back",
	}
	return HelpStyle.Render(strings.Join(parts, " · "))
}
