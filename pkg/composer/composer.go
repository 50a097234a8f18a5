// Package composer renders recipes into export markdown. The same output
// feeds the export command, the clipboard copy, the TUI preview pane and
// the pretty terminal rendering.
package composer

import (
	"fmt"
	"strings"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

// Options controls which optional sections the output includes.
type Options struct {
	ShowComments bool
	ShowTags     bool
}

// DefaultOptions includes everything.
func DefaultOptions() Options {
	return Options{ShowComments: true, ShowTags: true}
}

// ComposeRecipe renders a recipe as markdown.
func ComposeRecipe(recipe *models.Recipe, opts Options) (string, error) {
	if recipe == nil {
		return "", fmt.Errorf("recipe is nil")
	}

	var output strings.Builder
	output.WriteString(fmt.Sprintf("# %s\n\n", recipe.Name))

	if recipe.Description != "" {
		output.WriteString(recipe.Description)
		output.WriteString("\n\n")
	}

	if meta := composeMetaLine(recipe); meta != "" {
		output.WriteString(meta)
		output.WriteString("\n\n")
	}

	if recipe.IngredientCount() > 0 {
		output.WriteString("## Ingredients\n\n")
		if recipe.UsesIngredientStages() {
			for _, stage := range recipe.IngredientStages {
				if stage.Title != "" {
					output.WriteString(fmt.Sprintf("### %s\n\n", stage.Title))
				}
				writeIngredientList(&output, stage.Ingredients)
				output.WriteString("\n")
			}
		} else {
			writeIngredientList(&output, recipe.Ingredients)
			output.WriteString("\n")
		}
	}

	if recipe.InstructionCount() > 0 {
		output.WriteString("## Instructions\n\n")
		if recipe.UsesInstructionStages() {
			for _, stage := range recipe.InstructionStages {
				if stage.Title != "" {
					output.WriteString(fmt.Sprintf("### %s\n\n", stage.Title))
				}
				writeInstructionList(&output, stage.Instructions)
				output.WriteString("\n")
			}
		} else {
			writeInstructionList(&output, recipe.Instructions)
			output.WriteString("\n")
		}
	}

	if opts.ShowComments && recipe.Comments != "" {
		output.WriteString("## Notes\n\n")
		output.WriteString(strings.TrimSpace(recipe.Comments))
		output.WriteString("\n\n")
	}

	if opts.ShowTags && len(recipe.Tags) > 0 {
		output.WriteString(fmt.Sprintf("Tags: %s\n", strings.Join(recipe.Tags, ", ")))
	}

	return strings.TrimRight(output.String(), "\n") + "\n", nil
}

func composeMetaLine(recipe *models.Recipe) string {
	var parts []string
	if recipe.Category != "" {
		parts = append(parts, fmt.Sprintf("Category: %s", recipe.Category))
	}
	if recipe.Difficulty != "" {
		parts = append(parts, fmt.Sprintf("Difficulty: %s", recipe.Difficulty))
	}
	if recipe.Servings != nil {
		parts = append(parts, fmt.Sprintf("Serves %d", *recipe.Servings))
	}
	if recipe.PrepTime != nil {
		parts = append(parts, fmt.Sprintf("Prep %d min", *recipe.PrepTime))
	}
	if recipe.CookTime != nil {
		parts = append(parts, fmt.Sprintf("Cook %d min", *recipe.CookTime))
	}
	return strings.Join(parts, " · ")
}

func writeIngredientList(output *strings.Builder, ingredients []models.Ingredient) {
	for _, ing := range ingredients {
		line := strings.TrimSpace(strings.Join(nonEmpty(ing.Amount, ing.Unit, ing.Item), " "))
		if line == "" {
			continue
		}
		output.WriteString(fmt.Sprintf("- %s\n", line))
	}
}

func writeInstructionList(output *strings.Builder, instructions []models.Instruction) {
	n := 1
	for _, ins := range instructions {
		if ins.Text == "" {
			continue
		}
		output.WriteString(fmt.Sprintf("%d. %s\n", n, ins.Text))
		n++
	}
}

func nonEmpty(parts ...string) []string {
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
