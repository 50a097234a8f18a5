package commands

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook-cli/internal/cli"
	"github.com/tastebook/tastebook-cli/pkg/composer"
)

var (
	showPretty bool
)

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <recipe>",
		Short: "Display a recipe",
		Long: `Display a recipe as composed Markdown.

The recipe can be specified by name or filename. Names are matched
case-insensitively.

Examples:
  # Show a recipe
  tastebook show pancakes

  # Render with terminal styling
  tastebook show pancakes --pretty

  # Output the raw recipe as JSON or YAML
  tastebook show pancakes -o json
  tastebook show pancakes -o yaml`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runShow,
	}

	cmd.Flags().BoolVarP(&showPretty, "pretty", "p", false, "Render with terminal styling")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	ctx := cli.NewCommandContext()
	recipe, err := ctx.ResolveRecipe(args[0])
	if err != nil {
		return err
	}

	switch outputFormat {
	case "json", "yaml":
		// Structured formats show the recipe definition, not the composed text
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, recipe)
	}

	settings := ctx.LoadSettingsWithDefault()
	opts := composer.Options{
		ShowComments: settings.Export.ShowComments,
		ShowTags:     settings.Export.ShowTags,
	}

	content, err := composer.ComposeRecipe(recipe, opts)
	if err != nil {
		return fmt.Errorf("failed to compose recipe: %w", err)
	}

	if showPretty {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(80),
		)
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		rendered, err := renderer.Render(content)
		if err != nil {
			return fmt.Errorf("failed to render recipe: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
