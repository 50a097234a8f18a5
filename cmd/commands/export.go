package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook-cli/internal/cli"
	"github.com/tastebook/tastebook-cli/pkg/composer"
)

var (
	exportToFile    string
	exportClipboard bool
	exportComments  bool
	exportTags      bool
)

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <recipe>",
		Short: "Export a composed recipe to stdout, a file, or the clipboard",
		Long: `Export a recipe by composing it to Markdown.

By default, the composed content is written to stdout. You can redirect
it to a file using shell redirection or the --file flag, or copy it
straight to the system clipboard.

Examples:
  # Export to stdout
  tastebook export pancakes

  # Export to file using redirection
  tastebook export pancakes > pancakes.md

  # Export to file using flag
  tastebook export pancakes --file pancakes.md

  # Copy to clipboard
  tastebook export pancakes --clipboard

  # Leave out comments and tags
  tastebook export pancakes --comments=false --tags=false`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runExport,
	}

	cmd.Flags().StringVarP(&exportToFile, "file", "f", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&exportClipboard, "clipboard", false, "Copy to system clipboard")
	cmd.Flags().BoolVar(&exportComments, "comments", true, "Include recipe notes")
	cmd.Flags().BoolVar(&exportTags, "tags", true, "Include the tag line")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	recipe, err := ctx.ResolveRecipe(args[0])
	if err != nil {
		return err
	}

	opts := composer.Options{
		ShowComments: exportComments,
		ShowTags:     exportTags,
	}

	content, err := composer.ComposeRecipe(recipe, opts)
	if err != nil {
		return fmt.Errorf("failed to compose recipe: %w", err)
	}

	if exportClipboard {
		if err := clipboard.WriteAll(content); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		cli.PrintSuccess("Copied '%s' to clipboard (%d characters)", recipe.Name, len(content))
		return nil
	}

	if exportToFile != "" {
		dir := filepath.Dir(exportToFile)
		if dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(exportToFile, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", exportToFile, err)
		}
		cli.PrintSuccess("Exported '%s' to %s", recipe.Name, exportToFile)
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), content)
	return nil
}
