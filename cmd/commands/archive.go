package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook-cli/internal/cli"
	"github.com/tastebook/tastebook-cli/pkg/files"
)

// NewArchiveCommand creates the archive command
func NewArchiveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive <recipe>",
		Short: "Archive a recipe",
		Long: `Move a recipe to the archive.

Archived recipes are hidden from the main list but kept on disk.
Use 'tastebook restore' to bring one back.

Examples:
  # Archive a recipe
  tastebook archive pancakes

  # See archived recipes
  tastebook list --archived`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runArchive,
	}

	return cmd
}

func runArchive(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	recipe, err := ctx.ResolveRecipe(args[0])
	if err != nil {
		return err
	}

	if err := files.ArchiveRecipe(recipe.Path); err != nil {
		return fmt.Errorf("failed to archive recipe: %w", err)
	}

	cli.PrintSuccess("Archived recipe '%s'", recipe.Name)
	return nil
}
