package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook-cli/internal/cli"
	"github.com/tastebook/tastebook-cli/pkg/files"
)

var (
	deleteForce bool
)

// NewDeleteCommand creates the delete command
func NewDeleteCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <recipe>",
		Short: "Delete a recipe",
		Long: `Permanently delete a recipe.

This action cannot be undone. Consider archiving instead if you
might want the recipe later.

Examples:
  # Delete a recipe (with confirmation)
  tastebook delete pancakes

  # Force delete without confirmation
  tastebook delete pancakes --force`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runDelete,
	}

	cmd.Flags().BoolVarP(&deleteForce, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cli.NewCommandContext()
	recipe, err := ctx.ResolveRecipe(args[0])
	if err != nil {
		return err
	}

	if !deleteForce {
		confirmed, err := cli.Confirm(fmt.Sprintf("Delete recipe '%s'? This cannot be undone.", recipe.Name), false)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			cli.PrintInfo("Cancelled")
			return nil
		}
	}

	if err := files.DeleteRecipe(recipe.Path); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	cli.PrintSuccess("Deleted recipe '%s'", recipe.Name)
	return nil
}
