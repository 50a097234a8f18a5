package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook-cli/internal/cli"
	"github.com/tastebook/tastebook-cli/pkg/files"
)

// NewRestoreCommand creates the restore command
func NewRestoreCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restore <recipe>",
		Short: "Restore an archived recipe",
		Long: `Move an archived recipe back into the main recipe list.

Examples:
  # Restore a recipe from the archive
  tastebook restore pancakes`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runRestore,
	}

	return cmd
}

func runRestore(cmd *cobra.Command, args []string) error {
	path, name, err := findArchivedRecipe(args[0])
	if err != nil {
		return err
	}

	if err := files.UnarchiveRecipe(path); err != nil {
		return fmt.Errorf("failed to restore recipe: %w", err)
	}

	cli.PrintSuccess("Restored recipe '%s'", name)
	return nil
}

// findArchivedRecipe matches an archived recipe by filename or
// case-insensitive name and returns its archive path and display name.
func findArchivedRecipe(nameOrPath string) (string, string, error) {
	paths, err := files.ListArchivedRecipes()
	if err != nil {
		return "", "", fmt.Errorf("failed to list archived recipes: %w", err)
	}

	want := strings.TrimSuffix(nameOrPath, ".yaml")
	for _, path := range paths {
		base := strings.TrimSuffix(filepath.Base(path), ".yaml")
		if base == want {
			return path, archivedDisplayName(path, base), nil
		}
	}
	for _, path := range paths {
		recipe, err := files.ReadArchivedRecipe(path)
		if err != nil {
			continue
		}
		if strings.EqualFold(recipe.Name, nameOrPath) {
			return path, recipe.Name, nil
		}
	}

	return "", "", fmt.Errorf("archived recipe '%s' not found (run 'tastebook list --archived')", nameOrPath)
}

func archivedDisplayName(path, fallback string) string {
	if recipe, err := files.ReadArchivedRecipe(path); err == nil && recipe.Name != "" {
		return recipe.Name
	}
	return fallback
}
