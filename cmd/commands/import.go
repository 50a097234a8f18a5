package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook-cli/internal/cli"
	"github.com/tastebook/tastebook-cli/pkg/extract"
	"github.com/tastebook/tastebook-cli/pkg/files"
)

var (
	importName string
)

// NewImportCommand creates the import command
func NewImportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a recipe from pasted or copied text",
		Long: `Parse free-form recipe text into a structured recipe and save it.

The parser is heuristic: it looks for an ingredients heading, an
instructions heading, amount/unit prefixes on ingredient lines, and
numbered steps. The result is saved as a draft for you to correct in
the TUI; the reported confidence tells you how much correcting to
expect.

Reads from the given file, or from stdin when no file is given.

Examples:
  # Import from a text file
  tastebook import pancakes.txt

  # Import from stdin
  pbpaste | tastebook import

  # Override the detected name
  tastebook import pancakes.txt --name "Weekend Pancakes"`,
		Args: cobra.MaximumNArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runImport,
	}

	cmd.Flags().StringVarP(&importName, "name", "n", "", "Name for the imported recipe")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	var raw []byte
	var err error

	if len(args) == 1 {
		raw, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", args[0], err)
		}
	} else {
		raw, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	}

	text := extract.CleanWebText(string(raw))
	if text == "" {
		return fmt.Errorf("no recipe text found in input")
	}

	draft := extract.ParseText(text)
	if importName != "" {
		draft.Recipe.Name = importName
	}
	if draft.Recipe.Name == "" {
		return fmt.Errorf("could not detect a recipe name; pass one with --name")
	}

	if err := files.WriteRecipe(draft.Recipe); err != nil {
		return fmt.Errorf("failed to save recipe: %w", err)
	}

	cli.PrintSuccess("Imported recipe '%s' (%d ingredients, %d steps, confidence %.0f%%)",
		draft.Recipe.Name, draft.Recipe.IngredientCount(), draft.Recipe.InstructionCount(),
		draft.Confidence*100)
	cli.PrintInfo("Run 'tastebook' to review and correct the draft.")
	return nil
}
