package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook-cli/internal/cli"
	"github.com/tastebook/tastebook-cli/pkg/files"
	"github.com/tastebook/tastebook-cli/pkg/models"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Items []ListItem `json:"items" yaml:"items"`
	Count int        `json:"count" yaml:"count"`
}

// ListItem represents a single recipe in the list
type ListItem struct {
	Name        string   `json:"name" yaml:"name"`
	Category    string   `json:"category,omitempty" yaml:"category,omitempty"`
	Difficulty  string   `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Tags        []string `json:"tags" yaml:"tags"`
	TotalMins   *int     `json:"total_minutes,omitempty" yaml:"total_minutes,omitempty"`
	Ingredients int      `json:"ingredients" yaml:"ingredients"`
	Path        string   `json:"path,omitempty" yaml:"path,omitempty"`
	IsArchived  bool     `json:"is_archived,omitempty" yaml:"is_archived,omitempty"`
}

var (
	listShowArchived bool
	listShowPaths    bool
	listFilterTag    string
	listCategory     string
)

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes in the book",
		Long: `List all recipes in the current recipe book.

Examples:
  # List all recipes
  tastebook list

  # List recipes with a given tag
  tastebook list --tag weeknight

  # List only desserts
  tastebook list --category dessert

  # Include archived recipes
  tastebook list --archived

  # Output as JSON
  tastebook list -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runList,
	}

	cmd.Flags().BoolVarP(&listShowArchived, "archived", "a", false, "Include archived recipes")
	cmd.Flags().BoolVarP(&listShowPaths, "paths", "p", false, "Show file paths")
	cmd.Flags().StringVarP(&listFilterTag, "tag", "t", "", "Only show recipes with this tag")
	cmd.Flags().StringVarP(&listCategory, "category", "c", "", "Only show recipes in this category")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	recipes, err := files.LoadAllRecipes()
	if err != nil {
		return fmt.Errorf("failed to load recipes: %w", err)
	}

	result := ListResult{Items: []ListItem{}}
	for _, r := range recipes {
		if !matchesListFilters(r) {
			continue
		}
		result.Items = append(result.Items, listItemFor(r, false))
	}

	if listShowArchived {
		archived, err := files.ListArchivedRecipes()
		if err != nil {
			return fmt.Errorf("failed to list archived recipes: %w", err)
		}
		for _, path := range archived {
			r, err := files.ReadArchivedRecipe(path)
			if err != nil {
				continue
			}
			if !matchesListFilters(r) {
				continue
			}
			result.Items = append(result.Items, listItemFor(r, true))
		}
	}

	sort.Slice(result.Items, func(i, j int) bool {
		return strings.ToLower(result.Items[i].Name) < strings.ToLower(result.Items[j].Name)
	})
	result.Count = len(result.Items)

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		return printListTable(cmd, result)
	}
}

func matchesListFilters(r *models.Recipe) bool {
	if listCategory != "" && !strings.EqualFold(r.Category, listCategory) {
		return false
	}
	if listFilterTag != "" && !models.HasTag(r.Tags, listFilterTag) {
		return false
	}
	return true
}

func listItemFor(r *models.Recipe, archived bool) ListItem {
	return ListItem{
		Name:        r.Name,
		Category:    r.Category,
		Difficulty:  r.Difficulty,
		Tags:        r.Tags,
		TotalMins:   cli.TotalMinutes(r.PrepTime, r.CookTime),
		Ingredients: r.IngredientCount(),
		Path:        r.Path,
		IsArchived:  archived,
	}
}

func printListTable(cmd *cobra.Command, result ListResult) error {
	if result.Count == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recipes found. Press 'n' in the TUI or run 'tastebook import' to add one.")
		return nil
	}

	formatter := cli.NewTableFormatter(cmd.OutOrStdout())
	headers := []string{"NAME", "CATEGORY", "DIFFICULTY", "TIME", "TAGS", "INGREDIENTS"}
	if listShowPaths {
		headers = append(headers, "PATH")
	}
	if listShowArchived {
		headers = append(headers, "ARCHIVED")
	}
	formatter.Header(headers...)

	for _, item := range result.Items {
		row := []string{
			cli.TruncateString(item.Name, 40),
			item.Category,
			item.Difficulty,
			cli.FormatMinutes(item.TotalMins),
			cli.FormatTags(item.Tags, 30),
			fmt.Sprintf("%d", item.Ingredients),
		}
		if listShowPaths {
			row = append(row, item.Path)
		}
		if listShowArchived {
			mark := ""
			if item.IsArchived {
				mark = "yes"
			}
			row = append(row, mark)
		}
		formatter.Row(row...)
	}
	formatter.Flush()

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d recipe(s)\n", result.Count)
	return nil
}
