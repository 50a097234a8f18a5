package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tastebook/tastebook-cli/internal/cli"
	"github.com/tastebook/tastebook-cli/pkg/tags"
)

// TagsResult represents the output structure for the tags command
type TagsResult struct {
	Tags  []TagEntry `json:"tags" yaml:"tags"`
	Count int        `json:"count" yaml:"count"`
}

// TagEntry is one tag with its usage count
type TagEntry struct {
	Name    string `json:"name" yaml:"name"`
	Recipes int    `json:"recipes" yaml:"recipes"`
}

// NewTagsCommand creates the tags command
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List tags and how many recipes use them",
		Long: `List every tag in the book with its usage count, most used first.

Examples:
  # Show all tags
  tastebook tags

  # Output as JSON
  tastebook tags -o json`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.NewCommandContext().ValidateProject()
		},
		RunE: runTags,
	}

	return cmd
}

func runTags(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("output")

	usage, err := tags.CountAllTagUsage()
	if err != nil {
		return fmt.Errorf("failed to count tag usage: %w", err)
	}

	result := TagsResult{Tags: []TagEntry{}, Count: len(usage)}
	for _, u := range usage {
		result.Tags = append(result.Tags, TagEntry{Name: u.Tag, Recipes: u.RecipeCount})
	}

	switch outputFormat {
	case "json", "yaml":
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	default:
		if result.Count == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No tags yet.")
			return nil
		}
		formatter := cli.NewTableFormatter(cmd.OutOrStdout())
		formatter.Header("TAG", "RECIPES")
		for _, entry := range result.Tags {
			formatter.Row(entry.Name, fmt.Sprintf("%d", entry.Recipes))
		}
		formatter.Flush()
		return nil
	}
}
