package tags

import (
	"fmt"
	"sort"

	"github.com/tastebook/tastebook-cli/pkg/files"
	"github.com/tastebook/tastebook-cli/pkg/models"
)

// TagUsage describes how often one tag occurs across the recipe store.
type TagUsage struct {
	Tag         string
	RecipeCount int
	Recipes     []string // recipe names using the tag
}

// CountTagUsage scans the store for one tag.
func CountTagUsage(tag string) (*TagUsage, error) {
	recipes, err := files.LoadAllRecipes()
	if err != nil {
		return nil, fmt.Errorf("failed to scan recipes: %w", err)
	}

	usage := &TagUsage{Tag: tag}
	for _, recipe := range recipes {
		if models.HasTag(recipe.Tags, tag) {
			usage.RecipeCount++
			usage.Recipes = append(usage.Recipes, recipe.Name)
		}
	}

	return usage, nil
}

// CountAllTagUsage returns usage for every tag present on any recipe,
// most used first.
func CountAllTagUsage() ([]TagUsage, error) {
	recipes, err := files.LoadAllRecipes()
	if err != nil {
		return nil, fmt.Errorf("failed to scan recipes: %w", err)
	}

	byTag := make(map[string]*TagUsage)
	var order []string
	for _, recipe := range recipes {
		for _, tag := range recipe.Tags {
			u, ok := byTag[tag]
			if !ok {
				u = &TagUsage{Tag: tag}
				byTag[tag] = u
				order = append(order, tag)
			}
			u.RecipeCount++
			u.Recipes = append(u.Recipes, recipe.Name)
		}
	}

	usages := make([]TagUsage, 0, len(order))
	for _, tag := range order {
		usages = append(usages, *byTag[tag])
	}
	sort.SliceStable(usages, func(i, j int) bool {
		return usages[i].RecipeCount > usages[j].RecipeCount
	})

	return usages, nil
}
