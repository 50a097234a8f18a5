package examples

import (
	"fmt"

	"github.com/tastebook/tastebook-cli/pkg/files"
	"github.com/tastebook/tastebook-cli/pkg/models"
)

// GetExamples returns the starter recipes seeded by 'init --examples'.
// One flat recipe, one staged recipe, and one with notes and tags, so a
// new book shows every shape the editor supports.
func GetExamples() []*models.Recipe {
	return []*models.Recipe{
		pancakes(),
		lasagna(),
		coldBrew(),
	}
}

// Write saves every example recipe into the store.
func Write() error {
	for _, recipe := range GetExamples() {
		if err := files.WriteRecipe(recipe); err != nil {
			return fmt.Errorf("failed to write example recipe %s: %w", recipe.Name, err)
		}
	}
	return nil
}

func intPtr(v int) *int { return &v }

func pancakes() *models.Recipe {
	r := models.NewRecipe("Buttermilk Pancakes")
	r.Description = "Fluffy weekend pancakes from pantry staples."
	r.Category = "breakfast"
	r.Difficulty = "easy"
	r.Servings = intPtr(4)
	r.PrepTime = intPtr(10)
	r.CookTime = intPtr(15)
	r.Tags = []string{"example", "weekend"}
	r.Ingredients = []models.Ingredient{
		{ID: models.NewID(), Amount: "2", Unit: "cups", Item: "all-purpose flour"},
		{ID: models.NewID(), Amount: "2", Unit: "tbsp", Item: "sugar"},
		{ID: models.NewID(), Amount: "2", Unit: "tsp", Item: "baking powder"},
		{ID: models.NewID(), Amount: "2", Unit: "cups", Item: "buttermilk"},
		{ID: models.NewID(), Amount: "2", Unit: "", Item: "eggs"},
	}
	r.Instructions = []models.Instruction{
		{ID: models.NewID(), Text: "Whisk the dry ingredients together."},
		{ID: models.NewID(), Text: "Beat in the buttermilk and eggs until just combined."},
		{ID: models.NewID(), Text: "Cook on a hot griddle until bubbles form, then flip."},
	}
	return r
}

func lasagna() *models.Recipe {
	r := models.NewRecipe("Classic Lasagna")
	r.Description = "A layered lasagna with separate sauce and assembly stages."
	r.Category = "main"
	r.Difficulty = "medium"
	r.Servings = intPtr(8)
	r.PrepTime = intPtr(45)
	r.CookTime = intPtr(50)
	r.Tags = []string{"example", "italian"}
	r.Ingredients = nil
	r.IngredientStages = []models.IngredientStage{
		{
			ID:    models.NewID(),
			Title: "Sauce",
			Ingredients: []models.Ingredient{
				{ID: models.NewID(), Amount: "1", Unit: "lb", Item: "ground beef"},
				{ID: models.NewID(), Amount: "28", Unit: "oz", Item: "crushed tomatoes"},
				{ID: models.NewID(), Amount: "3", Unit: "", Item: "garlic cloves, minced"},
			},
		},
		{
			ID:    models.NewID(),
			Title: "Assembly",
			Ingredients: []models.Ingredient{
				{ID: models.NewID(), Amount: "12", Unit: "", Item: "lasagna noodles"},
				{ID: models.NewID(), Amount: "16", Unit: "oz", Item: "ricotta"},
				{ID: models.NewID(), Amount: "2", Unit: "cups", Item: "shredded mozzarella"},
			},
		},
	}
	r.Instructions = nil
	r.InstructionStages = []models.InstructionStage{
		{
			ID:    models.NewID(),
			Title: "Sauce",
			Instructions: []models.Instruction{
				{ID: models.NewID(), Text: "Brown the beef with the garlic."},
				{ID: models.NewID(), Text: "Add the tomatoes and simmer for 30 minutes."},
			},
		},
		{
			ID:    models.NewID(),
			Title: "Assembly",
			Instructions: []models.Instruction{
				{ID: models.NewID(), Text: "Layer noodles, sauce, and cheeses in a baking dish."},
				{ID: models.NewID(), Text: "Bake at 375°F until browned and bubbling."},
			},
		},
	}
	return r
}

func coldBrew() *models.Recipe {
	r := models.NewRecipe("Overnight Cold Brew")
	r.Description = "Smooth concentrate, no special gear needed."
	r.Category = "drink"
	r.Difficulty = "easy"
	r.PrepTime = intPtr(5)
	r.Tags = []string{"example", "coffee", "make-ahead"}
	r.Comments = "Dilute the concentrate 1:1 with water or milk. Keeps a week refrigerated."
	r.Ingredients = []models.Ingredient{
		{ID: models.NewID(), Amount: "1", Unit: "cup", Item: "coarsely ground coffee"},
		{ID: models.NewID(), Amount: "4", Unit: "cups", Item: "cold water"},
	}
	r.Instructions = []models.Instruction{
		{ID: models.NewID(), Text: "Stir the grounds into the water in a jar."},
		{ID: models.NewID(), Text: "Steep in the fridge for 12 to 18 hours."},
		{ID: models.NewID(), Text: "Strain through a fine sieve or cheesecloth."},
	}
	return r
}
