package extract

import (
	"regexp"
	"strings"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

// Draft is the result of parsing pasted text: a recipe plus a confidence
// score the UI can surface before the user starts correcting it.
type Draft struct {
	Recipe     *models.Recipe
	Confidence float64
}

var (
	ingredientHeading  = regexp.MustCompile(`(?i)^#*\s*ingredients\s*:?\s*$`)
	instructionHeading = regexp.MustCompile(`(?i)^#*\s*(instructions|directions|preparation|method)\s*:?\s*$`)
	bulletPrefix       = regexp.MustCompile(`^[-*•]\s+`)
	stepPrefix         = regexp.MustCompile(`^\d+[.)]\s+`)
	amountToken        = regexp.MustCompile(`^(\d+([./-]\d+)*|½|⅓|¼|¾)$`)
)

// Units the ingredient-line heuristic recognizes as a middle token.
var knownUnits = map[string]bool{
	"cup": true, "cups": true,
	"tbsp": true, "tablespoon": true, "tablespoons": true,
	"tsp": true, "teaspoon": true, "teaspoons": true,
	"g": true, "gram": true, "grams": true, "kg": true,
	"ml": true, "l": true, "liter": true, "liters": true,
	"oz": true, "ounce": true, "ounces": true, "lb": true, "lbs": true,
	"pinch": true, "clove": true, "cloves": true, "slice": true, "slices": true,
	"can": true, "cans": true, "bunch": true, "packet": true,
}

// ParseText builds a draft recipe from free-form text. The first
// non-empty line becomes the name; "Ingredients" and
// "Instructions"-style headings switch sections; within sections,
// ingredient lines are split into amount/unit/item and instruction lines
// are numbered in order.
func ParseText(text string) *Draft {
	text = CleanWebText(text)
	lines := strings.Split(text, "\n")

	recipe := models.NewRecipe("")
	recipe.Ingredients = []models.Ingredient{}
	recipe.Instructions = []models.Instruction{}

	const (
		secNone = iota
		secIngredients
		secInstructions
	)
	section := secNone
	total, used := 0, 0

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		total++

		switch {
		case ingredientHeading.MatchString(line):
			section = secIngredients
			used++
			continue
		case instructionHeading.MatchString(line):
			section = secInstructions
			used++
			continue
		}

		if recipe.Name == "" && section == secNone {
			recipe.Name = strings.TrimPrefix(strings.TrimSpace(line), "# ")
			used++
			continue
		}

		switch section {
		case secIngredients:
			recipe.Ingredients = append(recipe.Ingredients, parseIngredientLine(line))
			used++
		case secInstructions:
			step := stepPrefix.ReplaceAllString(line, "")
			recipe.Instructions = append(recipe.Instructions, models.NewInstruction(step))
			used++
		default:
			// Text between the title and the first heading becomes the
			// description, first paragraph only.
			if recipe.Description == "" {
				recipe.Description = line
				used++
			}
		}
	}

	return &Draft{
		Recipe:     recipe,
		Confidence: CombineConfidence(lineConfidence(used, total), parseConfidence(recipe)),
	}
}

// parseIngredientLine splits "2 cups flour" into its three sub-fields.
// A leading numeric-looking token is the amount; the next token is the
// unit only when it is a known unit word; everything else is the item.
func parseIngredientLine(line string) models.Ingredient {
	line = bulletPrefix.ReplaceAllString(line, "")
	ing := models.NewIngredient()

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ing
	}

	i := 0
	if amountToken.MatchString(fields[i]) {
		ing.Amount = fields[i]
		i++
	}
	if i < len(fields) && knownUnits[strings.ToLower(fields[i])] {
		ing.Unit = strings.ToLower(fields[i])
		i++
	}
	ing.Item = strings.Join(fields[i:], " ")
	return ing
}

func lineConfidence(used, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total)
}

// parseConfidence scores completeness of the draft itself: a name, some
// ingredients and some instructions each count a third.
func parseConfidence(r *models.Recipe) float64 {
	score := 0.0
	if r.Name != "" {
		score += 1.0 / 3
	}
	if len(r.Ingredients) > 0 {
		score += 1.0 / 3
	}
	if len(r.Instructions) > 0 {
		score += 1.0 / 3
	}
	return score
}
