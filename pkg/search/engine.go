package search

import (
	"strings"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

// Engine filters recipes against parsed queries.
type Engine struct {
	parser *Parser
}

// NewEngine creates a new search engine
func NewEngine() *Engine {
	return &Engine{parser: NewParser()}
}

// Filter returns the recipes matching the query string, preserving the
// input order. An empty query matches everything.
func (e *Engine) Filter(recipes []*models.Recipe, input string) []*models.Recipe {
	query := e.parser.Parse(input)
	if query.Empty() {
		return recipes
	}

	var matched []*models.Recipe
	for _, recipe := range recipes {
		if e.Matches(recipe, query) {
			matched = append(matched, recipe)
		}
	}
	return matched
}

// Matches reports whether one recipe satisfies every term and condition.
func (e *Engine) Matches(recipe *models.Recipe, query *Query) bool {
	for _, term := range query.Terms {
		if !matchesTerm(recipe, term) {
			return false
		}
	}
	for _, cond := range query.Conditions {
		if matchesCondition(recipe, cond) == cond.Negate {
			return false
		}
	}
	return true
}

func matchesTerm(recipe *models.Recipe, term string) bool {
	if strings.Contains(strings.ToLower(recipe.Name), term) {
		return true
	}
	return strings.Contains(strings.ToLower(recipe.Description), term)
}

func matchesCondition(recipe *models.Recipe, cond Condition) bool {
	switch cond.Field {
	case FieldTag:
		for _, tag := range recipe.Tags {
			if strings.ToLower(tag) == cond.Value {
				return true
			}
		}
		return false
	case FieldCategory:
		return strings.ToLower(recipe.Category) == cond.Value
	case FieldDifficulty:
		return strings.ToLower(recipe.Difficulty) == cond.Value
	case FieldName:
		return strings.Contains(strings.ToLower(recipe.Name), cond.Value)
	case FieldIngredient:
		return matchesIngredient(recipe, cond.Value)
	}
	return false
}

func matchesIngredient(recipe *models.Recipe, value string) bool {
	for _, ing := range allIngredients(recipe) {
		if strings.Contains(strings.ToLower(ing.Item), value) {
			return true
		}
	}
	return false
}

func allIngredients(recipe *models.Recipe) []models.Ingredient {
	if !recipe.UsesIngredientStages() {
		return recipe.Ingredients
	}
	var all []models.Ingredient
	for _, stage := range recipe.IngredientStages {
		all = append(all, stage.Ingredients...)
	}
	return all
}
