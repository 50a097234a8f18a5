package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tastebook/tastebook-cli/pkg/models"
	"github.com/tastebook/tastebook-cli/pkg/utils"
)

const (
	TastebookDir = ".tastebook"
	RecipesDir   = "recipes"
	ArchiveDir   = "archive"
	SettingsFile = "settings.yaml"
)

func InitProjectStructure() error {
	dirs := []string{
		TastebookDir,
		filepath.Join(TastebookDir, RecipesDir),
		filepath.Join(TastebookDir, ArchiveDir),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ProjectExists reports whether the current directory has a .tastebook
// project.
func ProjectExists() bool {
	info, err := os.Stat(TastebookDir)
	return err == nil && info.IsDir()
}

func ReadRecipe(path string) (*models.Recipe, error) {
	return readRecipeFile(filepath.Join(TastebookDir, RecipesDir, path), path)
}

// ReadArchivedRecipe loads a recipe from the archive directory. The
// returned Path is the archive filename, suitable for UnarchiveRecipe.
func ReadArchivedRecipe(path string) (*models.Recipe, error) {
	return readRecipeFile(filepath.Join(TastebookDir, ArchiveDir, path), path)
}

func readRecipeFile(absPath, path string) (*models.Recipe, error) {
	content, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe %s: %w", path, err)
	}

	var recipe models.Recipe
	if err := yaml.Unmarshal(content, &recipe); err != nil {
		return nil, fmt.Errorf("failed to parse recipe YAML %s: %w", path, err)
	}

	recipe.Path = path
	recipe.EnsureIDs()
	recipe.Normalize()

	return &recipe, nil
}

func WriteRecipe(recipe *models.Recipe) error {
	if err := recipe.Validate(); err != nil {
		return fmt.Errorf("refusing to write invalid recipe: %w", err)
	}

	if recipe.Path == "" {
		recipe.Path = fmt.Sprintf("%s.yaml", utils.Slugify(recipe.Name))
	}
	recipe.UpdatedAt = time.Now().UTC()

	absPath := filepath.Join(TastebookDir, RecipesDir, recipe.Path)

	dir := filepath.Dir(absPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for recipe: %w", err)
	}

	content, err := yaml.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("failed to marshal recipe to YAML: %w", err)
	}

	if err := os.WriteFile(absPath, content, 0644); err != nil {
		return fmt.Errorf("failed to write recipe %s: %w", recipe.Path, err)
	}

	return nil
}

func DeleteRecipe(path string) error {
	absPath := filepath.Join(TastebookDir, RecipesDir, path)
	if err := os.Remove(absPath); err != nil {
		return fmt.Errorf("failed to delete recipe %s: %w", path, err)
	}
	return nil
}

func ListRecipes() ([]string, error) {
	recipesPath := filepath.Join(TastebookDir, RecipesDir)

	entries, err := os.ReadDir(recipesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	var recipes []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			recipes = append(recipes, entry.Name())
		}
	}

	return recipes, nil
}

// LoadAllRecipes reads every recipe in the store. Unreadable files are
// skipped so one corrupt file cannot hide the whole collection.
func LoadAllRecipes() ([]*models.Recipe, error) {
	paths, err := ListRecipes()
	if err != nil {
		return nil, err
	}

	recipes := make([]*models.Recipe, 0, len(paths))
	for _, path := range paths {
		recipe, err := ReadRecipe(path)
		if err != nil {
			continue
		}
		recipes = append(recipes, recipe)
	}

	return recipes, nil
}

// FindRecipe resolves a name or filename to a stored recipe. Matching is
// case-insensitive on the recipe name and exact on the filename.
func FindRecipe(nameOrPath string) (*models.Recipe, error) {
	if strings.HasSuffix(nameOrPath, ".yaml") {
		return ReadRecipe(nameOrPath)
	}

	recipes, err := LoadAllRecipes()
	if err != nil {
		return nil, err
	}
	for _, r := range recipes {
		if strings.EqualFold(r.Name, nameOrPath) {
			return r, nil
		}
	}
	return nil, fmt.Errorf("recipe %q not found", nameOrPath)
}

// WriteFile writes content to a path outside the store (exports).
func WriteFile(path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}
	return nil
}
