package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup. Equivalent to t.Chdir, which
// requires Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })
}

func setupProject(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure() error = %v", err)
	}
}

func TestInitProjectStructure(t *testing.T) {
	setupProject(t)

	for _, dir := range []string{
		TastebookDir,
		filepath.Join(TastebookDir, RecipesDir),
		filepath.Join(TastebookDir, ArchiveDir),
	} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Errorf("expected directory %s to exist", dir)
		}
	}

	if !ProjectExists() {
		t.Error("ProjectExists() = false after init")
	}
}

func TestWriteAndReadRecipe(t *testing.T) {
	setupProject(t)

	r := models.NewRecipe("Beef Stew")
	r.Ingredients = []models.Ingredient{{ID: models.NewID(), Amount: "1", Unit: "kg", Item: "beef"}}
	r.Instructions = []models.Instruction{models.NewInstruction("Brown the beef.")}
	r.Tags = []string{"winter", "slow-cook"}

	if err := WriteRecipe(r); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}
	if r.Path != "beef-stew.yaml" {
		t.Errorf("Path = %q, want slug filename", r.Path)
	}

	got, err := ReadRecipe(r.Path)
	if err != nil {
		t.Fatalf("ReadRecipe() error = %v", err)
	}
	if got.Name != "Beef Stew" {
		t.Errorf("Name = %q", got.Name)
	}
	if len(got.Ingredients) != 1 || got.Ingredients[0].Item != "beef" {
		t.Errorf("Ingredients = %+v", got.Ingredients)
	}
	if got.Path != r.Path {
		t.Errorf("Path = %q, want %q", got.Path, r.Path)
	}
}

func TestWriteRecipeRejectsInvalid(t *testing.T) {
	setupProject(t)

	r := models.NewRecipe("Broken")
	r.Ingredients = []models.Ingredient{models.NewIngredient()}
	r.IngredientStages = []models.IngredientStage{{ID: models.NewID()}}

	if err := WriteRecipe(r); err == nil {
		t.Error("WriteRecipe() accepted a recipe with both ingredient shapes")
	}
}

func TestListAndFindRecipes(t *testing.T) {
	setupProject(t)

	for _, name := range []string{"Pancakes", "Beef Stew"} {
		r := models.NewRecipe(name)
		if err := WriteRecipe(r); err != nil {
			t.Fatalf("WriteRecipe(%s) error = %v", name, err)
		}
	}

	paths, err := ListRecipes()
	if err != nil {
		t.Fatalf("ListRecipes() error = %v", err)
	}
	if len(paths) != 2 {
		t.Fatalf("ListRecipes() = %d entries, want 2", len(paths))
	}

	got, err := FindRecipe("beef stew")
	if err != nil {
		t.Fatalf("FindRecipe() error = %v", err)
	}
	if got.Name != "Beef Stew" {
		t.Errorf("FindRecipe() = %q, want case-insensitive name match", got.Name)
	}

	if _, err := FindRecipe("Ratatouille"); err == nil {
		t.Error("FindRecipe() found a recipe that does not exist")
	}
}

func TestDeleteRecipe(t *testing.T) {
	setupProject(t)

	r := models.NewRecipe("Pancakes")
	if err := WriteRecipe(r); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}

	if err := DeleteRecipe(r.Path); err != nil {
		t.Fatalf("DeleteRecipe() error = %v", err)
	}
	if _, err := ReadRecipe(r.Path); err == nil {
		t.Error("recipe still readable after delete")
	}
}

func TestListRecipesEmptyStore(t *testing.T) {
	chdir(t, t.TempDir())
	paths, err := ListRecipes()
	if err != nil {
		t.Fatalf("ListRecipes() error = %v", err)
	}
	if len(paths) != 0 {
		t.Errorf("ListRecipes() = %v, want empty", paths)
	}
}

func TestReadRecipeNormalizesHandWrittenFiles(t *testing.T) {
	setupProject(t)

	raw := `name: "  Minestrone  "
category: " Soup "
difficulty: " EASY "
tags:
  - " weeknight "
ingredients:
  - amount: " 2 "
    unit: " cups "
    item: " vegetable stock "
instructions:
  - text: "  Simmer everything together.  "
`
	path := filepath.Join(TastebookDir, RecipesDir, "minestrone.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := ReadRecipe("minestrone.yaml")
	if err != nil {
		t.Fatalf("ReadRecipe() error = %v", err)
	}
	if got.Name != "Minestrone" {
		t.Errorf("Name = %q, want trimmed", got.Name)
	}
	if got.Category != "soup" {
		t.Errorf("Category = %q, want %q", got.Category, "soup")
	}
	if got.Difficulty != "easy" {
		t.Errorf("Difficulty = %q, want %q", got.Difficulty, "easy")
	}
	if got.Tags[0] != "weeknight" {
		t.Errorf("Tags[0] = %q, want trimmed", got.Tags[0])
	}
	ing := got.Ingredients[0]
	if ing.Amount != "2" || ing.Unit != "cups" || ing.Item != "vegetable stock" {
		t.Errorf("ingredient = %+v, want trimmed fields", ing)
	}
	if got.Instructions[0].Text != "Simmer everything together." {
		t.Errorf("instruction = %q, want trimmed", got.Instructions[0].Text)
	}
}
