package tui

import (
	"os"
	"testing"

	"github.com/tastebook/tastebook-cli/pkg/files"
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

func setupStore(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	if err := files.InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure() error = %v", err)
	}
}

func TestArchivedViewLoadsArchivedRecipes(t *testing.T) {
	setupStore(t)

	r := models.NewRecipe("Pancakes")
	if err := files.WriteRecipe(r); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}
	if err := files.ArchiveRecipe(r.Path); err != nil {
		t.Fatalf("ArchiveRecipe() error = %v", err)
	}

	m := NewRecipeListModel()
	m.showArchived = true
	m.loadRecipes()

	if len(m.recipes) != 1 {
		t.Fatalf("archived view loaded %d recipes, want 1", len(m.recipes))
	}
	if m.recipes[0].Name != "Pancakes" {
		t.Errorf("archived recipe name = %q, want %q", m.recipes[0].Name, "Pancakes")
	}
}

func TestListViewSeparatesActiveAndArchived(t *testing.T) {
	setupStore(t)

	keep := models.NewRecipe("Cold Brew")
	if err := files.WriteRecipe(keep); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}
	gone := models.NewRecipe("Pancakes")
	if err := files.WriteRecipe(gone); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}
	if err := files.ArchiveRecipe(gone.Path); err != nil {
		t.Fatalf("ArchiveRecipe() error = %v", err)
	}

	m := NewRecipeListModel()
	if len(m.recipes) != 1 || m.recipes[0].Name != "Cold Brew" {
		t.Errorf("active view = %d recipes, want only Cold Brew", len(m.recipes))
	}

	m.showArchived = true
	m.loadRecipes()
	if len(m.recipes) != 1 || m.recipes[0].Name != "Pancakes" {
		t.Errorf("archived view = %d recipes, want only Pancakes", len(m.recipes))
	}
}
