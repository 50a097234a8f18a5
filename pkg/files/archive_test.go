package files

import (
	"testing"

	"github.com/tastebook/tastebook-cli/pkg/models"
)

func TestArchiveAndUnarchiveRecipe(t *testing.T) {
	setupProject(t)

	r := models.NewRecipe("Pancakes")
	if err := WriteRecipe(r); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}

	if err := ArchiveRecipe(r.Path); err != nil {
		t.Fatalf("ArchiveRecipe() error = %v", err)
	}

	active, _ := ListRecipes()
	if len(active) != 0 {
		t.Errorf("active recipes = %v, want empty after archive", active)
	}

	archived, err := ListArchivedRecipes()
	if err != nil {
		t.Fatalf("ListArchivedRecipes() error = %v", err)
	}
	if len(archived) != 1 || archived[0] != r.Path {
		t.Errorf("archived = %v, want [%s]", archived, r.Path)
	}

	if err := UnarchiveRecipe(r.Path); err != nil {
		t.Fatalf("UnarchiveRecipe() error = %v", err)
	}
	active, _ = ListRecipes()
	if len(active) != 1 {
		t.Errorf("active recipes = %v, want restored recipe", active)
	}
}

func TestArchiveMissingRecipe(t *testing.T) {
	setupProject(t)
	if err := ArchiveRecipe("nope.yaml"); err == nil {
		t.Error("ArchiveRecipe() succeeded for missing recipe")
	}
}

func TestUnarchiveRefusesOverwrite(t *testing.T) {
	setupProject(t)

	r := models.NewRecipe("Pancakes")
	if err := WriteRecipe(r); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}
	if err := ArchiveRecipe(r.Path); err != nil {
		t.Fatalf("ArchiveRecipe() error = %v", err)
	}

	// Recreate a recipe at the same path, then try to restore over it.
	again := models.NewRecipe("Pancakes")
	if err := WriteRecipe(again); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}
	if err := UnarchiveRecipe(r.Path); err == nil {
		t.Error("UnarchiveRecipe() overwrote an active recipe")
	}
}

func TestReadArchivedRecipe(t *testing.T) {
	setupProject(t)

	r := models.NewRecipe("Pancakes")
	r.Description = "Fluffy weekend pancakes"
	if err := WriteRecipe(r); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}
	if err := ArchiveRecipe(r.Path); err != nil {
		t.Fatalf("ArchiveRecipe() error = %v", err)
	}

	got, err := ReadArchivedRecipe(r.Path)
	if err != nil {
		t.Fatalf("ReadArchivedRecipe() error = %v", err)
	}
	if got.Name != "Pancakes" || got.Description != "Fluffy weekend pancakes" {
		t.Errorf("ReadArchivedRecipe() = %q / %q, want the archived content", got.Name, got.Description)
	}
	if got.Path != r.Path {
		t.Errorf("Path = %q, want archive filename %q", got.Path, r.Path)
	}

	// The active-store reader must not resolve archived files.
	if _, err := ReadRecipe(r.Path); err == nil {
		t.Error("ReadRecipe() resolved an archived file from the active store")
	}
}

func TestReadArchivedRecipeIgnoresActiveShadow(t *testing.T) {
	setupProject(t)

	r := models.NewRecipe("Pancakes")
	r.Description = "archived version"
	if err := WriteRecipe(r); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}
	if err := ArchiveRecipe(r.Path); err != nil {
		t.Fatalf("ArchiveRecipe() error = %v", err)
	}

	// An active recipe under the same filename must not shadow the
	// archived one.
	shadow := models.NewRecipe("Pancakes")
	shadow.Description = "active version"
	if err := WriteRecipe(shadow); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}

	got, err := ReadArchivedRecipe(r.Path)
	if err != nil {
		t.Fatalf("ReadArchivedRecipe() error = %v", err)
	}
	if got.Description != "archived version" {
		t.Errorf("Description = %q, want %q", got.Description, "archived version")
	}
}
