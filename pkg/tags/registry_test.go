package tags

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

func setupProject(t *testing.T) {
	t.Helper()
	chdir(t, t.TempDir())
	if err := files.InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure() error = %v", err)
	}
}

func TestRegistryGetOrCreate(t *testing.T) {
	setupProject(t)

	r, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}

	tag := r.GetOrCreateTag("Comfort Food")
	if tag.Name != "comfort-food" {
		t.Errorf("tag name = %q, want normalized", tag.Name)
	}

	// Creating again must not duplicate.
	r.GetOrCreateTag("comfort-food")
	if got := len(r.ListTags()); got != 1 {
		t.Errorf("tags = %d, want 1", got)
	}
}

func TestRegistrySaveLoad(t *testing.T) {
	setupProject(t)

	r, _ := NewRegistry()
	r.GetOrCreateTag("vegan")
	r.GetOrCreateTag("quick")
	if err := r.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	r2, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() after save error = %v", err)
	}
	tags := r2.ListTags()
	if len(tags) != 2 {
		t.Fatalf("loaded tags = %d, want 2", len(tags))
	}
	// ListTags sorts by name.
	if tags[0].Name != "quick" || tags[1].Name != "vegan" {
		t.Errorf("tags = %v, want sorted by name", tags)
	}
}

func TestRegistryRemoveTag(t *testing.T) {
	setupProject(t)

	r, _ := NewRegistry()
	r.GetOrCreateTag("vegan")
	r.RemoveTag("vegan")
	r.RemoveTag("never-existed")

	if got := len(r.ListTags()); got != 0 {
		t.Errorf("tags = %d, want 0 after remove", got)
	}
}

func TestCountTagUsage(t *testing.T) {
	setupProject(t)

	for _, tc := range []struct {
		name string
		tags []string
	}{
		{"Pancakes", []string{"breakfast", "quick"}},
		{"Omelette", []string{"breakfast"}},
		{"Stew", []string{"winter"}},
	} {
		recipe := models.NewRecipe(tc.name)
		recipe.Tags = tc.tags
		if err := files.WriteRecipe(recipe); err != nil {
			t.Fatalf("WriteRecipe(%s) error = %v", tc.name, err)
		}
	}

	usage, err := CountTagUsage("breakfast")
	if err != nil {
		t.Fatalf("CountTagUsage() error = %v", err)
	}
	if usage.RecipeCount != 2 {
		t.Errorf("RecipeCount = %d, want 2", usage.RecipeCount)
	}

	all, err := CountAllTagUsage()
	if err != nil {
		t.Fatalf("CountAllTagUsage() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("distinct tags = %d, want 3", len(all))
	}
	if all[0].Tag != "breakfast" {
		t.Errorf("most used = %q, want breakfast first", all[0].Tag)
	}
}

func TestSyncFromStore(t *testing.T) {
	setupProject(t)

	recipe := models.NewRecipe("Pancakes")
	recipe.Tags = []string{"breakfast"}
	if err := files.WriteRecipe(recipe); err != nil {
		t.Fatalf("WriteRecipe() error = %v", err)
	}

	r, _ := NewRegistry()
	if err := r.SyncFromStore(); err != nil {
		t.Fatalf("SyncFromStore() error = %v", err)
	}
	if got := len(r.ListTags()); got != 1 {
		t.Errorf("tags after sync = %d, want 1", got)
	}
}
