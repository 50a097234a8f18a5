package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ArchiveRecipe moves a recipe file out of the active store into the
// archive directory. Archived recipes keep their content and can be
// restored later.
func ArchiveRecipe(path string) error {
	src := filepath.Join(TastebookDir, RecipesDir, path)
	dst := filepath.Join(TastebookDir, ArchiveDir, path)

	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("recipe %s not found: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("failed to create archive directory: %w", err)
	}

	// Avoid clobbering an archived recipe of the same name.
	if _, err := os.Stat(dst); err == nil {
		dst = uniqueArchivePath(dst)
	}

	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to archive recipe %s: %w", path, err)
	}

	return nil
}

// UnarchiveRecipe moves an archived recipe back into the active store.
func UnarchiveRecipe(path string) error {
	src := filepath.Join(TastebookDir, ArchiveDir, path)
	dst := filepath.Join(TastebookDir, RecipesDir, path)

	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("archived recipe %s not found: %w", path, err)
	}

	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("recipe %s already exists in the active store", path)
	}

	if err := os.Rename(src, dst); err != nil {
		return fmt.Errorf("failed to restore recipe %s: %w", path, err)
	}

	return nil
}

// ListArchivedRecipes returns the filenames in the archive directory.
func ListArchivedRecipes() ([]string, error) {
	archivePath := filepath.Join(TastebookDir, ArchiveDir)

	entries, err := os.ReadDir(archivePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to list archived recipes: %w", err)
	}

	var recipes []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".yaml") {
			recipes = append(recipes, entry.Name())
		}
	}

	return recipes, nil
}

func uniqueArchivePath(dst string) string {
	base := strings.TrimSuffix(dst, ".yaml")
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s-%d.yaml", base, i)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			return candidate
		}
	}
}
