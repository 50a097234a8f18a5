// Package tags manages the project tag registry: the set of known tags
// across every stored recipe, used for suggestions in the editor.
package tags

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/tastebook/tastebook-cli/pkg/files"
	"github.com/tastebook/tastebook-cli/pkg/models"
)

const (
	TagsRegistryFile = "tags.yaml"
)

// Registry manages the tag registry for a project
type Registry struct {
	mu       sync.RWMutex
	registry *models.TagRegistry
	path     string
}

// NewRegistry creates a new tag registry manager
func NewRegistry() (*Registry, error) {
	registryPath := filepath.Join(files.TastebookDir, TagsRegistryFile)

	r := &Registry{
		path: registryPath,
	}

	if err := r.Load(); err != nil {
		// If file doesn't exist, create empty registry
		if os.IsNotExist(err) {
			r.registry = &models.TagRegistry{
				Tags: []models.Tag{},
			}
			return r, nil
		}
		return nil, fmt.Errorf("failed to load tag registry: %w", err)
	}

	return r, nil
}

// Load reads the tag registry from disk
func (r *Registry) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	content, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}

	var registry models.TagRegistry
	if err := yaml.Unmarshal(content, &registry); err != nil {
		return fmt.Errorf("failed to parse tag registry: %w", err)
	}

	r.registry = &registry
	return nil
}

// Save writes the tag registry to disk
func (r *Registry) Save() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	content, err := yaml.Marshal(r.registry)
	if err != nil {
		return fmt.Errorf("failed to marshal tag registry: %w", err)
	}

	if err := os.WriteFile(r.path, content, 0644); err != nil {
		return fmt.Errorf("failed to write tag registry: %w", err)
	}

	return nil
}

// ListTags returns all registered tags sorted by name
func (r *Registry) ListTags() []models.Tag {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]models.Tag, len(r.registry.Tags))
	copy(tags, r.registry.Tags)
	sort.Slice(tags, func(i, j int) bool {
		return tags[i].Name < tags[j].Name
	})
	return tags
}

// GetOrCreateTag returns the tag with the given name, registering it
// first when unknown. The name is normalized before lookup.
func (r *Registry) GetOrCreateTag(name string) models.Tag {
	normalized := models.NormalizeTagName(name)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, tag := range r.registry.Tags {
		if tag.Name == normalized {
			return tag
		}
	}

	tag := models.Tag{Name: normalized}
	r.registry.Tags = append(r.registry.Tags, tag)
	return tag
}

// RemoveTag deletes a tag from the registry. Removing an unknown tag is a
// no-op.
func (r *Registry) RemoveTag(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, tag := range r.registry.Tags {
		if tag.Name == name {
			r.registry.Tags = append(r.registry.Tags[:i], r.registry.Tags[i+1:]...)
			return
		}
	}
}

// SyncFromStore rebuilds the registry from the tags actually present on
// stored recipes, keeping registered tags that are no longer used.
func (r *Registry) SyncFromStore() error {
	recipes, err := files.LoadAllRecipes()
	if err != nil {
		return fmt.Errorf("failed to scan recipes for tags: %w", err)
	}

	for _, recipe := range recipes {
		for _, tag := range recipe.Tags {
			r.GetOrCreateTag(tag)
		}
	}

	return nil
}
