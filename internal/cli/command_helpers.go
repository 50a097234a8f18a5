package cli

import (
	"fmt"
	"os"

	"github.com/tastebook/tastebook-cli/pkg/files"
	"github.com/tastebook/tastebook-cli/pkg/models"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.TastebookDir,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	if _, err := os.Stat(c.ProjectPath); os.IsNotExist(err) {
		return fmt.Errorf("no .tastebook directory found. Run 'tastebook init' first")
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// ResolveRecipe finds a recipe by name or filename and returns a helpful
// error naming close candidates when nothing matches exactly.
func (c *CommandContext) ResolveRecipe(nameOrPath string) (*models.Recipe, error) {
	recipe, err := files.FindRecipe(nameOrPath)
	if err == nil {
		return recipe, nil
	}

	paths, listErr := files.ListRecipes()
	if listErr != nil || len(paths) == 0 {
		return nil, err
	}
	return nil, fmt.Errorf("%w (run 'tastebook list' to see stored recipes)", err)
}
