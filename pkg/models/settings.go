package models

// Settings represents the application configuration
type Settings struct {
	Export ExportSettings `yaml:"export"`
	UI     UISettings     `yaml:"ui"`
}

// ExportSettings controls recipe export behavior
type ExportSettings struct {
	Path         string `yaml:"path"`
	ShowComments bool   `yaml:"show_comments"`
	ShowTags     bool   `yaml:"show_tags"`
}

// UISettings controls UI preferences
type UISettings struct {
	ShowPreview  bool   `yaml:"show_preview"`
	DefaultsSort string `yaml:"default_sort"` // "name" or "updated"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Export: ExportSettings{
			Path:         "./",
			ShowComments: true,
			ShowTags:     true,
		},
		UI: UISettings{
			ShowPreview:  true,
			DefaultsSort: "updated",
		},
	}
}
