package files

import (
	"testing"
)

func TestReadSettingsDefaults(t *testing.T) {
	setupProject(t)

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings() error = %v", err)
	}
	if !settings.UI.ShowPreview {
		t.Error("defaults not applied when no settings file exists")
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	setupProject(t)

	settings, _ := ReadSettings()
	settings.UI.ShowPreview = false
	settings.Export.Path = "/tmp/exports"

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings() error = %v", err)
	}

	got, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings() error = %v", err)
	}
	if got.UI.ShowPreview {
		t.Error("ShowPreview not persisted")
	}
	if got.Export.Path != "/tmp/exports" {
		t.Errorf("Export.Path = %q", got.Export.Path)
	}
}
