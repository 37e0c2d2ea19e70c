package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsFallback(t *testing.T) {
	tempDir := t.TempDir()

	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tempDir)

	settings, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if settings.UntitledTitle != "Untitled" {
		t.Errorf("UntitledTitle = %q, want %q", settings.UntitledTitle, "Untitled")
	}
	if settings.SummaryFile != "migration-summary.json" {
		t.Errorf("SummaryFile = %q, want %q", settings.SummaryFile, "migration-summary.json")
	}
}

func TestLoadSettingsFromFile(t *testing.T) {
	tempDir := t.TempDir()

	oldWd, _ := os.Getwd()
	defer os.Chdir(oldWd)
	os.Chdir(tempDir)

	os.MkdirAll(defaultConfigDir, 0755)
	content := "untitled_title: Sans titre\nsummary_file: report.json\n"
	os.WriteFile(getConfigPath("settings.yaml"), []byte(content), 0644)

	settings, err := loadSettings()
	if err != nil {
		t.Fatalf("loadSettings() error = %v", err)
	}
	if settings.UntitledTitle != "Sans titre" {
		t.Errorf("UntitledTitle = %q, want %q", settings.UntitledTitle, "Sans titre")
	}
	if settings.SummaryFile != "report.json" {
		t.Errorf("SummaryFile = %q, want %q", settings.SummaryFile, "report.json")
	}
}

func TestLoadSettingsRequired(t *testing.T) {
	if _, err := loadSettingsRequired(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("loadSettingsRequired() expected error for missing file")
	}

	path := filepath.Join(t.TempDir(), "settings.yaml")
	os.WriteFile(path, []byte("summary_file: s.json\n"), 0644)

	settings, err := loadSettingsRequired(path)
	if err != nil {
		t.Fatalf("loadSettingsRequired() error = %v", err)
	}
	if settings.SummaryFile != "s.json" {
		t.Errorf("SummaryFile = %q, want %q", settings.SummaryFile, "s.json")
	}
	// Unset fields keep their defaults.
	if settings.UntitledTitle != "Untitled" {
		t.Errorf("UntitledTitle = %q, want default", settings.UntitledTitle)
	}
}

func TestParseSettingsInvalidYAML(t *testing.T) {
	if _, err := parseSettings([]byte("untitled_title: [unclosed")); err == nil {
		t.Fatal("parseSettings() expected error for invalid YAML")
	}
}
