package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigDir   = ".blogport"
	defaultUntitled    = "Untitled"
	defaultSummaryFile = "migration-summary.json"
)

// Settings represents the YAML configuration structure
type Settings struct {
	UntitledTitle string `yaml:"untitled_title"`
	SummaryFile   string `yaml:"summary_file"`
}

// defaultSettings returns the built-in settings used when no settings file exists.
func defaultSettings() *Settings {
	return &Settings{
		UntitledTitle: defaultUntitled,
		SummaryFile:   defaultSummaryFile,
	}
}

// loadSettings loads settings from the default location, falling back to
// built-in defaults when the file is missing.
func loadSettings() (*Settings, error) {
	data, err := os.ReadFile(getConfigPath("settings.yaml"))
	if err != nil {
		return defaultSettings(), nil
	}
	return parseSettings(data)
}

// loadSettingsRequired loads settings from an explicit path, failing if the
// file doesn't exist.
func loadSettingsRequired(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}
	return parseSettings(data)
}

func parseSettings(data []byte) (*Settings, error) {
	settings := defaultSettings()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}
	if settings.UntitledTitle == "" {
		settings.UntitledTitle = defaultUntitled
	}
	if settings.SummaryFile == "" {
		settings.SummaryFile = defaultSummaryFile
	}
	return settings, nil
}

// getConfigPath returns the path to a config file in the .blogport directory
func getConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}
