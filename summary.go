package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// defaultSummaryPath places the summary file next to the running binary,
// outside the output directory, so repeated runs against different output
// directories overwrite the same report.
func defaultSummaryPath(filename string) string {
	exe, err := os.Executable()
	if err != nil {
		return filename
	}
	return filepath.Join(filepath.Dir(exe), filename)
}

// writeSummary serializes the migration summary, overwriting any prior report.
func writeSummary(path string, summary *Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("writing summary file: %w", err)
	}
	return nil
}
