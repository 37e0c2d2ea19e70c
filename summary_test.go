package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migration-summary.json")

	if err := writeSummary(path, &Summary{TotalPosts: 3}); err != nil {
		t.Fatalf("writeSummary() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading summary file: %v", err)
	}

	if !strings.Contains(string(data), `"totalPosts"`) {
		t.Errorf("summary file missing totalPosts field: %s", data)
	}

	var got Summary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("summary file is not valid JSON: %v", err)
	}
	if got.TotalPosts != 3 {
		t.Errorf("TotalPosts = %d, want 3", got.TotalPosts)
	}
}

func TestWriteSummaryOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "migration-summary.json")

	if err := writeSummary(path, &Summary{TotalPosts: 1}); err != nil {
		t.Fatalf("writeSummary() error = %v", err)
	}
	if err := writeSummary(path, &Summary{TotalPosts: 2}); err != nil {
		t.Fatalf("writeSummary() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	var got Summary
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("summary file is not valid JSON: %v", err)
	}
	if got.TotalPosts != 2 {
		t.Errorf("TotalPosts = %d, want 2 after overwrite", got.TotalPosts)
	}
}

func TestWriteSummaryUnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "migration-summary.json")
	if err := writeSummary(path, &Summary{}); err == nil {
		t.Fatal("writeSummary() expected error for unwritable path")
	}
}
