package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	settingsPath string
	summaryFile  string
	debugMode    bool
)

var rootCmd = &cobra.Command{
	Use:   "blogport <export-file> <output-dir> [mode]",
	Short: "Convert a blog XML export into Markdown files",
	Long: `blogport converts a Blogger-style XML export into one Markdown file
per post, each prefixed with a front-matter block, and writes a migration
summary next to the binary.

The optional third argument is reserved and currently ignored.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		inputPath := args[0]
		outputDir := args[1]
		// args[2], when present, is the reserved mode selector.

		var settings *Settings
		var err error
		if settingsPath != "" {
			settings, err = loadSettingsRequired(settingsPath)
			if err != nil {
				log.Fatalf("Settings file missing: %v", err)
			}
		} else {
			settings, err = loadSettings()
			if err != nil {
				log.Fatalf("Failed to load settings: %v", err)
			}
		}

		if debugMode {
			SetDebugMode(true)
		}

		importer := NewImporter(settings)
		summary, results, err := importer.Import(inputPath, outputDir)
		if err != nil {
			log.Fatalf("Import failed: %v", err)
		}

		path := summaryFile
		if path == "" {
			path = defaultSummaryPath(settings.SummaryFile)
		}
		if err := writeSummary(path, summary); err != nil {
			log.Printf("Warning: %v", err)
		}

		log.Printf("Done: %d posts written, %d skipped or failed",
			summary.TotalPosts, len(results)-summary.TotalPosts)
	},
}

func init() {
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "Path to settings file (default .blogport/settings.yaml)")
	rootCmd.Flags().StringVar(&summaryFile, "summary-file", "", "Path for the migration summary (default: next to the binary)")
	rootCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
