package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/mmcdole/gofeed/atom"
)

var debugEnabled bool

// SetDebugMode enables or disables debug logging
func SetDebugMode(enabled bool) {
	debugEnabled = enabled
}

func debugLog(format string, args ...interface{}) {
	if debugEnabled {
		log.Printf("[DEBUG] "+format, args...)
	}
}

// Importer converts a blog export into Markdown files.
type Importer struct {
	converter *md.Converter
	settings  *Settings
}

// NewImporter creates an importer with the given settings
func NewImporter(settings *Settings) *Importer {
	return &Importer{
		converter: newMarkdownConverter(),
		settings:  settings,
	}
}

// Import reads the export at inputPath and writes one Markdown file per post
// into outputDir. It returns the run summary together with per-post results.
// Feed-level failures (unreadable file, malformed export) are fatal; per-post
// failures are recorded and the run continues.
func (im *Importer) Import(inputPath, outputDir string) (*Summary, []ImportResult, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, nil, fmt.Errorf("reading export file: %w", err)
	}

	feed, err := parseExport(data)
	if err != nil {
		return nil, nil, err
	}

	posts := collectPosts(feed, im.settings.UntitledTitle)
	log.Printf("Found %d posts in %d feed entries", len(posts), len(feed.Entries))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		// Individual writes will fail and be reported per post.
		log.Printf("Warning: creating output directory %s: %v", outputDir, err)
	}

	summary := &Summary{}
	results := make([]ImportResult, 0, len(posts))

	for i, post := range posts {
		log.Printf("[%d/%d] Processing: %s", i+1, len(posts), post.Title)
		result := im.importPost(post, outputDir)
		results = append(results, result)

		switch result.Status {
		case StatusSuccess:
			summary.TotalPosts++
			log.Printf("✓ Written: %s", result.Filename)
		case StatusSkipped:
			log.Printf("✗ Skipped %q: %v", post.Title, result.Error)
		default:
			log.Printf("✗ Failed %q: %v", post.Title, result.Error)
		}
	}

	return summary, results, nil
}

// collectPosts filters feed entries down to blog posts, in feed order.
func collectPosts(feed *atom.Feed, untitled string) []Post {
	var posts []Post
	for _, entry := range feed.Entries {
		if entry == nil {
			continue
		}
		if !isPost(entry) {
			debugLog("skipping entry %s: not a post", entry.ID)
			continue
		}
		posts = append(posts, newPost(entry, untitled))
	}
	return posts
}

// importPost renders and writes a single post. Errors never escape: they are
// folded into the returned result.
func (im *Importer) importPost(post Post, outputDir string) ImportResult {
	name := sanitizeFilename(post.Title)
	if !usableFilename(name) {
		return ImportResult{
			Title:  post.Title,
			Status: StatusSkipped,
			Error:  fmt.Errorf("title %q sanitizes to an unusable filename", post.Title),
		}
	}

	body := renderMarkdown(im.converter, post.HTML)
	content := composeDocument(post, body)

	// Colliding filenames overwrite: last writer wins.
	filename := filepath.Join(outputDir, name+".md")
	if err := os.WriteFile(filename, []byte(content), 0644); err != nil {
		return ImportResult{
			Title:  post.Title,
			Status: StatusError,
			Error:  fmt.Errorf("writing %s: %w", filename, err),
		}
	}

	return ImportResult{Title: post.Title, Status: StatusSuccess, Filename: filename}
}

// composeDocument builds the front-matter block, a blank line, then the
// Markdown body. Single quotes in quoted values are doubled.
func composeDocument(post Post, body string) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: '%s'\n", escapeSingleQuotes(post.Title))
	fmt.Fprintf(&b, "date: %s\n", post.Published)
	fmt.Fprintf(&b, "draft: %t\n", post.Draft)
	if len(post.Tags) > 0 {
		quoted := make([]string, len(post.Tags))
		for i, tag := range post.Tags {
			quoted[i] = "'" + escapeSingleQuotes(tag) + "'"
		}
		fmt.Fprintf(&b, "tags: [%s]\n", strings.Join(quoted, ", "))
	}
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String()
}

func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
