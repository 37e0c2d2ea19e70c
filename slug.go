package main

import (
	"regexp"
	"strings"
)

var (
	illegalFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	hyphenRuns           = regexp.MustCompile(`-{2,}`)
)

// sanitizeFilename converts a post title into a filesystem-safe base
// filename: illegal characters stripped, hyphen runs collapsed, surrounding
// whitespace trimmed, lowercased.
func sanitizeFilename(title string) string {
	name := illegalFilenameChars.ReplaceAllString(title, "")
	name = hyphenRuns.ReplaceAllString(name, "-")
	name = strings.TrimSpace(name)
	return strings.ToLower(name)
}

// usableFilename reports whether a sanitized name can actually name a file.
// Titles made entirely of illegal characters sanitize to "" or "-".
func usableFilename(name string) bool {
	return name != "" && name != "-"
}
