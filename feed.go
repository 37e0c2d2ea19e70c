package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/gofeed/atom"
	ext "github.com/mmcdole/gofeed/extensions"
)

// postKindTerm marks an entry as a blog post in Blogger exports. It is
// feed metadata, not a user tag.
const postKindTerm = "http://schemas.google.com/blogger/2008/kind#post"

var (
	// ErrMalformedExport indicates the export could not be parsed as an Atom feed.
	ErrMalformedExport = errors.New("export is not a well-formed feed")
	// ErrUnrecognizedExport indicates a well-formed document that carries no entries.
	ErrUnrecognizedExport = errors.New("export has no feed entries")
)

// parseExport parses the raw export bytes into a navigable Atom feed.
func parseExport(data []byte) (*atom.Feed, error) {
	parser := &atom.Parser{}
	feed, err := parser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedExport, err)
	}
	if len(feed.Entries) == 0 {
		return nil, ErrUnrecognizedExport
	}
	return feed, nil
}

// isPost reports whether an entry is top-level blog content: its ID carries
// the post marker and it does not reply to another entry.
func isPost(e *atom.Entry) bool {
	if !strings.Contains(e.ID, ".post-") {
		return false
	}
	return !isComment(e)
}

// isComment reports whether the entry is a reply to another entry.
func isComment(e *atom.Entry) bool {
	_, ok := extensionElement(e, "thr", "in-reply-to")
	return ok
}

// postID returns the trailing hyphen segment of the entry ID, the stable
// numeric identifier Blogger assigns to each post.
func postID(e *atom.Entry) string {
	parts := strings.Split(e.ID, "-")
	return parts[len(parts)-1]
}

// isDraft reads the app:control/app:draft flag; absence means published.
func isDraft(e *atom.Entry) bool {
	control, ok := extensionElement(e, "app", "control")
	if !ok {
		return false
	}
	drafts := control.Children["draft"]
	if len(drafts) == 0 {
		return false
	}
	return strings.TrimSpace(drafts[0].Value) == "yes"
}

// entryTags returns the entry's category terms in document order, duplicates
// preserved, skipping the reserved kind marker.
func entryTags(e *atom.Entry) []string {
	var tags []string
	for _, c := range e.Categories {
		if c == nil || c.Term == postKindTerm {
			continue
		}
		tags = append(tags, c.Term)
	}
	return tags
}

// entryHTML returns the entry body, empty when the entry has no content.
func entryHTML(e *atom.Entry) string {
	if e.Content == nil {
		return ""
	}
	return e.Content.Value
}

// newPost converts a classified entry into a Post, applying fallbacks for
// the optional fields.
func newPost(e *atom.Entry, untitled string) Post {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		title = untitled
	}
	return Post{
		ID:        postID(e),
		Title:     title,
		Published: e.Published,
		Draft:     isDraft(e),
		Tags:      entryTags(e),
		HTML:      entryHTML(e),
	}
}

// extensionElement looks up the first extension element for a namespace
// prefix and element name.
func extensionElement(e *atom.Entry, prefix, name string) (ext.Extension, bool) {
	elems := e.Extensions[prefix][name]
	if len(elems) == 0 {
		return ext.Extension{}, false
	}
	return elems[0], true
}
