package main

import (
	"log"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// newMarkdownConverter builds the HTML to Markdown converter used for post
// bodies: fenced code blocks and ATX headings.
func newMarkdownConverter() *md.Converter {
	return md.NewConverter("", true, &md.Options{
		CodeBlockStyle: "fenced",
		HeadingStyle:   "atx",
	})
}

// renderMarkdown converts a post body to Markdown. Conversion is best
// effort: a converter failure yields an empty body, never a failed run.
func renderMarkdown(converter *md.Converter, html string) string {
	if html == "" {
		return ""
	}
	markdown, err := converter.ConvertString(html)
	if err != nil {
		log.Printf("Warning: converting post body to Markdown: %v", err)
		return ""
	}
	return markdown
}
