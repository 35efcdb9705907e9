// Package parser extracts structured fields from the markdown bodies produced
// by the idea submission issue template.
package parser

import (
	"regexp"
	"strings"
)

// Sections maps a trimmed "### " heading to the trimmed text below it.
type Sections map[string]string

var sectionMarker = regexp.MustCompile(`(?m)^### `)

// SplitSections splits body at every line starting with "### ".
// A segment is dropped when its heading line has no terminating newline or
// when the heading text is empty. Repeated headings keep the last segment.
func SplitSections(body string) Sections {
	sections := Sections{}
	for _, part := range sectionMarker.Split(body, -1) {
		if part == "" {
			continue
		}
		heading, content, ok := strings.Cut(part, "\n")
		if !ok {
			continue
		}
		heading = strings.TrimSpace(heading)
		if heading == "" {
			continue
		}
		sections[heading] = strings.TrimSpace(content)
	}
	return sections
}

// Get returns the section text for heading, or "" when absent.
func (s Sections) Get(heading string) string {
	if s == nil {
		return ""
	}
	return s[heading]
}

// FirstLine returns text up to the first newline, trimmed.
func FirstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}

// Field returns the first line of the named section. An absent or empty
// section yields the first line of fallback instead.
func Field(s Sections, heading, fallback string) string {
	text := s.Get(heading)
	if text == "" {
		text = fallback
	}
	return FirstLine(text)
}
