package parser

import (
	"regexp"
	"strings"
)

var (
	boldEmphasis   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicEmphasis = regexp.MustCompile(`\*([^*]+)\*`)
	inlineLink     = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headingPrefix  = regexp.MustCompile(`(?m)^#+\s+`)
	bulletPrefix   = regexp.MustCompile(`(?m)^\s*[-*]\s+`)
	numberedPrefix = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	whitespaceRun  = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
	trailingWord   = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+[^\s\v\p{Z}\x{FEFF}]*$`)
)

// Ellipsis is appended to text shortened by Truncate.
const Ellipsis = "..."

// StripMarkdown reduces a markdown fragment to a single line of plain text.
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}
	clean := boldEmphasis.ReplaceAllString(text, "${1}")
	clean = italicEmphasis.ReplaceAllString(clean, "${1}")
	clean = inlineLink.ReplaceAllString(clean, "${1}")
	clean = headingPrefix.ReplaceAllString(clean, "")
	clean = bulletPrefix.ReplaceAllString(clean, "")
	clean = numberedPrefix.ReplaceAllString(clean, "")
	clean = whitespaceRun.ReplaceAllString(clean, " ")
	return strings.TrimSpace(clean)
}

// Truncate shortens text to at most maxLen runes plus Ellipsis. The cut is
// moved back to the last whitespace (Unicode spaces included) so no word is
// split, unless the kept prefix contains no whitespace at all.
func Truncate(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	cut := string(runes[:maxLen])
	return trailingWord.ReplaceAllString(cut, "") + Ellipsis
}
