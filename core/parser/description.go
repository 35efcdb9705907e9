package parser

import (
	"regexp"
	"strings"
)

// SummaryLength is the rune limit applied to each description field in the
// summary view.
const SummaryLength = 150

var (
	descriptionHeading = regexp.MustCompile(`(?i)\*\*(?:The\s+)?(Problem|Solution|Why\s+This\s+Matters)[:\s]*\*\*`)
	blankLine          = regexp.MustCompile(`\n\s*\n`)
)

// Description holds the three free-text parts of a "Problem & Solution" section.
type Description struct {
	Problem  string `json:"problem"`
	Solution string `json:"solution"`
	Why      string `json:"why"`
}

// ParseDescription splits a "Problem & Solution" section into its parts.
//
// When at least two bold sub-headings (**Problem**, **The Solution:**,
// **Why This Matters**, ...) are present the text between them is assigned to
// the matching field; a repeated sub-heading overrides the earlier one.
// Otherwise the first three blank-line separated paragraphs are used in order.
// Unless full is set every field is truncated to SummaryLength.
func ParseDescription(text string, full bool) Description {
	var d Description
	if text == "" {
		return d
	}

	finish := func(s string) string {
		s = StripMarkdown(s)
		if full {
			return s
		}
		return Truncate(s, SummaryLength)
	}

	matches := descriptionHeading.FindAllStringSubmatchIndex(text, -1)
	if len(matches) >= 2 {
		for i, m := range matches {
			end := len(text)
			if i+1 < len(matches) {
				end = matches[i+1][0]
			}
			content := finish(text[m[1]:end])
			switch label := strings.ToLower(text[m[2]:m[3]]); label {
			case "problem":
				d.Problem = content
			case "solution":
				d.Solution = content
			default:
				d.Why = content
			}
		}
		return d
	}

	var paragraphs []string
	for _, p := range blankLine.Split(text, -1) {
		if strings.TrimSpace(p) != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	fields := []*string{&d.Problem, &d.Solution, &d.Why}
	for i, p := range paragraphs {
		if i >= len(fields) {
			break
		}
		*fields[i] = finish(p)
	}
	return d
}
