package parser

import (
	"regexp"
	"strconv"
	"strings"
)

const maxViabilityPct = 100

// percentCeiling bounds parsed percentages so a range sum cannot overflow.
const percentCeiling = int64(1) << 40

var (
	checkedBox    = regexp.MustCompile(`(?i)^\s*-\s*\[x\]\s*(.+)`)
	percentRange  = regexp.MustCompile(`(\d+)\s*-\s*(\d+)%`)
	percentSingle = regexp.MustCompile(`(\d+)%`)
)

// ExtractCheckedLabels returns the labels of checked "- [x]" list items whose
// label satisfies known, in order of appearance. Unchecked items, other lines
// and unknown labels are skipped.
func ExtractCheckedLabels(text string, known func(string) bool) []string {
	if text == "" {
		return nil
	}
	var labels []string
	for _, line := range strings.Split(text, "\n") {
		m := checkedBox.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		label := strings.TrimSpace(m[1])
		if known != nil && !known(label) {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

// ExtractViability reads a success estimate such as "40-60%" or "75%".
// A range yields its average rounded half up. Text without a percentage
// yields 0. The result is clamped to 0..100, oversized numbers included.
func ExtractViability(text string) int {
	if text == "" {
		return 0
	}
	if m := percentRange.FindStringSubmatch(text); m != nil {
		lo, hi := parsePercent(m[1]), parsePercent(m[2])
		return clampPercent((lo + hi + 1) / 2)
	}
	if m := percentSingle.FindStringSubmatch(text); m != nil {
		return clampPercent(parsePercent(m[1]))
	}
	return 0
}

// parsePercent parses a run of digits, saturating at percentCeiling.
func parsePercent(digits string) int64 {
	v, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || v > percentCeiling {
		return percentCeiling
	}
	return v
}

func clampPercent(v int64) int {
	if v < 0 {
		return 0
	}
	if v > maxViabilityPct {
		return maxViabilityPct
	}
	return int(v)
}
