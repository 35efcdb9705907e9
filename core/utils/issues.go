package utils

import (
	"encoding/json"
)

// Issue is the subset of a GitHub issue used to build ideas.
type Issue struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	HTMLURL   string    `json:"html_url"`
	Body      string    `json:"body"`
	Reactions Reactions `json:"reactions"`
}

// Reactions maps a reaction name ("+1", "heart", ...) to its count.
type Reactions map[string]int

// UnmarshalJSON keeps only the integer members of the GitHub reactions
// rollup, which also carries a "url" string.
func (r *Reactions) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil {
		*r = nil
		return nil
	}
	out := make(Reactions, len(raw))
	for k, v := range raw {
		var n int
		if err := json.Unmarshal(v, &n); err != nil {
			continue
		}
		out[k] = n
	}
	*r = out
	return nil
}

// ThumbsUp returns the "+1" count, or 0 when absent.
func (r Reactions) ThumbsUp() int {
	return r["+1"]
}
