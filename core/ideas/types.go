// Package ideas turns vetted GitHub issues into the records published in
// ideas.json.
package ideas

import "github.com/notbuiltyet/build-ideas/core/parser"

// Moat is a competitive advantage ticked in the issue template.
type Moat struct {
	Name     string `json:"name"`
	CSSClass string `json:"cssClass"`
}

// Description is the problem/solution/why triple of an idea.
type Description = parser.Description

// Idea is one published idea. Field order is the JSON key order.
type Idea struct {
	ID              int         `json:"id"`
	URL             string      `json:"url"`
	Title           string      `json:"title"`
	Category        string      `json:"category"`
	CategoryClass   string      `json:"categoryClass"`
	Description     Description `json:"description"`
	FullDescription Description `json:"fullDescription"`
	Improvement     string      `json:"improvement"`
	Moats           []Moat      `json:"moats"`
	Viability       int         `json:"viability"`
	Defensibility   string      `json:"defensibility"`
	Votes           int         `json:"votes"`
}

// Stats counts issues per pipeline label.
type Stats struct {
	Vetted     int `json:"vetted"`
	BeingBuilt int `json:"beingBuilt"`
	Launched   int `json:"launched"`
}

// Document is the full ideas.json payload.
type Document struct {
	Stats Stats  `json:"stats"`
	Ideas []Idea `json:"ideas"`
}
