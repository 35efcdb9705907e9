package ideas

import (
	"cmp"
	"slices"

	"github.com/notbuiltyet/build-ideas/core/parser"
	"github.com/notbuiltyet/build-ideas/core/utils"
)

// ExtractMoats returns the checked, known moats of a "Competitive Moats"
// section in order of appearance. It never returns nil.
func ExtractMoats(text string) []Moat {
	names := parser.ExtractCheckedLabels(text, isKnownMoat)
	moats := make([]Moat, 0, len(names))
	for _, name := range names {
		class, _ := MoatClass(name)
		moats = append(moats, Moat{Name: name, CSSClass: class})
	}
	return moats
}

// FromIssue maps a vetted issue to its Idea. Missing or malformed template
// sections fall back to defaults; it never fails.
func FromIssue(issue utils.Issue) Idea {
	s := parser.SplitSections(issue.Body)
	category := parser.Field(s, SectionCategory, DefaultCategory)
	problemSolution := s.Get(SectionProblemSolution)

	return Idea{
		ID:              issue.Number,
		URL:             issue.HTMLURL,
		Title:           parser.Field(s, SectionIdeaTitle, issue.Title),
		Category:        category,
		CategoryClass:   CategoryClass(category),
		Description:     parser.ParseDescription(problemSolution, false),
		FullDescription: parser.ParseDescription(problemSolution, true),
		Improvement:     parser.Field(s, SectionImprovement, ""),
		Moats:           ExtractMoats(s.Get(SectionMoats)),
		Viability:       parser.ExtractViability(s.Get(SectionViability)),
		Defensibility:   parser.Field(s, SectionDefensibility, DefaultDefensibility),
		Votes:           issue.Reactions.ThumbsUp(),
	}
}

// FromIssues maps issues in order. It never returns nil.
func FromIssues(issues []utils.Issue) []Idea {
	out := make([]Idea, 0, len(issues))
	for _, issue := range issues {
		out = append(out, FromIssue(issue))
	}
	return out
}

// SortByVotes orders ideas by votes, highest first, keeping fetch order
// among equal counts.
func SortByVotes(ideas []Idea) {
	slices.SortStableFunc(ideas, func(a, b Idea) int {
		return cmp.Compare(b.Votes, a.Votes)
	})
}

// NewDocument assembles the published payload from the vetted issues and the
// label counts. Ideas are sorted with SortByVotes.
func NewDocument(vetted []utils.Issue, beingBuilt, launched int) *Document {
	list := FromIssues(vetted)
	SortByVotes(list)
	return &Document{
		Stats: Stats{
			Vetted:     len(vetted),
			BeingBuilt: beingBuilt,
			Launched:   launched,
		},
		Ideas: list,
	}
}
