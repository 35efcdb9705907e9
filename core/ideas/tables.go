package ideas

// Pipeline labels used on the tracker.
const (
	LabelVetted     = "vetted"
	LabelBeingBuilt = "being-built"
	LabelLaunched   = "launched"
)

// Template section headings.
const (
	SectionCategory        = "Category"
	SectionIdeaTitle       = "Idea Title"
	SectionProblemSolution = "Problem & Solution"
	SectionImprovement     = "Estimated Improvement"
	SectionMoats           = "Competitive Moats"
	SectionViability       = "Viability Estimate"
	SectionDefensibility   = "Overall Defensibility"
)

const (
	DefaultCategory      = "Other"
	DefaultCategoryClass = "tag-other"
	DefaultDefensibility = "Medium"
)

var categoryClasses = map[string]string{
	"Healthcare":     "tag-health",
	"Agriculture":    "tag-agri",
	"Education":      "tag-edu",
	"Infrastructure": "tag-infra",
	"Finance":        "tag-finance",
	"Environment":    "tag-env",
	"Logistics":      "tag-logistics",
	"Other":          "tag-other",
}

var moatClasses = map[string]string{
	"Data Moat":         "moat-data",
	"Network Effects":   "moat-network",
	"Regulatory":        "moat-regulatory",
	"Technical":         "moat-technical",
	"Domain Expertise":  "moat-domain",
	"First Mover":       "moat-first-mover",
	"Integration Depth": "moat-integration",
}

// CategoryClass returns the style class of category, DefaultCategoryClass
// for unknown ones.
func CategoryClass(category string) string {
	if c, ok := categoryClasses[category]; ok {
		return c
	}
	return DefaultCategoryClass
}

// MoatClass returns the style class of a known moat.
func MoatClass(name string) (string, bool) {
	c, ok := moatClasses[name]
	return c, ok
}

func isKnownMoat(name string) bool {
	_, ok := moatClasses[name]
	return ok
}
