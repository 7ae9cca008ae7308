// Package patterns classifies extracted design values against a fixed
// reference set of generic signatures and scores the result for
// distinctiveness. The score is a heuristic lint, not a proof of
// originality.
package patterns

// IssueKind identifies the pattern rule that produced an issue.
type IssueKind string

const (
	IssueGenericColor IssueKind = "generic-color"
	IssueGenericFont  IssueKind = "generic-font"
	IssueLowContrast  IssueKind = "low-contrast"
	IssueBlandPalette IssueKind = "bland-palette"
)

// Severity grades how strongly an issue marks the design as generic.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Issue is one detected generic-design signature. Issues are created
// by the matcher and consumed read-only.
type Issue struct {
	Kind           IssueKind `json:"kind"`
	Severity       Severity  `json:"severity"`
	Description    string    `json:"description"`
	OffendingValue string    `json:"offending_value"`
	Suggestion     string    `json:"suggestion"`
}

// PatternReport is the outcome of one pattern analysis. It is not
// mutated after construction.
type PatternReport struct {
	// Score is the 0-100 uniqueness score, clamped at 0.
	Score int `json:"score"`
	// Issues in matcher-emission order: colors, fonts, palette size.
	Issues []Issue `json:"issues"`
	// Strengths are human-readable observations about distinctive
	// values.
	Strengths []string `json:"strengths"`
}
