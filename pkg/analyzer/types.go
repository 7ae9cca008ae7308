package analyzer

import (
	"github.com/gnana997/brandlint/pkg/patterns"
	"github.com/gnana997/brandlint/pkg/tokens"
)

// Fixed recommendation strings. The three checks are independent —
// all may fire for the same report.
const (
	RecommendGenericColors = "Replace stock framework colors with a brand-specific palette"
	RecommendGenericFonts  = "Swap default-stack fonts for a typography pairing with character"
	RecommendRegenerate    = "Uniqueness score is below 60 — regenerate tokens with a stronger differentiation brief"
)

// scoreFloor is the recommendation threshold; scores under it trigger
// RecommendRegenerate.
const scoreFloor = 60

// defaultScore is reported when no CSS/SCSS file was scanned. It
// deliberately differs from the 100-point clean baseline: it signals
// "unknown", not "clean".
const defaultScore = 50

// ProjectReport aggregates per-file scan and pattern results for a
// whole project.
type ProjectReport struct {
	// CurrentScore is the rounded arithmetic mean of per-CSS-file
	// pattern scores, or defaultScore when none were scanned.
	CurrentScore int `json:"current_score"`
	// Issues concatenates all per-file issues in file order.
	Issues []patterns.Issue `json:"issues"`
	// Recommendations derived from the accumulated issues and score.
	Recommendations []string `json:"recommendations"`
	// ExtractedTokens merges colors (synthesized color-<n> keys plus
	// Tailwind names, later write wins) and fonts (first-occurrence
	// dedup) across files.
	ExtractedTokens *tokens.Extracted `json:"-"`
	// FileScores maps each scanned CSS/SCSS file to its pattern score.
	FileScores map[string]int `json:"file_scores,omitempty"`

	Stats AnalyzeStats `json:"stats"`
}

// AnalyzeStats tracks analysis volume and cache behavior.
type AnalyzeStats struct {
	FilesAnalyzed int   `json:"files_analyzed"`
	CSSFiles      int   `json:"css_files"`
	TailwindFiles int   `json:"tailwind_files"`
	CacheHits     int   `json:"cache_hits"`
	DurationMs    int64 `json:"duration_ms"`
}
