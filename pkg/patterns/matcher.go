package patterns

import (
	"fmt"
	"strings"

	"github.com/gnana997/brandlint/pkg/scanner"
)

// Penalty points subtracted from the 100-point baseline per detected
// signature.
const (
	genericColorPenalty = 15
	genericFontPenalty  = 10
	blandPalettePenalty = 10
)

// Analyze scans raw text and classifies the extracted values. See
// AnalyzeScan for the scoring model.
func Analyze(text string) *PatternReport {
	sr := scanner.ScanCSS(text)
	return AnalyzeScan(sr)
}

// AnalyzeScan classifies a ScanResult against the generic reference
// sets. The model is purely subtractive and deterministic: the same
// scan always yields the same score and issue list. Evaluation order
// is fixed — colors, then fonts, then the palette-size check.
func AnalyzeScan(sr scanner.ScanResult) *PatternReport {
	report := &PatternReport{Score: 100}

	// Repeated generic colors each emit their own issue and penalty.
	distinctiveColors := 0
	for _, color := range sr.Colors {
		if IsGenericColor(color) {
			report.Issues = append(report.Issues, Issue{
				Kind:           IssueGenericColor,
				Severity:       SeverityHigh,
				Description:    fmt.Sprintf("%s is a stock framework color seen across countless AI-generated designs", color),
				OffendingValue: color,
				Suggestion:     "Replace with a brand-specific color drawn from your differentiation strategy",
			})
			report.Score -= genericColorPenalty
		} else {
			distinctiveColors++
		}
	}

	var distinctiveFonts []string
	for _, font := range sr.Fonts {
		if ref, ok := MatchGenericFont(font); ok {
			report.Issues = append(report.Issues, Issue{
				Kind:           IssueGenericFont,
				Severity:       SeverityMedium,
				Description:    fmt.Sprintf("%q matches the default-stack font %q", font, ref),
				OffendingValue: font,
				Suggestion:     "Pick a display and body pairing with more character",
			})
			report.Score -= genericFontPenalty
		} else {
			distinctiveFonts = append(distinctiveFonts, font)
		}
	}

	if len(sr.Colors) >= 1 && len(sr.Colors) <= 2 {
		report.Issues = append(report.Issues, Issue{
			Kind:           IssueBlandPalette,
			Severity:       SeverityMedium,
			Description:    fmt.Sprintf("only %d color value(s) found — the palette has no depth", len(sr.Colors)),
			OffendingValue: strings.Join(sr.Colors, ", "),
			Suggestion:     "A brand palette needs at least primary, secondary and accent roles",
		})
		report.Score -= blandPalettePenalty
	}

	if distinctiveColors > 0 {
		report.Strengths = append(report.Strengths,
			fmt.Sprintf("%d color(s) outside the generic framework set", distinctiveColors))
	}
	if len(distinctiveFonts) > 0 {
		report.Strengths = append(report.Strengths,
			fmt.Sprintf("distinctive fonts: %s", strings.Join(distinctiveFonts, ", ")))
	}

	// The score starts at 100 and only decreases, so only the lower
	// bound needs clamping.
	if report.Score < 0 {
		report.Score = 0
	}

	return report
}
