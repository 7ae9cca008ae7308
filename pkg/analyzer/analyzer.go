// Package analyzer orchestrates scanning, pattern matching and scoring
// across the style files of a project and aggregates the per-file
// results into one report.
package analyzer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"path/filepath"
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/gnana997/brandlint/pkg/patterns"
	"github.com/gnana997/brandlint/pkg/scanner"
	"github.com/gnana997/brandlint/pkg/tokens"
)

// Config controls analyzer behavior.
type Config struct {
	// MaxCachedReports bounds the per-content pattern report cache.
	MaxCachedReports int
	// Excludes are discovery glob patterns; nil means the scanner
	// defaults.
	Excludes []string
}

// DefaultConfig returns the default analyzer configuration.
func DefaultConfig() Config {
	return Config{MaxCachedReports: 512}
}

// Analyzer runs the scan → match → score pipeline over named file
// contents. Pattern analysis is deterministic, so reports are cached
// by content hash; repeated analysis of unchanged files is free.
type Analyzer struct {
	cfg   Config
	cache *lru.Cache[string, *patterns.PatternReport]
	log   *slog.Logger
}

// New creates an analyzer. A nil logger falls back to slog.Default().
func New(cfg Config, logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxCachedReports <= 0 {
		cfg.MaxCachedReports = DefaultConfig().MaxCachedReports
	}
	cache, err := lru.New[string, *patterns.PatternReport](cfg.MaxCachedReports)
	if err != nil {
		// Only reachable with a non-positive size, which is guarded
		// above.
		panic(fmt.Sprintf("failed to create report cache: %v", err))
	}
	return &Analyzer{cfg: cfg, cache: cache, log: logger}
}

// AnalyzeFiles produces a ProjectReport from a mapping of file name to
// file text. Files are classified by name: .css/.scss take the CSS
// path, names containing "tailwind.config" take the Tailwind path,
// anything else is ignored. File names are processed in sorted order
// so synthesized color keys are stable.
func (a *Analyzer) AnalyzeFiles(files map[string]string) *ProjectReport {
	start := time.Now()

	report := &ProjectReport{
		ExtractedTokens: tokens.NewExtracted(),
		FileScores:      make(map[string]int),
	}

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	fontSeen := make(map[string]bool)
	addFont := func(font string) {
		if !fontSeen[font] {
			fontSeen[font] = true
			report.ExtractedTokens.Fonts = append(report.ExtractedTokens.Fonts, font)
		}
	}

	colorIndex := 0
	var scoreSum, scored int

	for _, name := range names {
		text := files[name]

		switch {
		case scanner.IsStyleFile(name):
			sr := scanner.ScanCSS(text)
			for _, color := range sr.Colors {
				report.ExtractedTokens.Colors.Set(fmt.Sprintf("color-%d", colorIndex), color)
				colorIndex++
			}
			for _, font := range sr.Fonts {
				addFont(font)
			}

			pr, hit := a.analyzeText(text)
			if hit {
				report.Stats.CacheHits++
			}
			report.Issues = append(report.Issues, pr.Issues...)
			report.FileScores[name] = pr.Score
			scoreSum += pr.Score
			scored++
			report.Stats.CSSFiles++

		case scanner.IsTailwindConfig(filepath.Base(name)):
			tw := scanner.ScanTailwindConfig(text)
			for pair := tw.Colors.Oldest(); pair != nil; pair = pair.Next() {
				report.ExtractedTokens.Colors.Set(pair.Key, pair.Value)
			}
			for _, font := range tw.Fonts {
				addFont(font)
			}
			report.Stats.TailwindFiles++

		default:
			continue
		}
		report.Stats.FilesAnalyzed++
	}

	if scored > 0 {
		report.CurrentScore = int(math.Round(float64(scoreSum) / float64(scored)))
	} else {
		report.CurrentScore = defaultScore
	}

	report.Recommendations = recommend(report)
	report.Stats.DurationMs = time.Since(start).Milliseconds()

	a.log.Info("project analysis complete",
		"files", report.Stats.FilesAnalyzed,
		"score", report.CurrentScore,
		"issues", len(report.Issues),
		"cache_hits", report.Stats.CacheHits,
		"ms", report.Stats.DurationMs)

	return report
}

// AnalyzeDir discovers style files under root, loads them, and runs
// AnalyzeFiles over the contents keyed by root-relative path.
func (a *Analyzer) AnalyzeDir(root string) (*ProjectReport, error) {
	paths, err := scanner.DiscoverStyleFiles(root, a.cfg.Excludes)
	if err != nil {
		return nil, fmt.Errorf("discovery failed: %w", err)
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	files := make(map[string]string, len(paths))
	for _, path := range paths {
		text, err := readStyleFile(path)
		if err != nil {
			a.log.Warn("skipping unreadable file", "path", path, "error", err)
			continue
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			rel = path
		}
		files[filepath.ToSlash(rel)] = text
	}

	return a.AnalyzeFiles(files), nil
}

// analyzeText returns the pattern report for text, via the
// content-hash cache, and whether it was served from cache.
func (a *Analyzer) analyzeText(text string) (*patterns.PatternReport, bool) {
	key := contentHash(text)
	if pr, ok := a.cache.Get(key); ok {
		return pr, true
	}
	pr := patterns.Analyze(text)
	a.cache.Add(key, pr)
	return pr, false
}

// Invalidate drops the cached report for the given content, if any.
func (a *Analyzer) Invalidate(text string) {
	a.cache.Remove(contentHash(text))
}

func contentHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// recommend derives the recommendation list from accumulated issues
// and the project score.
func recommend(report *ProjectReport) []string {
	var recs []string

	hasKind := func(kind patterns.IssueKind) bool {
		for _, issue := range report.Issues {
			if issue.Kind == kind {
				return true
			}
		}
		return false
	}

	if hasKind(patterns.IssueGenericColor) {
		recs = append(recs, RecommendGenericColors)
	}
	if hasKind(patterns.IssueGenericFont) {
		recs = append(recs, RecommendGenericFonts)
	}
	if report.CurrentScore < scoreFloor {
		recs = append(recs, RecommendRegenerate)
	}

	return recs
}
