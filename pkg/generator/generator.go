package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gnana997/brandlint/pkg/patterns"
	"github.com/gnana997/brandlint/pkg/tokens"
)

// BrandBrief describes the brand being designed for.
type BrandBrief struct {
	Name        string   `json:"name,omitempty"`
	Industry    string   `json:"industry"`
	Personality []string `json:"personality"`
	Competitors []string `json:"competitors"`
	Mood        string   `json:"mood"`
	References  []string `json:"references,omitempty"`
}

// DifferentiationAnalysis is the model's read on how the brand can
// stand apart from its competitors and from generic AI output.
type DifferentiationAnalysis struct {
	DifferentiationStrategy   string   `json:"differentiationStrategy"`
	AvoidPatterns             []string `json:"avoidPatterns"`
	EmbracePatterns           []string `json:"embracePatterns"`
	ColorRecommendations      string   `json:"colorRecommendations"`
	TypographyRecommendations string   `json:"typographyRecommendations"`
	UniquenessScore           int      `json:"uniquenessScore"`
}

// ScoreBreakdown is the model's four-category assessment of a
// generated set.
type ScoreBreakdown struct {
	ColorUniqueness     int    `json:"colorUniqueness"`
	TypographyCharacter int    `json:"typographyCharacter"`
	CompetitorDistance  int    `json:"competitorDistance"`
	Cohesion            int    `json:"cohesion"`
	Overall             int    `json:"overall"`
	Notes               string `json:"notes,omitempty"`
}

// Generator runs the token-generation prompts against a Provider.
type Generator struct {
	provider Provider
	log      *slog.Logger
}

// New creates a generator. A nil logger falls back to slog.Default().
func New(provider Provider, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{provider: provider, log: logger}
}

const systemPrompt = "You are a brand designer who despises generic AI design. " +
	"Respond with a single JSON object and nothing else."

// Differentiate asks the model how the brand should differ from its
// competitors and from stock framework aesthetics.
func (g *Generator) Differentiate(ctx context.Context, brief BrandBrief) (*DifferentiationAnalysis, error) {
	prompt := fmt.Sprintf(`Analyze how a brand can visually differentiate itself.

Industry: %s
Personality: %s
Competitors: %s
Mood: %s
References: %s

Never suggest these overused colors: %s.

Return JSON with keys: differentiationStrategy (string), avoidPatterns
(string array), embracePatterns (string array), colorRecommendations
(string), typographyRecommendations (string), uniquenessScore (0-100).`,
		brief.Industry,
		strings.Join(brief.Personality, ", "),
		strings.Join(brief.Competitors, ", "),
		brief.Mood,
		strings.Join(brief.References, ", "),
		strings.Join(patterns.GenericColors, ", "))

	var analysis DifferentiationAnalysis
	if err := g.complete(ctx, prompt, &analysis); err != nil {
		return nil, err
	}
	return &analysis, nil
}

// paletteResponse is the wire shape of the palette prompt reply.
type paletteResponse struct {
	Colors tokens.ColorRoles `json:"colors"`
}

// GeneratePalette asks for the six-role color palette, steering away
// from the analysis's avoid patterns.
func (g *Generator) GeneratePalette(ctx context.Context, brief BrandBrief, analysis *DifferentiationAnalysis) (*tokens.ColorRoles, error) {
	avoid := strings.Join(patterns.GenericColors, ", ")
	embrace := ""
	if analysis != nil {
		avoid = avoid + "; " + strings.Join(analysis.AvoidPatterns, ", ")
		embrace = strings.Join(analysis.EmbracePatterns, ", ")
	}

	prompt := fmt.Sprintf(`Design a six-role color palette for the %q brand (mood: %s).

Avoid: %s
Embrace: %s

Return JSON: {"colors": {"primary": {"value": "#hex", "rationale": "..."},
"secondary": {...}, "accent": {...}, "background": {...}, "surface": {...},
"text": {...}}}. All six roles are required.`,
		brief.Name, brief.Mood, avoid, embrace)

	var resp paletteResponse
	if err := g.complete(ctx, prompt, &resp); err != nil {
		return nil, err
	}

	set := tokens.TokenSet{Colors: resp.Colors}
	for _, v := range set.RoleValues() {
		if v == "" {
			return nil, fmt.Errorf("model palette is incomplete: all six color roles are required")
		}
	}
	return &resp.Colors, nil
}

// typographyResponse is the wire shape of the typography prompt reply.
type typographyResponse struct {
	Typography tokens.Typography `json:"typography"`
}

// GenerateTypography asks for the display/body pairing.
func (g *Generator) GenerateTypography(ctx context.Context, brief BrandBrief) (*tokens.Typography, error) {
	prompt := fmt.Sprintf(`Pick a display and body font pairing for the %q brand.

Industry: %s
Personality: %s

Do not suggest: %s.

Return JSON: {"typography": {"display": {"family": "...", "weights": [..],
"rationale": "..."}, "body": {...}}}. Both roles are required.`,
		brief.Name, brief.Industry,
		strings.Join(brief.Personality, ", "),
		strings.Join(patterns.GenericFonts, ", "))

	var resp typographyResponse
	if err := g.complete(ctx, prompt, &resp); err != nil {
		return nil, err
	}
	if resp.Typography.Display.Family == "" || resp.Typography.Body.Family == "" {
		return nil, fmt.Errorf("model typography is incomplete: display and body roles are required")
	}
	return &resp.Typography, nil
}

// ScorePalette asks the model to grade a complete set against the
// competitor list.
func (g *Generator) ScorePalette(ctx context.Context, set *tokens.TokenSet, competitors []string) (*ScoreBreakdown, error) {
	setJSON, err := json.Marshal(set)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize token set: %w", err)
	}

	prompt := fmt.Sprintf(`Score this brand token set for distinctiveness.

Token set: %s
Competitors: %s

Return JSON with integer keys 0-100: colorUniqueness,
typographyCharacter, competitorDistance, cohesion, overall, and a
short notes string.`,
		setJSON, strings.Join(competitors, ", "))

	var breakdown ScoreBreakdown
	if err := g.complete(ctx, prompt, &breakdown); err != nil {
		return nil, err
	}
	return &breakdown, nil
}

// GenerateTokenSet runs the full pipeline: differentiation analysis,
// palette, typography. The returned set is validated for completeness.
func (g *Generator) GenerateTokenSet(ctx context.Context, brief BrandBrief) (*tokens.TokenSet, error) {
	analysis, err := g.Differentiate(ctx, brief)
	if err != nil {
		return nil, err
	}
	g.log.Info("differentiation analysis complete",
		"uniqueness", analysis.UniquenessScore,
		"avoid", len(analysis.AvoidPatterns))

	colors, err := g.GeneratePalette(ctx, brief, analysis)
	if err != nil {
		return nil, err
	}

	typography, err := g.GenerateTypography(ctx, brief)
	if err != nil {
		return nil, err
	}

	set := &tokens.TokenSet{Colors: *colors, Typography: *typography}
	if !set.Complete() {
		return nil, fmt.Errorf("generated token set is incomplete")
	}
	return set, nil
}

// complete sends one prompt and decodes the JSON object in the reply.
func (g *Generator) complete(ctx context.Context, prompt string, out any) error {
	resp, err := g.provider.Complete(ctx, CompletionRequest{
		System: systemPrompt,
		Prompt: prompt,
	})
	if err != nil {
		return err
	}

	raw, err := extractJSON(resp.Text)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("model returned malformed JSON: %w", err)
	}
	return nil
}

// extractJSON pulls the outermost JSON object from model text, which
// may be fenced or surrounded by prose.
func extractJSON(text string) (string, error) {
	start := strings.IndexByte(text, '{')
	end := strings.LastIndexByte(text, '}')
	if start < 0 || end <= start {
		return "", fmt.Errorf("model response contains no JSON object")
	}
	return text[start : end+1], nil
}
