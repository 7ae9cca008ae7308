package generator

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gnana997/brandlint/pkg/tokens"
)

// stubProvider replays canned responses in order.
type stubProvider struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (s *stubProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	s.prompts = append(s.prompts, req.Prompt)
	if s.err != nil {
		return nil, s.err
	}
	if s.calls >= len(s.responses) {
		return nil, fmt.Errorf("stub exhausted after %d calls", s.calls)
	}
	text := s.responses[s.calls]
	s.calls++
	return &CompletionResponse{Text: text}, nil
}

const paletteJSON = `{"colors": {
  "primary": {"value": "#0b3d2e", "rationale": "deep forest"},
  "secondary": {"value": "#e07a5f"},
  "accent": {"value": "#f2cc8f"},
  "background": {"value": "#f4f1ea"},
  "surface": {"value": "#ffffff"},
  "text": {"value": "#1c1b1a"}
}}`

const typographyJSON = `{"typography": {
  "display": {"family": "Fraunces", "weights": [600, 700]},
  "body": {"family": "Karla", "weights": [400]}
}}`

const analysisJSON = `{"differentiationStrategy": "earthy warmth",
  "avoidPatterns": ["indigo gradients"],
  "embracePatterns": ["muted terracotta"],
  "colorRecommendations": "warm neutrals",
  "typographyRecommendations": "serif display",
  "uniquenessScore": 78}`

func TestDifferentiate(t *testing.T) {
	stub := &stubProvider{responses: []string{analysisJSON}}
	g := New(stub, nil)

	analysis, err := g.Differentiate(context.Background(), BrandBrief{Industry: "coffee"})
	require.NoError(t, err)
	assert.Equal(t, "earthy warmth", analysis.DifferentiationStrategy)
	assert.Equal(t, 78, analysis.UniquenessScore)
	assert.Equal(t, []string{"indigo gradients"}, analysis.AvoidPatterns)

	// The prompt steers the model away from the reference generics.
	assert.Contains(t, stub.prompts[0], "#3b82f6")
}

func TestGeneratePalette_FencedResponse(t *testing.T) {
	// Models often wrap JSON in prose or fences; extraction takes the
	// outermost object.
	stub := &stubProvider{responses: []string{"Here is the palette:\n```json\n" + paletteJSON + "\n```\nEnjoy."}}
	g := New(stub, nil)

	colors, err := g.GeneratePalette(context.Background(), BrandBrief{Name: "Thicket"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "#0b3d2e", colors.Primary.Value)
	assert.Equal(t, "#1c1b1a", colors.Text.Value)
}

func TestGeneratePalette_MalformedJSON(t *testing.T) {
	stub := &stubProvider{responses: []string{`{"colors": {broken`}}
	g := New(stub, nil)

	_, err := g.GeneratePalette(context.Background(), BrandBrief{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed JSON")
	assert.Equal(t, 1, stub.calls, "malformed responses must not be retried")
}

func TestGeneratePalette_NoJSONObject(t *testing.T) {
	stub := &stubProvider{responses: []string{"I cannot help with that."}}
	g := New(stub, nil)

	_, err := g.GeneratePalette(context.Background(), BrandBrief{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON object")
}

func TestGeneratePalette_IncompleteRoles(t *testing.T) {
	stub := &stubProvider{responses: []string{`{"colors": {"primary": {"value": "#0b3d2e"}}}`}}
	g := New(stub, nil)

	_, err := g.GeneratePalette(context.Background(), BrandBrief{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestGenerateTypography(t *testing.T) {
	stub := &stubProvider{responses: []string{typographyJSON}}
	g := New(stub, nil)

	typ, err := g.GenerateTypography(context.Background(), BrandBrief{Name: "Thicket"})
	require.NoError(t, err)
	assert.Equal(t, "Fraunces", typ.Display.Family)
	assert.Equal(t, "Karla", typ.Body.Family)
}

func TestGenerateTypography_MissingRole(t *testing.T) {
	stub := &stubProvider{responses: []string{`{"typography": {"display": {"family": "Fraunces"}}}`}}
	g := New(stub, nil)

	_, err := g.GenerateTypography(context.Background(), BrandBrief{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "incomplete")
}

func TestScorePalette(t *testing.T) {
	stub := &stubProvider{responses: []string{`{"colorUniqueness": 81, "typographyCharacter": 74,
  "competitorDistance": 88, "cohesion": 79, "overall": 80, "notes": "solid"}`}}
	g := New(stub, nil)

	set := &tokens.TokenSet{
		Colors: tokens.ColorRoles{
			Primary: tokens.ColorToken{Value: "#0b3d2e"},
		},
		Typography: tokens.Typography{
			Display: tokens.FontToken{Family: "Fraunces"},
			Body:    tokens.FontToken{Family: "Karla"},
		},
	}
	breakdown, err := g.ScorePalette(context.Background(), set, []string{"Acme"})
	require.NoError(t, err)
	assert.Equal(t, 80, breakdown.Overall)
	assert.Equal(t, "solid", breakdown.Notes)
}

func TestGenerateTokenSet_Pipeline(t *testing.T) {
	stub := &stubProvider{responses: []string{analysisJSON, paletteJSON, typographyJSON}}
	g := New(stub, nil)

	set, err := g.GenerateTokenSet(context.Background(), BrandBrief{Name: "Thicket", Industry: "coffee"})
	require.NoError(t, err)
	assert.True(t, set.Complete())
	assert.Equal(t, 3, stub.calls)
}

func TestGenerateTokenSet_FailsFastOnProviderError(t *testing.T) {
	stub := &stubProvider{err: fmt.Errorf("model request failed: boom")}
	g := New(stub, nil)

	_, err := g.GenerateTokenSet(context.Background(), BrandBrief{})
	require.Error(t, err)
	assert.Equal(t, 1, len(stub.prompts))
}

func TestExtractJSON(t *testing.T) {
	out, err := extractJSON(`prose {"a": 1} more prose`)
	require.NoError(t, err)
	assert.Equal(t, `{"a": 1}`, out)

	_, err = extractJSON("no braces here")
	assert.Error(t, err)

	_, err = extractJSON("} backwards {")
	assert.Error(t, err)
}
