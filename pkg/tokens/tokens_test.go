package tokens

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet() *TokenSet {
	return &TokenSet{
		Colors: ColorRoles{
			Primary:    ColorToken{Value: "#0b3d2e", Rationale: "deep forest anchor"},
			Secondary:  ColorToken{Value: "#e07a5f"},
			Accent:     ColorToken{Value: "#f2cc8f"},
			Background: ColorToken{Value: "#f4f1ea"},
			Surface:    ColorToken{Value: "#ffffff"},
			Text:       ColorToken{Value: "#1c1b1a"},
		},
		Typography: Typography{
			Display: FontToken{Family: "Fraunces", Weights: []int{600, 700}},
			Body:    FontToken{Family: "Karla", Weights: []int{400, 500}},
		},
	}
}

func TestTokenSet_Complete(t *testing.T) {
	assert.True(t, testSet().Complete())

	missingColor := testSet()
	missingColor.Colors.Surface.Value = ""
	assert.False(t, missingColor.Complete())

	missingFont := testSet()
	missingFont.Typography.Body.Family = ""
	assert.False(t, missingFont.Complete())

	assert.False(t, (&TokenSet{}).Complete())
}

func TestTokenSet_RoleValuesOrder(t *testing.T) {
	values := testSet().RoleValues()
	assert.Equal(t, [6]string{"#0b3d2e", "#e07a5f", "#f2cc8f", "#f4f1ea", "#ffffff", "#1c1b1a"}, values)
}

func TestBuildDocument(t *testing.T) {
	doc := BuildDocument("Thicket", testSet())

	assert.Equal(t, "Thicket", doc.Meta.Brand)
	assert.Equal(t, "brandlint", doc.Meta.Generator)
	assert.NotEmpty(t, doc.Meta.GeneratedAt)

	require.Len(t, doc.Colors, 6)
	assert.Equal(t, "#0b3d2e", doc.Colors["primary"].Value)
	assert.Equal(t, "#1c1b1a", doc.Colors["text"].Value)

	assert.Equal(t, "Fraunces", doc.Typography.Display.Family)
	assert.NotEmpty(t, doc.Spacing)
	assert.NotEmpty(t, doc.Radii)
	assert.NotEmpty(t, doc.Shadows)
}

func TestDocument_RenderJSON(t *testing.T) {
	out, err := BuildDocument("Thicket", testSet()).RenderJSON()
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, "Thicket", decoded.Meta.Brand)
	assert.Equal(t, "#e07a5f", decoded.Colors["secondary"].Value)
}

func TestRenderCSS(t *testing.T) {
	css := RenderCSS(testSet())

	assert.Contains(t, css, ":root {")
	assert.Contains(t, css, "--color-primary: #0b3d2e;")
	assert.Contains(t, css, "--color-text: #1c1b1a;")
	assert.Contains(t, css, `--font-display: "Fraunces", serif;`)
	assert.Contains(t, css, `--font-body: "Karla", sans-serif;`)
	assert.Contains(t, css, "--spacing-md: 1rem;")
}

func TestRenderCSS_SkipsEmptyRoles(t *testing.T) {
	set := &TokenSet{Colors: ColorRoles{Primary: ColorToken{Value: "#0b3d2e"}}}
	css := RenderCSS(set)

	assert.Contains(t, css, "--color-primary")
	assert.NotContains(t, css, "--color-secondary")
	assert.NotContains(t, css, "--font-display")
}

func TestRenderTailwind(t *testing.T) {
	snippet := RenderTailwind(testSet())

	assert.Contains(t, snippet, "primary: '#0b3d2e',")
	assert.Contains(t, snippet, "surface: '#ffffff',")
	assert.Contains(t, snippet, "display: ['Fraunces', 'serif'],")
	assert.Contains(t, snippet, "body: ['Karla', 'sans-serif'],")
}

func TestNewExtracted(t *testing.T) {
	ex := NewExtracted()
	require.NotNil(t, ex.Colors)
	assert.Equal(t, 0, ex.Colors.Len())
	assert.Empty(t, ex.Fonts)
}
