package tokens

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Document is the persisted tokens file shape.
type Document struct {
	Meta       Meta                  `json:"meta"`
	Colors     map[string]ColorToken `json:"colors"`
	Typography Typography            `json:"typography"`
	Spacing    map[string]string     `json:"spacing"`
	Radii      map[string]string     `json:"radii"`
	Shadows    map[string]string     `json:"shadows"`
}

// Meta describes where a tokens document came from.
type Meta struct {
	Brand       string `json:"brand,omitempty"`
	GeneratedAt string `json:"generated_at"`
	Generator   string `json:"generator"`
}

// defaultSpacing is the scale emitted when a set carries no explicit
// spacing tokens.
var defaultSpacing = map[string]string{
	"xs": "0.25rem",
	"sm": "0.5rem",
	"md": "1rem",
	"lg": "1.5rem",
	"xl": "2.5rem",
}

var defaultRadii = map[string]string{
	"sm":   "0.25rem",
	"md":   "0.5rem",
	"lg":   "1rem",
	"full": "9999px",
}

var defaultShadows = map[string]string{
	"sm": "0 1px 2px rgba(0, 0, 0, 0.06)",
	"md": "0 4px 10px rgba(0, 0, 0, 0.08)",
	"lg": "0 12px 32px rgba(0, 0, 0, 0.12)",
}

// BuildDocument assembles the tokens document for a set.
func BuildDocument(brand string, ts *TokenSet) *Document {
	colors := make(map[string]ColorToken, len(RoleNames))
	roles := ts.roleTokens()
	for i, name := range RoleNames {
		colors[name] = roles[i]
	}
	return &Document{
		Meta: Meta{
			Brand:       brand,
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Generator:   "brandlint",
		},
		Colors:     colors,
		Typography: ts.Typography,
		Spacing:    defaultSpacing,
		Radii:      defaultRadii,
		Shadows:    defaultShadows,
	}
}

// RenderJSON serializes a tokens document with stable indentation.
func (d *Document) RenderJSON() ([]byte, error) {
	out, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to render tokens document: %w", err)
	}
	return out, nil
}

// RenderCSS emits the set as CSS custom-property declarations.
func RenderCSS(ts *TokenSet) string {
	var b strings.Builder
	b.WriteString(":root {\n")

	roles := ts.roleTokens()
	for i, name := range RoleNames {
		if roles[i].Value == "" {
			continue
		}
		fmt.Fprintf(&b, "  --color-%s: %s;\n", name, roles[i].Value)
	}
	if ts.Typography.Display.Family != "" {
		fmt.Fprintf(&b, "  --font-display: %q, serif;\n", ts.Typography.Display.Family)
	}
	if ts.Typography.Body.Family != "" {
		fmt.Fprintf(&b, "  --font-body: %q, sans-serif;\n", ts.Typography.Body.Family)
	}
	for _, key := range []string{"xs", "sm", "md", "lg", "xl"} {
		fmt.Fprintf(&b, "  --spacing-%s: %s;\n", key, defaultSpacing[key])
	}

	b.WriteString("}\n")
	return b.String()
}

// RenderTailwind emits the set as a framework-config snippet.
func RenderTailwind(ts *TokenSet) string {
	var b strings.Builder
	b.WriteString("theme: {\n  extend: {\n    colors: {\n")

	roles := ts.roleTokens()
	for i, name := range RoleNames {
		if roles[i].Value == "" {
			continue
		}
		fmt.Fprintf(&b, "      %s: '%s',\n", name, roles[i].Value)
	}
	b.WriteString("    },\n    fontFamily: {\n")
	if ts.Typography.Display.Family != "" {
		fmt.Fprintf(&b, "      display: ['%s', 'serif'],\n", ts.Typography.Display.Family)
	}
	if ts.Typography.Body.Family != "" {
		fmt.Fprintf(&b, "      body: ['%s', 'sans-serif'],\n", ts.Typography.Body.Family)
	}
	b.WriteString("    },\n  },\n},\n")
	return b.String()
}
