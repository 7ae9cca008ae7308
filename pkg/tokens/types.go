// Package tokens defines the brand token domain: semantic color and
// typography roles with rationales, plus rendering of the persisted
// output formats.
package tokens

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ColorToken is one semantic color role value.
type ColorToken struct {
	Value     string `json:"value"`
	Rationale string `json:"rationale,omitempty"`
}

// FontToken is one typography role.
type FontToken struct {
	Family    string `json:"family"`
	Weights   []int  `json:"weights,omitempty"`
	Rationale string `json:"rationale,omitempty"`
}

// ColorRoles holds the six semantic color roles of a brand palette.
type ColorRoles struct {
	Primary    ColorToken `json:"primary"`
	Secondary  ColorToken `json:"secondary"`
	Accent     ColorToken `json:"accent"`
	Background ColorToken `json:"background"`
	Surface    ColorToken `json:"surface"`
	Text       ColorToken `json:"text"`
}

// Typography holds the two typography roles.
type Typography struct {
	Display FontToken `json:"display"`
	Body    FontToken `json:"body"`
}

// TokenSet is a complete brand token set. A set only counts as an
// improved/target set when all six color roles and both typography
// roles are present.
type TokenSet struct {
	Colors     ColorRoles `json:"colors"`
	Typography Typography `json:"typography"`
}

// RoleNames is the fixed color-role order used everywhere a stable
// ordering matters (rendering, migration role rotation).
var RoleNames = [6]string{"primary", "secondary", "accent", "background", "surface", "text"}

// RoleValues returns the six color values in fixed role order.
func (ts *TokenSet) RoleValues() [6]string {
	return [6]string{
		ts.Colors.Primary.Value,
		ts.Colors.Secondary.Value,
		ts.Colors.Accent.Value,
		ts.Colors.Background.Value,
		ts.Colors.Surface.Value,
		ts.Colors.Text.Value,
	}
}

// roleTokens returns the roles alongside their names, in order.
func (ts *TokenSet) roleTokens() [6]ColorToken {
	return [6]ColorToken{
		ts.Colors.Primary,
		ts.Colors.Secondary,
		ts.Colors.Accent,
		ts.Colors.Background,
		ts.Colors.Surface,
		ts.Colors.Text,
	}
}

// Complete reports whether every color and typography role carries a
// value.
func (ts *TokenSet) Complete() bool {
	for _, v := range ts.RoleValues() {
		if v == "" {
			return false
		}
	}
	return ts.Typography.Display.Family != "" && ts.Typography.Body.Family != ""
}

// Extracted holds tokens pulled out of an existing project: a
// name→hex color mapping that preserves insertion order, and a font
// sequence. This is the "current" side of a migration.
type Extracted struct {
	Colors *orderedmap.OrderedMap[string, string]
	Fonts  []string
}

// NewExtracted returns an empty Extracted with an initialized color
// map.
func NewExtracted() *Extracted {
	return &Extracted{Colors: orderedmap.New[string, string]()}
}
