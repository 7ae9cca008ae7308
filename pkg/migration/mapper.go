// Package migration maps detected generic token values to replacement
// values from a target brand TokenSet. A Migration is pure data — it
// performs no file mutation.
package migration

import (
	"github.com/gnana997/brandlint/pkg/patterns"
	"github.com/gnana997/brandlint/pkg/tokens"
)

// Replacement is one textual from→to substitution directive.
type Replacement struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// Migration holds value-to-value substitution maps plus the ordered
// replacement directives rendered from them. Every key in
// ColorMappings and FontMappings also appears as at least one
// CSSReplacements entry.
type Migration struct {
	ColorMappings   map[string]string `json:"color_mappings"`
	FontMappings    map[string]string `json:"font_mappings"`
	CSSReplacements []Replacement     `json:"css_replacements"`
}

// Preserve lists values the caller wants kept as-is. Preserved values
// are removed from the current tokens before matching, so they can
// never be mapped or replaced, even when they match a generic
// reference.
type Preserve struct {
	Colors []string
	Fonts  []string
}

// Build produces a Migration from the current extracted tokens to the
// target set.
//
// Color role assignment rotates through the six roles by the value's
// position within the full current sequence — not only among matched
// values — so adjacent generic colors land on different roles. Generic
// fonts always map to the target's body family; the display family is
// reserved for intentional use.
//
// An absent or incomplete target yields empty mappings.
func Build(current *tokens.Extracted, target *tokens.TokenSet, preserve Preserve) *Migration {
	m := &Migration{
		ColorMappings: make(map[string]string),
		FontMappings:  make(map[string]string),
	}
	if current == nil || target == nil || !target.Complete() {
		return m
	}

	preservedColors := make(map[string]bool, len(preserve.Colors))
	for _, c := range preserve.Colors {
		preservedColors[c] = true
	}
	preservedFonts := make(map[string]bool, len(preserve.Fonts))
	for _, f := range preserve.Fonts {
		preservedFonts[f] = true
	}

	roles := target.RoleValues()

	i := 0
	if current.Colors != nil {
		for pair := current.Colors.Oldest(); pair != nil; pair = pair.Next() {
			value := pair.Value
			if preservedColors[value] {
				continue
			}
			if patterns.IsGenericColor(value) {
				targetHex := roles[i%len(roles)]
				m.ColorMappings[value] = targetHex
				m.CSSReplacements = append(m.CSSReplacements, Replacement{From: value, To: targetHex})
			}
			i++
		}
	}

	bodyFamily := target.Typography.Body.Family
	for _, font := range current.Fonts {
		if preservedFonts[font] {
			continue
		}
		if _, ok := patterns.MatchGenericFont(font); ok {
			m.FontMappings[font] = bodyFamily
			m.CSSReplacements = append(m.CSSReplacements, Replacement{From: font, To: bodyFamily})
		}
	}

	return m
}
