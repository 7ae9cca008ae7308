// Package scanner extracts raw design values (colors, fonts, spacing,
// custom properties) from CSS-like text and Tailwind-style config text.
package scanner

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ScanResult holds the raw design values found in one text.
// It is created fresh per scan call and never mutated afterwards.
type ScanResult struct {
	// Colors is the ordered sequence of hex literals, lowercased,
	// in source order. Duplicates are kept.
	Colors []string
	// Fonts holds distinct font-family names, case-sensitive as
	// authored, in first-occurrence order.
	Fonts []string
	// Variables maps declared custom-property names to their raw
	// textual values. Later declarations of the same name win.
	Variables map[string]string
	// Spacing holds raw spacing value strings, unparsed.
	Spacing []string
}

// TailwindScan holds design values extracted from Tailwind-style
// config text. Colors preserve insertion order so that downstream
// migration mapping sees values in their authored order.
type TailwindScan struct {
	Colors *orderedmap.OrderedMap[string, string]
	Fonts  []string
}

// NewTailwindScan returns an empty TailwindScan with an initialized
// color map.
func NewTailwindScan() TailwindScan {
	return TailwindScan{Colors: orderedmap.New[string, string]()}
}

// declaration is one --name: value; occurrence in source order.
type declaration struct {
	name  string
	value string
}
