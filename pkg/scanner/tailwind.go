package scanner

import (
	"strings"
)

// ScanTailwindConfig extracts colors and font families from
// Tailwind-style config text. This is a distinct textual format from
// CSS: colors live in the first balanced-brace block after a "colors:"
// token, fonts in a "fontFamily:" block.
//
// The brace scan uses an explicit depth counter so unbalanced input
// terminates cleanly — an unmatched block is treated as "not found"
// rather than an error.
func ScanTailwindConfig(text string) TailwindScan {
	scan := NewTailwindScan()

	if block, ok := blockAfter(text, "colors:"); ok {
		parseColorBlock(block, &scan)
	}

	if block, ok := blockAfter(text, "fontFamily:"); ok {
		scan.Fonts = parseFontFamilyBlock(block)
	}

	return scan
}

// blockAfter returns the contents of the first balanced {...} block
// following the given token, without the outer braces.
func blockAfter(text, token string) (string, bool) {
	idx := strings.Index(text, token)
	if idx < 0 {
		return "", false
	}
	open := strings.IndexByte(text[idx:], '{')
	if open < 0 {
		return "", false
	}
	start := idx + open

	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return text[start+1 : i], true
			}
		}
	}
	// Unbalanced braces: block not found.
	return "", false
}

// parseColorBlock reads entries from a colors block. Two shapes are
// supported:
//
//	primary: { 500: '#3b82f6', ... }   → primary-500
//	accent: '#6366f1'                  → accent
//
// A flat entry is skipped when a nested group already claimed its name
// as a key prefix.
func parseColorBlock(block string, scan *TailwindScan) {
	nested := make(map[string]bool)

	i := 0
	for i < len(block) {
		name, next, ok := readKey(block, i)
		if !ok {
			break
		}
		i = next

		// Value starts after the colon.
		for i < len(block) && (block[i] == ' ' || block[i] == '\t' || block[i] == '\n' || block[i] == '\r') {
			i++
		}
		if i >= len(block) {
			break
		}

		if block[i] == '{' {
			group, ok := blockAfter(block[i:], "")
			if !ok {
				break
			}
			nested[name] = true
			parseShadeEntries(group, name, scan)
			i += len(group) + 2
			continue
		}

		end := i
		for end < len(block) && block[end] != ',' && block[end] != '\n' {
			end++
		}
		if !nested[name] {
			if hexes := extractHexLiterals(block[i:end]); len(hexes) > 0 {
				scan.Colors.Set(name, hexes[0])
			}
		}
		i = end + 1
	}
}

// parseShadeEntries flattens a nested group to name-shadeKey keys.
func parseShadeEntries(group, name string, scan *TailwindScan) {
	i := 0
	for i < len(group) {
		shade, next, ok := readKey(group, i)
		if !ok {
			break
		}
		end := next
		for end < len(group) && group[end] != ',' && group[end] != '\n' {
			end++
		}
		if hexes := extractHexLiterals(group[next:end]); len(hexes) > 0 {
			scan.Colors.Set(name+"-"+shade, hexes[0])
		}
		i = end + 1
	}
}

// readKey finds the next identifier-like key terminated by ':' at or
// after position i. Returns the key, the position after the colon, and
// whether a key was found.
func readKey(s string, i int) (string, int, bool) {
	for i < len(s) {
		for i < len(s) && !isIdentChar(s[i]) && s[i] != '\'' && s[i] != '"' {
			i++
		}
		if i >= len(s) {
			return "", 0, false
		}

		quote := byte(0)
		if s[i] == '\'' || s[i] == '"' {
			quote = s[i]
			i++
		}
		start := i
		for i < len(s) && isIdentChar(s[i]) {
			i++
		}
		key := s[start:i]
		if quote != 0 && i < len(s) && s[i] == quote {
			i++
		}
		if key == "" {
			i++
			continue
		}
		for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
			i++
		}
		if i < len(s) && s[i] == ':' {
			return key, i + 1, true
		}
	}
	return "", 0, false
}

// parseFontFamilyBlock extracts quoted font names made of letters and
// spaces only, excluding names from the generic reference list. The
// exclusion applies to the whole list uniformly.
func parseFontFamilyBlock(block string) []string {
	var fonts []string
	seen := make(map[string]bool)

	i := 0
	for i < len(block) {
		quote := block[i]
		if quote != '\'' && quote != '"' {
			i++
			continue
		}
		end := i + 1
		for end < len(block) && block[end] != quote {
			end++
		}
		if end >= len(block) {
			break
		}
		name := block[i+1 : end]
		if isLettersAndSpaces(name) && !isExcludedFont(name) && !seen[name] {
			seen[name] = true
			fonts = append(fonts, name)
		}
		i = end + 1
	}

	return fonts
}

// excludedFonts are generic names filtered out of Tailwind fontFamily
// extraction so that stack fallbacks don't register as brand fonts.
var excludedFonts = []string{
	"Inter",
	"Roboto",
	"Open Sans",
	"Lato",
	"Montserrat",
	"Poppins",
	"Arial",
	"Helvetica",
	"sans-serif",
	"serif",
	"monospace",
}

func isExcludedFont(name string) bool {
	for _, ex := range excludedFonts {
		if strings.EqualFold(name, ex) {
			return true
		}
	}
	return false
}

func isLettersAndSpaces(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) && s[i] != ' ' {
			return false
		}
	}
	return true
}
