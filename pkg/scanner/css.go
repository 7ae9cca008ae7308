package scanner

import (
	"strings"
)

// ScanCSS extracts design values from CSS-like text.
//
// Scanning is best-effort: malformed input never fails, it just yields
// fewer values. The scan never deduplicates colors — every hex
// occurrence in a color-bearing declaration lands in Colors in source
// order, so downstream scoring can penalize repeated generic values.
func ScanCSS(text string) ScanResult {
	result := ScanResult{
		Variables: make(map[string]string),
	}

	decls := findDeclarations(text)

	fontSeen := make(map[string]bool)
	for _, d := range decls {
		result.Variables[d.name] = d.value

		lowerName := strings.ToLower(d.name)
		lowerValue := strings.ToLower(d.value)

		if strings.Contains(lowerValue, "#") ||
			strings.Contains(lowerValue, "rgb") ||
			strings.Contains(lowerValue, "hsl") {
			for _, hex := range extractHexLiterals(d.value) {
				result.Colors = append(result.Colors, hex)
			}
		}

		if strings.Contains(lowerName, "font") || strings.Contains(lowerName, "family") {
			for _, name := range splitFontNames(d.value) {
				if !fontSeen[name] {
					fontSeen[name] = true
					result.Fonts = append(result.Fonts, name)
				}
			}
		}

		if strings.Contains(lowerName, "spacing") ||
			strings.Contains(lowerName, "space") ||
			strings.Contains(lowerName, "gap") {
			result.Spacing = append(result.Spacing, d.value)
		}
	}

	// Safety net: colors used inline rather than declared. Already
	// collected values are not re-added (containment check against the
	// lowercased sequence).
	for _, hex := range extractHexLiterals(text) {
		if !containsColor(result.Colors, hex) {
			result.Colors = append(result.Colors, hex)
		}
	}

	return result
}

// findDeclarations locates --name: value; occurrences in source order.
func findDeclarations(text string) []declaration {
	var decls []declaration

	for i := 0; i+2 < len(text); i++ {
		if text[i] != '-' || text[i+1] != '-' {
			continue
		}
		// Property names start with a letter or underscore after the
		// leading dashes; this skips CSS comments and arrows.
		j := i + 2
		start := j
		for j < len(text) && isIdentChar(text[j]) {
			j++
		}
		if j == start || j >= len(text) || text[j] != ':' {
			continue
		}
		name := text[start:j]

		k := j + 1
		valStart := k
		for k < len(text) && text[k] != ';' && text[k] != '}' && text[k] != '\n' {
			k++
		}
		value := strings.TrimSpace(text[valStart:k])
		if value != "" {
			decls = append(decls, declaration{name: name, value: value})
		}
		i = k
	}

	return decls
}

// extractHexLiterals returns every #-prefixed hex literal in s,
// lowercased, in order of appearance. Only 3, 4, 6 and 8 digit forms
// are valid CSS hex colors; other run lengths are skipped.
func extractHexLiterals(s string) []string {
	var out []string
	for i := 0; i < len(s); i++ {
		if s[i] != '#' {
			continue
		}
		j := i + 1
		for j < len(s) && j-i-1 < 8 && isHexDigit(s[j]) {
			j++
		}
		n := j - i - 1
		switch n {
		case 3, 4, 6, 8:
			out = append(out, strings.ToLower(s[i:j]))
		}
		i = j - 1
	}
	return out
}

// splitFontNames extracts quoted-or-bare font-family candidates from a
// comma-separated value.
func splitFontNames(value string) []string {
	var names []string
	for _, part := range strings.Split(value, ",") {
		name := strings.TrimSpace(part)
		name = strings.Trim(name, `"'`)
		name = strings.TrimSpace(name)
		if isFontName(name) {
			names = append(names, name)
		}
	}
	return names
}

// isFontName reports whether s looks like a font-family identifier:
// starts with a letter, then letters, digits, spaces or hyphens.
func isFontName(s string) bool {
	if s == "" || !isLetter(s[0]) {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isLetter(c) && !isDigit(c) && c != ' ' && c != '-' {
			return false
		}
	}
	return true
}

// containsColor reports whether hex is already in colors. Both sides
// are lowercased by extraction, so plain equality suffices.
func containsColor(colors []string, hex string) bool {
	for _, c := range colors {
		if c == hex {
			return true
		}
	}
	return false
}

func isIdentChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '-' || c == '_'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}
