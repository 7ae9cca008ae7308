package patterns

import "strings"

// GenericColors is the fixed reference list of hex values commonly
// produced by default framework themes and generative-AI output:
// framework blues, indigos, purples and slates, plus the two endpoints
// of the overused purple gradient.
var GenericColors = []string{
	"#3b82f6", // blue-500
	"#2563eb", // blue-600
	"#1d4ed8", // blue-700
	"#6366f1", // indigo-500
	"#4f46e5", // indigo-600
	"#4338ca", // indigo-700
	"#8b5cf6", // violet-500
	"#7c3aed", // violet-600
	"#a855f7", // purple-500
	"#9333ea", // purple-600
	"#64748b", // slate-500
	"#475569", // slate-600
	"#334155", // slate-700
	"#1e293b", // slate-800
	"#0f172a", // slate-900
	"#667eea", // gradient start
	"#764ba2", // gradient end
}

// GenericFonts is the fixed reference list of font-name substrings.
// Matching is case-insensitive substring containment, so a font named
// "InterVariable" matches the "Inter" entry.
var GenericFonts = []string{
	"Inter",
	"Roboto",
	"Open Sans",
	"Lato",
	"Montserrat",
	"Poppins",
	"Arial",
	"Helvetica",
}

// genericColorSet backs O(1) membership checks. Keys are lowercase.
var genericColorSet = func() map[string]bool {
	set := make(map[string]bool, len(GenericColors))
	for _, c := range GenericColors {
		set[strings.ToLower(c)] = true
	}
	return set
}()

// IsGenericColor reports whether hex matches a reference generic
// color, case-insensitively.
func IsGenericColor(hex string) bool {
	return genericColorSet[strings.ToLower(hex)]
}

// MatchGenericFont returns the reference entry contained in name, if
// any.
func MatchGenericFont(name string) (string, bool) {
	lower := strings.ToLower(name)
	for _, ref := range GenericFonts {
		if strings.Contains(lower, strings.ToLower(ref)) {
			return ref, true
		}
	}
	return "", false
}
