package migration

import (
	"fmt"
	"sort"
	"strings"
)

// RenderScript renders shell-style substitution commands from a
// Migration, one find+substitute pair per mapping entry, each preceded
// by a comment naming the source and target value. Entries are sorted
// by source value so the script is stable across runs.
func RenderScript(m *Migration) string {
	if m == nil || (len(m.ColorMappings) == 0 && len(m.FontMappings) == 0) {
		return ""
	}

	var b strings.Builder
	b.WriteString("#!/bin/sh\n")
	b.WriteString("# brandlint migration — review before running\n\n")

	writeSection := func(title string, mappings map[string]string) {
		if len(mappings) == 0 {
			return
		}
		keys := make([]string, 0, len(mappings))
		for k := range mappings {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		fmt.Fprintf(&b, "# %s\n", title)
		for _, from := range keys {
			to := mappings[from]
			fmt.Fprintf(&b, "# %s -> %s\n", from, to)
			fmt.Fprintf(&b, "find . -name '*.css' -o -name '*.scss' | xargs grep -l '%s'\n", from)
			fmt.Fprintf(&b, "find . -name '*.css' -o -name '*.scss' | xargs sed -i 's/%s/%s/g'\n", sedEscape(from), sedEscape(to))
		}
		b.WriteString("\n")
	}

	writeSection("colors", m.ColorMappings)
	writeSection("fonts", m.FontMappings)

	return b.String()
}

// sedEscape escapes the characters sed treats specially in patterns
// and replacements.
func sedEscape(s string) string {
	r := strings.NewReplacer("/", `\/`, "&", `\&`, ".", `\.`)
	return r.Replace(s)
}
