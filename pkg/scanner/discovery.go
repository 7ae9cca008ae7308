package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are glob patterns skipped during style-file
// discovery.
var DefaultExcludes = []string{
	"node_modules/**",
	".git/**",
	"dist/**",
	"build/**",
	".next/**",
	"coverage/**",
	"out/**",
	".brandlint/**",
}

// IsStyleFile reports whether name is scanned with the CSS path.
func IsStyleFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".css") || strings.HasSuffix(lower, ".scss")
}

// IsTailwindConfig reports whether name is scanned with the Tailwind
// config path.
func IsTailwindConfig(name string) bool {
	return strings.Contains(name, "tailwind.config")
}

// DiscoverStyleFiles walks rootDir for .css/.scss files and Tailwind
// config files, applying exclude patterns. Returned paths are absolute.
func DiscoverStyleFiles(rootDir string, excludes []string) ([]string, error) {
	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}
	if excludes == nil {
		excludes = DefaultExcludes
	}

	var files []string

	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		for _, pattern := range excludes {
			matched, _ := doublestar.PathMatch(pattern, relPath)
			if matched {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		if IsStyleFile(path) || IsTailwindConfig(filepath.Base(path)) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}
