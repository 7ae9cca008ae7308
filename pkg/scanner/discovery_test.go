package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiscoverStyleFiles(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "globals.css"), []byte(":root {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tailwind.config.js"), []byte("module.exports = {}"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.tsx"), []byte("export default function App() {}"), 0644))

	sub := filepath.Join(dir, "styles")
	require.NoError(t, os.MkdirAll(sub, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "theme.scss"), []byte("$x: 1;"), 0644))

	// node_modules is excluded by the defaults.
	nmDir := filepath.Join(dir, "node_modules", "some-lib")
	require.NoError(t, os.MkdirAll(nmDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(nmDir, "style.css"), []byte(":root {}"), 0644))

	files, err := DiscoverStyleFiles(dir, nil)
	require.NoError(t, err)

	assert.Len(t, files, 3)
	for _, f := range files {
		assert.NotContains(t, f, "node_modules")
	}
}

func TestDiscoverStyleFiles_Empty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.tsx"), []byte("export default function App() {}"), 0644))

	files, err := DiscoverStyleFiles(dir, nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestIsStyleFile(t *testing.T) {
	assert.True(t, IsStyleFile("globals.css"))
	assert.True(t, IsStyleFile("theme.SCSS"))
	assert.False(t, IsStyleFile("tailwind.config.js"))
	assert.False(t, IsStyleFile("app.tsx"))
}

func TestIsTailwindConfig(t *testing.T) {
	assert.True(t, IsTailwindConfig("tailwind.config.js"))
	assert.True(t, IsTailwindConfig("tailwind.config.ts"))
	assert.False(t, IsTailwindConfig("globals.css"))
}
