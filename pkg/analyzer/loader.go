package analyzer

import (
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// readStyleFile reads a file through a read-only memory mapping,
// falling back to os.ReadFile when mmap is unavailable (empty files,
// exotic filesystems). Style files are read once per analysis, so the
// mapping is released immediately after copying out the text.
func readStyleFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %q: %w", path, err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to stat %q: %w", path, err)
	}
	if stat.Size() == 0 {
		return "", nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			return "", fmt.Errorf("failed to read %q: %w", path, readErr)
		}
		return string(data), nil
	}
	defer m.Unmap()

	return string(m), nil
}
