package ignorefile

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// HasDefaults reports whether the file at path already contains marker.
// A missing file has no defaults.
func HasDefaults(path, marker string) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.Contains(string(data), marker), nil
}

// Exists reports whether a regular file or other non-directory entry exists at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
