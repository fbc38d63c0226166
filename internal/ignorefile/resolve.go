package ignorefile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultName is the ignore file created when the destination is a directory.
const DefaultName = ".gitignore"

// ErrDirectoryNotFound is returned when the parent directory of the resolved
// destination does not exist.
var ErrDirectoryNotFound = errors.New("directory does not exist")

// Resolve turns a user-supplied destination into the file to write.
//
//   - "" resolves to name in the current working directory.
//   - an existing directory resolves to name inside it.
//   - anything else is taken as the file path itself.
//
// The parent directory of the result must exist, including when name
// itself carries a directory part.
func Resolve(dest, name string) (string, error) {
	if name == "" {
		name = DefaultName
	}

	var target string
	switch {
	case dest == "":
		target = name
	case isDir(dest):
		target = filepath.Join(dest, name)
	default:
		target = dest
	}

	parent := filepath.Dir(target)
	if !isDir(parent) {
		return "", fmt.Errorf("%w at %s", ErrDirectoryNotFound, parent)
	}

	return target, nil
}

// isDir reports whether path exists and is a directory.
func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
