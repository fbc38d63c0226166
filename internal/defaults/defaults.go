// Package defaults loads the block of default ignore patterns that dsignore
// writes into ignore files.
//
// The canonical block ships inside the binary. It can be replaced by a file
// named default_ignores placed next to the executable or in the dsignore
// config directory, or by an explicit path given on the command line.
package defaults

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the name of a template file on disk.
const FileName = "default_ignores"

// Marker is the banner that opens the default block. Its presence in an
// ignore file means the defaults were already inserted.
const Marker = "############################\n" +
	"# Start of default ignores #\n" +
	"############################\n"

// Template sources, reported in verbose and JSON output.
const (
	SourceExplicit   = "explicit"
	SourceExecutable = "executable"
	SourceConfig     = "config"
	SourceBuiltin    = "built-in"
)

// ErrTemplateNotFound is returned when an explicitly requested template file
// does not exist.
var ErrTemplateNotFound = errors.New("default ignores template not found")

// Template is the text appended to ignore files.
type Template struct {
	// Content is written byte-for-byte.
	Content string

	// Source is one of the Source* constants.
	Source string

	// Path is the file the content was read from. Empty for the built-in.
	Path string
}

// HasMarker reports whether the template opens with (or contains) Marker.
// A template without it cannot be detected by the duplicate guard.
func (t *Template) HasMarker() bool {
	return strings.Contains(t.Content, Marker)
}

// Options controls where Load looks for a template.
type Options struct {
	// Path is an explicit template file. When set it must exist.
	Path string

	// ExecutableDir is searched for FileName before the config directory.
	ExecutableDir string

	// ConfigDir is searched for FileName before falling back to the built-in.
	ConfigDir string
}

// Load finds and reads the template.
// Resolution order: explicit path → beside the executable → config dir → built-in.
func Load(opts Options) (*Template, error) {
	if opts.Path != "" {
		return loadExplicit(opts.Path)
	}

	if tmpl, err := loadFromDir(opts.ExecutableDir); err == nil {
		tmpl.Source = SourceExecutable
		return tmpl, nil
	}

	if tmpl, err := loadFromDir(opts.ConfigDir); err == nil {
		tmpl.Source = SourceConfig
		return tmpl, nil
	}

	return loadBuiltin()
}

// ExecutableDir returns the directory holding the running binary, or "" if it
// cannot be determined.
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// loadExplicit reads a template the user asked for by path.
func loadExplicit(path string) (*Template, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrTemplateNotFound, abs)
		}
		return nil, fmt.Errorf("reading template %s: %w", abs, err)
	}

	return &Template{Content: string(data), Source: SourceExplicit, Path: abs}, nil
}

// loadFromDir attempts to read FileName from a directory.
func loadFromDir(dir string) (*Template, error) {
	if dir == "" {
		return nil, errors.New("no directory")
	}

	path := filepath.Join(dir, FileName)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat template %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("template %s is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", path, err)
	}

	return &Template{Content: string(data), Path: path}, nil
}
