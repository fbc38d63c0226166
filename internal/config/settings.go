package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file inside Dir().
const FileName = "config.yaml"

// Settings holds values read from config.yaml. Zero values mean "not set";
// command-line flags take precedence over anything here.
type Settings struct {
	// Template is a path to a template file used instead of the built-in one.
	Template string `yaml:"template"`

	// FileName replaces .gitignore when the destination is a directory.
	FileName string `yaml:"file_name"`

	// Guard disables the duplicate check when explicitly false.
	Guard *bool `yaml:"guard"`

	// Path is where the settings were read from. Empty if no file was found.
	Path string `yaml:"-"`
}

// GuardEnabled reports the effective guard setting, defaulting to on.
func (s *Settings) GuardEnabled() bool {
	return s.Guard == nil || *s.Guard
}

// Load reads config.yaml from dir. A missing directory or file yields empty
// settings. Relative template paths are resolved against dir.
func Load(dir string) (*Settings, error) {
	settings := &Settings{}
	if dir == "" {
		return settings, nil
	}

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	settings.Path = path

	if settings.Template != "" && !filepath.IsAbs(settings.Template) {
		settings.Template = filepath.Join(dir, settings.Template)
	}

	return settings, nil
}
