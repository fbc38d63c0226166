// Package config provides the configuration directory and settings file for dsignore.
package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName names the configuration directory.
const AppName = "dsignore"

// Dir returns the dsignore configuration directory.
//
// Resolution:
//   - $DSIGNORE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/dsignore if set (respects XDG on any platform)
//   - the platform config home reported by xdg (~/.config, ~/Library/Application Support, %LOCALAPPDATA%)
func Dir() string {
	// Explicit override
	if dir := os.Getenv("DSIGNORE_CONFIG_HOME"); dir != "" {
		return dir
	}

	// xdg reads the environment once at init; honour later changes.
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, AppName)
	}

	if xdg.ConfigHome == "" {
		return ""
	}
	return filepath.Join(xdg.ConfigHome, AppName)
}
