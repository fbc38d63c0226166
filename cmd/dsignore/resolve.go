package main

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/gorewood/dsignore/internal/config"
	"github.com/gorewood/dsignore/internal/defaults"
	"github.com/gorewood/dsignore/internal/git"
	"github.com/gorewood/dsignore/internal/ignorefile"
	"github.com/gorewood/dsignore/internal/output"
)

// loadSettings reads config.yaml from the dsignore config directory.
func loadSettings() (*config.Settings, error) {
	dir := config.Dir()
	settings, err := config.Load(dir)
	if err != nil {
		return nil, err
	}
	if settings.Path != "" {
		log.Debug().Str("config", settings.Path).Msg("Loaded settings")
	}
	return settings, nil
}

// resolveDestination picks the ignore file to inspect or write.
// With useRepo and no explicit dest, the repository root is the destination directory.
func resolveDestination(ctx context.Context, dest string, useRepo bool, name string) (string, error) {
	if dest == "" && useRepo {
		root, err := git.RepoRoot(ctx, "")
		if err != nil {
			return "", err
		}
		log.Debug().Str("root", root).Msg("Using repository root")
		dest = root
	} else if dest == "" {
		log.Info().Msg("No destination path provided, using current working directory")
	}

	return ignorefile.Resolve(dest, name)
}

// loadTemplate resolves the template from an explicit path, the executable
// directory, the config directory, or the built-in copy.
func loadTemplate(path string) (*defaults.Template, error) {
	tmpl, err := defaults.Load(defaults.Options{
		Path:          path,
		ExecutableDir: defaults.ExecutableDir(),
		ConfigDir:     config.Dir(),
	})
	if err != nil {
		return nil, err
	}
	log.Debug().Str("source", tmpl.Source).Str("template", tmpl.Path).Msg("Loaded template")
	return tmpl, nil
}

// firstNonEmpty returns the first non-empty value.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// absPath returns path made absolute for display, or path itself on failure.
func absPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// toExitError classifies an error into an exit-coded error.
// A missing destination directory is the user's mistake; a missing template
// and any other I/O failure are system errors.
func toExitError(err error) *output.ExitError {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return exitErr
	}
	if errors.Is(err, ignorefile.ErrDirectoryNotFound) {
		return output.NewUserErrorWithCause(err.Error(), err)
	}
	return output.NewSystemErrorWithCause(err.Error(), err)
}

// fail reports err through the printer and returns its exit-coded form.
func fail(printer *output.Printer, err error) error {
	exitErr := toExitError(err)
	printer.Error(exitErr)
	return exitErr
}
