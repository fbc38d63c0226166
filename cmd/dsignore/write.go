package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gorewood/dsignore/internal/defaults"
	"github.com/gorewood/dsignore/internal/ignorefile"
	"github.com/gorewood/dsignore/internal/output"
)

// Write statuses reported in JSON output.
const (
	statusWritten    = "written"
	statusSkipped    = "skipped"
	statusWouldWrite = "would_write"
)

// writeFlags holds the command-line flags for writing the defaults.
type writeFlags struct {
	dest     string
	template string
	fileName string
	noGuard  bool
	dryRun   bool
	repo     bool
}

// writeResult is the outcome of a write, as reported in JSON mode.
type writeResult struct {
	status  string
	path    string
	source  string
	guarded bool
}

// addWriteFlags registers the write flags on the root command.
func addWriteFlags(cmd *cobra.Command, flags *writeFlags) {
	cmd.Flags().StringVarP(&flags.dest, "dest", "d", "",
		"The .gitignore file, or the directory in which to create it (default: current directory)")
	cmd.Flags().StringVar(&flags.template, "template", "", "Use this template file instead of the built-in defaults")
	cmd.Flags().StringVar(&flags.fileName, "file-name", "", "Ignore file name used when the destination is a directory (default: .gitignore)")
	cmd.Flags().BoolVar(&flags.noGuard, "no-guard", false, "Append even if the defaults are already present")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Show what would be done without writing")
	cmd.Flags().BoolVar(&flags.repo, "repo", false, "Write to the git repository root when --dest is not given")
}

// runWrite resolves the destination, checks for existing defaults, loads
// the template and appends it.
func runWrite(cmd *cobra.Command, flags *writeFlags) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings()
	if err != nil {
		return fail(printer, err)
	}
	guard := settings.GuardEnabled() && !flags.noGuard
	name := firstNonEmpty(flags.fileName, settings.FileName, ignorefile.DefaultName)

	path, err := resolveDestination(cmd.Context(), flags.dest, flags.repo, name)
	if err != nil {
		return fail(printer, err)
	}
	log.Info().Str("path", absPath(path)).Msg("Writing to destination")

	if guard {
		present, err := ignorefile.HasDefaults(path, defaults.Marker)
		if err != nil {
			return fail(printer, err)
		}
		if present {
			log.Info().Str("path", path).Msg("Defaults already exist, exiting")
			return reportWrite(printer, writeResult{status: statusSkipped, path: path, guarded: guard})
		}
	}

	tmpl, err := loadTemplate(firstNonEmpty(flags.template, settings.Template))
	if err != nil {
		return fail(printer, err)
	}
	if guard && !tmpl.HasMarker() {
		log.Warn().Str("source", tmpl.Source).Str("template", tmpl.Path).
			Msg("Template has no start-of-defaults banner; repeated runs will append it again")
	}

	result := writeResult{path: path, source: tmpl.Source, guarded: guard}

	if flags.dryRun {
		result.status = statusWouldWrite
		return reportWrite(printer, result)
	}

	if err := ignorefile.Append(path, tmpl.Content); err != nil {
		return fail(printer, err)
	}
	log.Info().Str("path", path).Msg("Defaults written")

	result.status = statusWritten
	return reportWrite(printer, result)
}

// reportWrite prints the result. Human mode stays silent except for dry runs.
func reportWrite(printer *output.Printer, result writeResult) error {
	data := map[string]any{
		"status":  result.status,
		"path":    result.path,
		"guarded": result.guarded,
	}
	if result.source != "" {
		data["template_source"] = result.source
	}
	if !printer.JSON() && result.status == statusWouldWrite {
		data["message"] = "Would write defaults to " + absPath(result.path)
	}
	return printer.Result(data)
}
