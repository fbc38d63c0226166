package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/gorewood/dsignore/internal/defaults"
	"github.com/gorewood/dsignore/internal/ignorefile"
)

// Check statuses reported in JSON output.
const (
	checkPresent     = "present"
	checkAbsent      = "absent"
	checkMissingFile = "missing_file"
)

// checkFlags holds the command-line flags for the check command.
type checkFlags struct {
	dest     string
	fileName string
	repo     bool
}

// newCheckCmd creates the check command.
func newCheckCmd() *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report whether the defaults are already in an ignore file",
		Long: `Report whether the defaults are already in an ignore file.

Looks for the "Start of default ignores" banner in the destination and
reports one of:
  present       - the banner was found
  absent        - the file exists without the banner
  missing_file  - the file does not exist yet

Never modifies anything.

Examples:
  dsignore check
  dsignore check -d ~/projects/churn --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.dest, "dest", "d", "", "The .gitignore file, or the directory containing it (default: current directory)")
	cmd.Flags().StringVar(&flags.fileName, "file-name", "", "Ignore file name used when the destination is a directory (default: .gitignore)")
	cmd.Flags().BoolVar(&flags.repo, "repo", false, "Check the git repository root when --dest is not given")

	return cmd
}

// runCheck inspects the destination without writing to it.
func runCheck(cmd *cobra.Command, flags *checkFlags) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings()
	if err != nil {
		return fail(printer, err)
	}
	name := firstNonEmpty(flags.fileName, settings.FileName, ignorefile.DefaultName)

	path, err := resolveDestination(cmd.Context(), flags.dest, flags.repo, name)
	if err != nil {
		return fail(printer, err)
	}

	status := checkMissingFile
	if ignorefile.Exists(path) {
		present, err := ignorefile.HasDefaults(path, defaults.Marker)
		if err != nil {
			return fail(printer, err)
		}
		status = checkAbsent
		if present {
			status = checkPresent
		}
	}
	log.Info().Str("path", absPath(path)).Str("status", status).Msg("Checked destination")

	return printer.Result(map[string]any{
		"status":  status,
		"path":    path,
		"message": checkMessage(status, absPath(path)),
	})
}

// checkMessage renders the human-readable check result.
func checkMessage(status, path string) string {
	switch status {
	case checkPresent:
		return "Defaults present in " + path
	case checkAbsent:
		return "Defaults not found in " + path
	default:
		return path + " does not exist"
	}
}
