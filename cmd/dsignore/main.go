// Package main provides the entry point for the dsignore CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/dsignore/internal/logging"
	"github.com/gorewood/dsignore/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		// Walk up to root to find the persistent flag
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// colorMode reads the --color persistent flag, defaulting to "auto".
func colorMode(cmd *cobra.Command) string {
	flag := cmd.Flags().Lookup("color")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("color")
	}
	if flag == nil {
		return "auto"
	}
	return flag.Value.String()
}

// verbosity reads the -v count from the command hierarchy.
func verbosity(cmd *cobra.Command) int {
	count, err := cmd.Flags().GetCount("verbose")
	if err != nil {
		return 0
	}
	return count
}

// newPrinter builds a printer for cmd: results on stdout, human errors on stderr.
func newPrinter(cmd *cobra.Command) *output.Printer {
	color := output.ResolveColorMode(colorMode(cmd), output.IsTTY(cmd.ErrOrStderr()))
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), color).WithStderr(cmd.ErrOrStderr())
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := fang.Execute(ctx, cmd,
		fang.WithVersion(buildVersion()),
		fang.WithErrorHandler(handleError),
	)
	return output.GetExitCode(err)
}

// handleError reports errors that commands did not print themselves, such as
// flag parse failures. An *output.ExitError has already gone through the printer.
func handleError(w io.Writer, styles fang.Styles, err error) {
	var exitErr *output.ExitError
	if errors.As(err, &exitErr) {
		return
	}
	fang.DefaultErrorHandler(w, styles, err)
}

// newRootCmd creates the root command for the dsignore CLI.
// Running it without a subcommand writes the defaults.
func newRootCmd() *cobra.Command {
	flags := &writeFlags{}

	cmd := &cobra.Command{
		Use:   "dsignore",
		Short: "Create or add to a .gitignore with data science defaults",
		Long: `dsignore - Create or add to an existing .gitignore with data science defaults.

The default block (Python build output, virtual environments, Jupyter
checkpoints, datasets, model artefacts, secrets, editor files) is appended
to the destination ignore file, which is created if needed.

The block opens with a "Start of default ignores" banner. When the banner is
already present the file is left alone, so the command is safe to run
repeatedly. Use --no-guard to append unconditionally.

Nothing is printed on success unless -v is given.

Examples:
  dsignore                        # ./.gitignore
  dsignore -d ~/projects/churn    # ~/projects/churn/.gitignore
  dsignore -d ml/.dockerignore    # that exact file
  dsignore --repo -v              # .gitignore at the git repository root
  dsignore --dry-run --json       # report what would happen`,
		Version:       buildVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runWrite(cmd, flags)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		mode := colorMode(cmd)
		if !output.ValidColorMode(mode) {
			err := output.NewUserError(fmt.Sprintf("invalid --color value %q (want auto, always, or never)", mode))
			newPrinter(cmd).Error(err)
			return err
		}
		noColor := !output.ResolveColorMode(mode, output.IsTTY(cmd.ErrOrStderr()))
		logging.Setup(cmd.ErrOrStderr(), verbosity(cmd), noColor)
		return nil
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("color", "auto", "Colorize output: auto, always, never")
	cmd.PersistentFlags().CountP("verbose", "v", "Verbose logging (repeat for debug)")

	addWriteFlags(cmd, flags)

	// Configure lipgloss for TTY detection
	lipgloss.SetHasDarkBackground(true)

	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}
