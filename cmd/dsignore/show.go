package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	var templatePath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the default ignore block",
		Long: `Print the default ignore block exactly as it would be appended.

The template is resolved the same way as for writing: --template, then
default_ignores next to the dsignore binary, then default_ignores in the
config directory, then the built-in copy.

Examples:
  dsignore show                   # print the effective template
  dsignore show -v                # also log where it came from
  dsignore show --json            # source, path, content, has_marker`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runShow(cmd, templatePath)
		},
	}

	cmd.Flags().StringVar(&templatePath, "template", "", "Show this template file instead of the resolved one")

	return cmd
}

// runShow prints the effective template.
func runShow(cmd *cobra.Command, templatePath string) error {
	printer := newPrinter(cmd)

	settings, err := loadSettings()
	if err != nil {
		return fail(printer, err)
	}

	tmpl, err := loadTemplate(firstNonEmpty(templatePath, settings.Template))
	if err != nil {
		return fail(printer, err)
	}
	log.Info().Str("source", tmpl.Source).Str("template", tmpl.Path).Msg("Showing template")

	if printer.JSON() {
		return printer.Result(map[string]any{
			"source":     tmpl.Source,
			"path":       tmpl.Path,
			"content":    tmpl.Content,
			"has_marker": tmpl.HasMarker(),
		})
	}

	printer.Raw(tmpl.Content)
	return nil
}
