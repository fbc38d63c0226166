// Package output provides structured output handling for the dsignore CLI.
//
// dsignore is quiet by default: a successful run in human mode prints
// nothing, and progress is reported through the logger instead. The Printer
// covers the remaining cases, namely results requested with --json, the
// show and check commands, and errors.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, color).WithStderr(cmd.ErrOrStderr())
//
//	printer.Result(map[string]any{"status": "written", "path": path})
//	printer.Error(err)
//
// # JSON Mode
//
// When JSON mode is enabled (via --json flag), all output is structured:
//
//	// Success: {"status": "...", "path": "...", ...}
//	// Error: {"error": "message", "code": N}
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad destination, bad flags)
//	output.ExitSystemError // 2: System error (missing template, I/O error)
package output
