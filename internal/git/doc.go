// Package git locates the enclosing Git repository for the dsignore CLI.
//
// Only the repository root is needed: with --repo, dsignore writes the
// defaults into the .gitignore at the top of the working tree instead of the
// current directory. Commands run through the git binary via exec; errors
// come back as *output.ExitError values so the CLI can map them to exit
// codes directly.
package git
