package git

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"github.com/gorewood/dsignore/internal/output"
)

// notFoundMessage is reported when the git binary cannot be executed.
const notFoundMessage = "git not found: ensure git is installed and in PATH"

// RunContext executes a git command with the given context and arguments.
// It captures stdout and returns it as a trimmed string.
// Returns an *output.ExitError on failure with appropriate exit code.
func RunContext(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// Check if git is not found
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return "", output.NewSystemError(notFoundMessage)
		}

		// Git command failed - include stderr in message
		errMsg := strings.TrimSpace(stderr.String())
		if errMsg == "" {
			errMsg = err.Error()
		}
		return "", output.NewSystemErrorWithCause("git command failed: "+errMsg, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// RepoRoot returns the root directory of the repository containing dir.
// An empty dir means the current working directory.
// Returns a user error if dir is not inside a git repository.
func RepoRoot(ctx context.Context, dir string) (string, error) {
	args := []string{"rev-parse", "--show-toplevel"}
	if dir != "" {
		args = append([]string{"-C", dir}, args...)
	}

	root, err := RunContext(ctx, args...)
	if err != nil {
		var exitErr *output.ExitError
		if errors.As(err, &exitErr) && exitErr.Message == notFoundMessage {
			return "", err
		}
		return "", output.NewUserErrorWithCause("not in a git repository", err)
	}
	return root, nil
}
