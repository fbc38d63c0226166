package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/gorewood/dsignore/internal/defaults"
)

// runInDir runs testFunc with dir as the working directory.
func runInDir(t *testing.T, dir string, testFunc func()) {
	t.Helper()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working dir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to chdir to %s: %v", dir, err)
	}
	defer func() {
		if err := os.Chdir(oldDir); err != nil {
			t.Errorf("failed to restore dir: %v", err)
		}
	}()
	testFunc()
}

// isolateConfig points the config directory at an empty temp dir and returns it.
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("DSIGNORE_CONFIG_HOME", dir)
	return dir
}

// execute runs the root command with args and returns stdout and stderr.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// builtinContent returns the bundled template.
func builtinContent(t *testing.T) string {
	t.Helper()
	tmpl, err := defaults.Load(defaults.Options{})
	if err != nil {
		t.Fatalf("loading built-in template: %v", err)
	}
	return tmpl.Content
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}
