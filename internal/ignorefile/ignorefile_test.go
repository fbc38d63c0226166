package ignorefile

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMarker = "############################\n# Start of default ignores #\n############################\n"

func TestResolve(t *testing.T) {
	root := t.TempDir()
	existingDir := filepath.Join(root, "project")
	require.NoError(t, os.Mkdir(existingDir, 0o755))
	existingFile := filepath.Join(existingDir, "custom.ignore")
	require.NoError(t, os.WriteFile(existingFile, []byte("*.log\n"), 0o600))

	tests := []struct {
		name string
		dest string
		file string
		want string
	}{
		{name: "empty uses default name in cwd", dest: "", want: DefaultName},
		{name: "empty honours custom name", dest: "", file: ".dockerignore", want: ".dockerignore"},
		{name: "directory gets default name", dest: existingDir, want: filepath.Join(existingDir, DefaultName)},
		{name: "directory gets custom name", dest: existingDir, file: ".hgignore", want: filepath.Join(existingDir, ".hgignore")},
		{name: "existing file is used as-is", dest: existingFile, want: existingFile},
		{name: "new file in existing dir is used as-is", dest: filepath.Join(existingDir, "new.ignore"), want: filepath.Join(existingDir, "new.ignore")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.dest, tt.file)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve_MissingParent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "does", "not", "exist")
	dest := filepath.Join(missing, DefaultName)

	got, err := Resolve(dest, "")
	require.Error(t, err)
	assert.Empty(t, got)
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
	assert.Contains(t, err.Error(), missing)

	_, statErr := os.Stat(missing)
	assert.True(t, os.IsNotExist(statErr), "Resolve must not create directories")
}

func TestResolve_EmptyDestChecksNameParent(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name    string
		file    string
		missing string
	}{
		{name: "relative name with missing dir", file: filepath.Join("sub", DefaultName), missing: "sub"},
		{name: "nested relative name", file: filepath.Join("a", "b", ".dockerignore"), missing: filepath.Join("a", "b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve("", tt.file)
			require.Error(t, err)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, ErrDirectoryNotFound)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}

	require.NoError(t, os.Mkdir("sub", 0o755))
	got, err := Resolve("", filepath.Join("sub", DefaultName))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("sub", DefaultName), got)
}

func TestResolve_ParentIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	_, err := Resolve(filepath.Join(file, DefaultName), "")
	assert.ErrorIs(t, err, ErrDirectoryNotFound)
}

func TestHasDefaults(t *testing.T) {
	tests := []struct {
		name    string
		content *string
		want    bool
	}{
		{name: "missing file", content: nil, want: false},
		{name: "empty file", content: ptr(""), want: false},
		{name: "unrelated rules", content: ptr("*.log\nbin/\n"), want: false},
		{name: "marker at start", content: ptr(testMarker + "*.csv\n"), want: true},
		{name: "marker after user rules", content: ptr("*.log\n\n" + testMarker + "*.csv\n"), want: true},
		{name: "partial banner", content: ptr("############################\n# Start of default ignores #\n"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultName)
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o600))
			}

			got, err := HasDefaults(path, testMarker)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasDefaults_ReadError(t *testing.T) {
	// Reading a directory fails with something other than not-exist.
	dir := t.TempDir()

	_, err := HasDefaults(dir, testMarker)
	require.Error(t, err)
	assert.Contains(t, err.Error(), dir)
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, DefaultName)

	assert.False(t, Exists(file))
	assert.False(t, Exists(dir))

	require.NoError(t, os.WriteFile(file, nil, 0o600))
	assert.True(t, Exists(file))
}

func TestAppend_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultName)

	require.NoError(t, Append(path, testMarker+"*.csv\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testMarker+"*.csv\n", string(data))
}

func TestAppend_KeepsExistingContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultName)
	require.NoError(t, os.WriteFile(path, []byte("node_modules/\n"), 0o600))

	require.NoError(t, Append(path, "*.csv\n"))
	require.NoError(t, Append(path, "*.csv\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "node_modules/\n*.csv\n*.csv\n", string(data))
}

func TestAppend_ThenGuard(t *testing.T) {
	dir := t.TempDir()
	path, err := Resolve(dir, "")
	require.NoError(t, err)

	for range 3 {
		present, err := HasDefaults(path, testMarker)
		require.NoError(t, err)
		if !present {
			require.NoError(t, Append(path, testMarker+"*.pkl\n"))
		}
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), testMarker))
}

func TestAppend_OpenError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("directory permissions differ on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	dir := t.TempDir()
	require.NoError(t, os.Chmod(dir, 0o500))
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	path := filepath.Join(dir, DefaultName)
	err := Append(path, "*.csv\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.False(t, Exists(path))
}

func ptr(s string) *string { return &s }
