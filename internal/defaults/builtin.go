package defaults

import (
	"embed"
	"fmt"
)

//go:embed templates/default_ignores
var builtinFS embed.FS

// builtinPath is the location of the bundled template inside builtinFS.
const builtinPath = "templates/" + FileName

// loadBuiltin returns the template compiled into the binary.
func loadBuiltin() (*Template, error) {
	data, err := builtinFS.ReadFile(builtinPath)
	if err != nil {
		return nil, fmt.Errorf("reading builtin template %s: %w", builtinPath, err)
	}
	return &Template{Content: string(data), Source: SourceBuiltin}, nil
}
