package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command results to stdout and errors to stderr, or both as
// JSON to stdout when --json is set.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	jsonMode bool

	// label styles the "Error" prefix; note styles the human result message.
	label lipgloss.Style
	note  lipgloss.Style
}

// NewPrinter creates a Printer writing to out. color enables lipgloss
// styling of human output.
func NewPrinter(out io.Writer, jsonMode bool, color bool) *Printer {
	p := &Printer{out: out, errOut: out, jsonMode: jsonMode}
	if color {
		p.label = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
		p.note = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	}
	return p
}

// WithStderr routes human-mode errors to w. JSON errors stay on the main writer.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errOut = w
	return p
}

// JSON reports whether results are encoded as JSON.
func (p *Printer) JSON() bool {
	return p.jsonMode
}

// Result reports a command outcome. In JSON mode the whole map is encoded;
// in human mode only a "message" entry is printed, so a plain write stays silent.
func (p *Printer) Result(fields map[string]any) error {
	if p.jsonMode {
		enc := json.NewEncoder(p.out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(fields); err != nil {
			return fmt.Errorf("encoding JSON: %w", err)
		}
		return nil
	}

	if msg, ok := fields["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.out, p.note.Render(msg)))
	}
	return nil
}

// Raw writes text unchanged, for content that must survive redirection byte-for-byte.
func (p *Printer) Raw(text string) {
	mustWrite(io.WriteString(p.out, text))
}

// Error reports err once. Untyped errors are treated as user errors.
func (p *Printer) Error(err error) {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = NewUserError(err.Error())
	}

	if p.jsonMode {
		mustWrite(p.out.Write(errorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.out))
		return
	}
	mustWrite(fmt.Fprintf(p.errOut, "%s: %s\n", p.label.Render("Error"), exitErr.Message))
}

// errorJSON returns {"error": message, "code": code} as bytes.
func errorJSON(message string, code int) []byte {
	result, _ := json.Marshal(map[string]any{
		"error": message,
		"code":  code,
	})
	return result
}

// mustWrite panics on write failure to stdout, stderr or a buffer,
// where a failure means the process cannot report anything anyway.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}
