// Package output renders command results as styled text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Mode is an output format.
type Mode string

// Output modes.
const (
	ModeText Mode = "text"
	ModeJSON Mode = "json"
)

// Renderer writes command output in one mode.
type Renderer struct {
	out    io.Writer
	errOut io.Writer
	mode   Mode
	styles *Styles
}

// NewRenderer creates a renderer. Colors are used only when out is a
// terminal and NO_COLOR is unset.
func NewRenderer(out, errOut io.Writer, mode Mode) *Renderer {
	return NewRendererWithTTY(out, errOut, isTerminal(out) && !termenv.EnvNoColor(), mode)
}

// NewRendererWithTTY creates a renderer with an explicit terminal state.
func NewRendererWithTTY(out, errOut io.Writer, isTTY bool, mode Mode) *Renderer {
	styles := PlainStyles()
	if isTTY {
		styles = DefaultStyles()
	}
	if mode != ModeJSON {
		mode = ModeText
	}
	return &Renderer{out: out, errOut: errOut, mode: mode, styles: styles}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Mode returns the output mode.
func (r *Renderer) Mode() Mode { return r.mode }

// IsJSON reports whether the renderer writes JSON.
func (r *Renderer) IsJSON() bool { return r.mode == ModeJSON }

// Styles returns the text styles.
func (r *Renderer) Styles() *Styles { return r.styles }

// Println writes a line to standard output.
func (r *Renderer) Println(a ...any) {
	_, _ = fmt.Fprintln(r.out, a...)
}

// Printf writes formatted text to standard output.
func (r *Renderer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(r.out, format, a...)
}

// Warnf writes a formatted warning to standard error.
func (r *Renderer) Warnf(format string, a ...any) {
	_, _ = fmt.Fprintln(r.errOut, r.styles.Warning.Render(fmt.Sprintf(format, a...)))
}

// JSON writes v as indented JSON.
func (r *Renderer) JSON(v any) error {
	enc := json.NewEncoder(r.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// Table writes a light-style table with a header row.
func (r *Renderer) Table(header []string, rows [][]string) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	headerRow := make(table.Row, len(header))
	for i, h := range header {
		headerRow[i] = r.styles.Bold.Render(h)
	}
	t.AppendHeader(headerRow)

	for _, row := range rows {
		tr := make(table.Row, len(row))
		for i, v := range row {
			tr[i] = v
		}
		t.AppendRow(tr)
	}
	t.Render()
}
