// Package format renders match records as display lines.
//
// The display form is
//
//	<path> (line <N>): <content>
//
// Styling is configuration passed to New, never global state: with styling
// disabled the output is plain text; with it enabled the path and the
// "(line N)" tag are each wrapped in an ANSI color sequence and a reset.
package format

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/vvka-141/tsea/internal/tui"
	"github.com/vvka-141/tsea/pkg/tsea"
)

// Style configures the decoration of formatted lines.
type Style struct {
	Enabled bool
	Palette tui.Palette
}

// PlainStyle returns a Style that produces undecorated output.
func PlainStyle() Style {
	return Style{Palette: tui.DefaultPalette()}
}

// ColorStyle returns a Style that colors output with the default palette.
func ColorStyle() Style {
	return Style{Enabled: true, Palette: tui.DefaultPalette()}
}

// Formatter turns MatchRecords into display lines.
// Formatter is immutable after construction and safe for concurrent use.
type Formatter struct {
	enabled   bool
	pathStyle lipgloss.Style
	lineStyle lipgloss.Style
}

// New creates a Formatter for the given style.
//
// The renderer is pinned to the 256-color profile instead of probing the
// output: whether to color is decided by the caller through Style.Enabled.
func New(style Style) *Formatter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.ANSI256)

	return &Formatter{
		enabled: style.Enabled,
		pathStyle: r.NewStyle().
			Foreground(style.Palette.Path).
			TabWidth(lipgloss.NoTabConversion),
		lineStyle: r.NewStyle().
			Foreground(style.Palette.Line),
	}
}

// Format renders a single record.
func (f *Formatter) Format(rec tsea.MatchRecord) string {
	tag := fmt.Sprintf("(line %d)", rec.Line)
	if !f.enabled {
		return fmt.Sprintf("%s %s: %s", rec.Path, tag, rec.Content)
	}
	return fmt.Sprintf("%s %s: %s", f.pathStyle.Render(rec.Path), f.lineStyle.Render(tag), rec.Content)
}

// Write renders rec followed by a newline to w.
func (f *Formatter) Write(w io.Writer, rec tsea.MatchRecord) error {
	_, err := fmt.Fprintln(w, f.Format(rec))
	return err
}
