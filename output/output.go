package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Printer writes styled lines to a single stream.
type Printer struct {
	out     io.Writer
	verbose bool

	diagnosticStyle lipgloss.Style
	noticeStyle     lipgloss.Style
	successStyle    lipgloss.Style
	errorStyle      lipgloss.Style
	infoStyle       lipgloss.Style
	stepStyle       lipgloss.Style
}

// NewPrinter creates a Printer for w. A nil writer means stderr.
// When noColor is set all styling is reduced to plain text.
func NewPrinter(w io.Writer, noColor bool) *Printer {
	if w == nil {
		w = os.Stderr
	}

	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}

	return &Printer{
		out:             w,
		diagnosticStyle: r.NewStyle().Foreground(lipgloss.Color("1")),
		noticeStyle:     r.NewStyle().Foreground(lipgloss.Color("3")),
		successStyle:    r.NewStyle().Foreground(lipgloss.Color("2")).Bold(true),
		errorStyle:      r.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
		infoStyle:       r.NewStyle().Foreground(lipgloss.Color("6")),
		stepStyle:       r.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// Writer returns the stream the Printer writes to.
func (p *Printer) Writer() io.Writer {
	return p.out
}

// SetVerbose enables or disables verbose output for debugging.
func (p *Printer) SetVerbose(v bool) {
	p.verbose = v
}

// Diagnostic prints why the last answer was rejected.
//
// Example:
//
//	p.Diagnostic("Could not parse abc as int: invalid syntax.")
func (p *Printer) Diagnostic(msg string) {
	p.println(p.diagnosticStyle, msg)
}

// Notice prints a non-error hint, such as the required-value reminder.
func (p *Printer) Notice(msg string) {
	p.println(p.noticeStyle, msg)
}

// Success prints a success message with 🔥 emoji and green color.
func (p *Printer) Success(msg string) {
	p.println(p.successStyle, "🔥 "+msg)
}

// Error prints an error message with ❌ emoji and red color.
// Use this for failures that need user attention.
func (p *Printer) Error(msg string) {
	p.println(p.errorStyle, "❌ "+msg)
}

// Info prints an informational message with ℹ️ emoji and cyan color.
func (p *Printer) Info(msg string) {
	p.println(p.infoStyle, "ℹ️  "+msg)
}

// Step prints an indented step message in gray.
//
// Example:
//
//	p.Step("age: 30")
func (p *Printer) Step(msg string) {
	p.println(p.stepStyle, "   "+msg)
}

// Verbose prints a debug message with 🔍 emoji only if verbose mode is enabled.
func (p *Printer) Verbose(msg string) {
	if p.verbose {
		p.println(p.stepStyle, "🔍 "+msg)
	}
}

func (p *Printer) println(style lipgloss.Style, msg string) {
	fmt.Fprintln(p.out, style.Render(msg))
}
