package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrInterrupted is returned when the user aborts a read (Ctrl+C).
var ErrInterrupted = errors.New("input interrupted")

// LineSource reads one line of text from the user.
//
// ReadLine displays prompt and blocks until a line is available. It returns
// ErrInterrupted when the user aborts, io.EOF when input is exhausted and
// any other error when the underlying stream fails.
type LineSource interface {
	ReadLine(prompt string) (string, error)
}

// Mode selects which LineSource Open builds for stdin.
type Mode string

const (
	// ModeAuto uses the terminal editor when stdin is a terminal.
	ModeAuto Mode = "auto"
	// ModeAlways forces the terminal editor.
	ModeAlways Mode = "always"
	// ModeNever forces the plain reader.
	ModeNever Mode = "never"
)

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(strings.TrimSpace(s))); m {
	case ModeAuto, ModeAlways, ModeNever:
		return m, nil
	case "":
		return ModeAuto, nil
	default:
		return ModeAuto, fmt.Errorf("unknown input mode %q (want auto, always or never)", s)
	}
}

// Open returns the plain and path-completing sources reading in and
// prompting on out. In ModeAuto the terminal editor is used only when in is
// a terminal file. When the plain reader is used both values are the same
// Reader, so piped input buffered by one is visible to the other.
//
// Example:
//
//	plain, paths := input.Open(input.ModeAuto, os.Stdin, os.Stderr)
func Open(mode Mode, in io.Reader, out io.Writer) (plain, paths LineSource) {
	interactive := mode == ModeAlways || (mode != ModeNever && isTerminal(in))

	if interactive {
		t := NewTerminal(in, out)
		return t, t.WithCompleter(FilenameCompleter{})
	}

	r := NewReader(in, out)
	return r, r
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd()))
}

var promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)

// Reader is a LineSource over a plain byte stream.
type Reader struct {
	in    *bufio.Reader
	out   io.Writer
	style lipgloss.Style
}

// NewReader creates a Reader that prints prompts to out and reads lines from in.
func NewReader(in io.Reader, out io.Writer) *Reader {
	if out == nil {
		out = io.Discard
	}
	return &Reader{
		in:    bufio.NewReader(in),
		out:   out,
		style: lipgloss.NewRenderer(out).NewStyle().Inherit(promptStyle),
	}
}

// ReadLine prints the prompt followed by ": " and reads up to the next newline.
// A final line without a trailing newline is still returned as a line.
//
// Example:
//
//	name, err := r.ReadLine("Module path (github.com/username/myapp)")
//	// Displays: Module path (github.com/username/myapp): _
func (r *Reader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, r.style.Render(prompt)+": ")

	line, err := r.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}

	return strings.TrimSpace(line), nil
}
