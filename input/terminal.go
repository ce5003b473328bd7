package input

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Terminal is an interactive LineSource backed by a bubbletea line editor.
type Terminal struct {
	in        io.Reader
	out       io.Writer
	completer Completer
	style     lipgloss.Style
}

// NewTerminal creates a Terminal reading keys from in and drawing on out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:    in,
		out:   out,
		style: lipgloss.NewRenderer(out).NewStyle().Inherit(promptStyle),
	}
}

// WithCompleter returns a copy of t that offers suggestions from c.
// Tab accepts the current suggestion.
func (t *Terminal) WithCompleter(c Completer) *Terminal {
	cp := *t
	cp.completer = c
	return &cp
}

// ReadLine runs the editor until the user submits, aborts or closes input.
func (t *Terminal) ReadLine(prompt string) (string, error) {
	m := newLineModel(t.style.Render(prompt)+": ", t.completer)

	p := tea.NewProgram(m, tea.WithInput(t.in), tea.WithOutput(t.out))
	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return "", ErrInterrupted
		}
		return "", fmt.Errorf("running line editor: %w", err)
	}

	return final.(*lineModel).result()
}

// lineModel is the bubbletea model for a single line of input
type lineModel struct {
	input     textinput.Model
	completer Completer

	submitted   bool
	interrupted bool
	eof         bool
}

func newLineModel(prompt string, c Completer) *lineModel {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.ShowSuggestions = c != nil
	ti.Focus()

	m := &lineModel{input: ti, completer: c}
	m.refreshSuggestions()
	return m
}

func (m *lineModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *lineModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyCtrlC:
			m.interrupted = true
			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.eof = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.refreshSuggestions()
	return m, cmd
}

func (m *lineModel) View() string {
	if m.done() {
		return m.input.Prompt + m.input.Value() + "\n"
	}
	return m.input.View()
}

func (m *lineModel) done() bool {
	return m.submitted || m.interrupted || m.eof
}

func (m *lineModel) refreshSuggestions() {
	if m.completer == nil {
		return
	}
	m.input.SetSuggestions(m.completer.Complete(m.input.Value()))
}

// result maps the final model state onto the LineSource contract
func (m *lineModel) result() (string, error) {
	switch {
	case m.interrupted:
		return "", ErrInterrupted
	case m.eof:
		return "", io.EOF
	case m.submitted:
		return strings.TrimSpace(m.input.Value()), nil
	default:
		// Program ended without a key we handle (input stream closed)
		return "", io.EOF
	}
}
