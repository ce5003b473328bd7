package testutil

import (
	"bytes"
	"io"
	"testing"

	"github.com/simonhull/promptly/output"
	"github.com/simonhull/promptly/prompt"
)

// Script is a line source that replays canned answers and records every
// prompt it was shown. Once the answers run out it returns Err, or io.EOF
// when Err is nil.
type Script struct {
	Lines   []string
	Prompts []string
	Err     error
}

// NewScript creates a Script answering with lines in order
func NewScript(lines ...string) *Script {
	return &Script{Lines: lines}
}

// ReadLine implements input.LineSource
func (s *Script) ReadLine(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if len(s.Lines) == 0 {
		if s.Err != nil {
			return "", s.Err
		}
		return "", io.EOF
	}
	line := s.Lines[0]
	s.Lines = s.Lines[1:]
	return line, nil
}

// Engine bundles an engine with the script feeding it and the buffer its
// diagnostics go to.
type Engine struct {
	*prompt.Engine
	Source      *Script
	Paths       *Script
	Diagnostics *bytes.Buffer
}

// NewEngine creates an engine whose plain source answers with lines and
// whose path source answers with nothing until Paths.Lines is set.
func NewEngine(t *testing.T, lines ...string) *Engine {
	t.Helper()

	src := NewScript(lines...)
	paths := NewScript()
	diag := &bytes.Buffer{}

	return &Engine{
		Engine: prompt.NewEngine(&prompt.Options{
			Source:     src,
			PathSource: paths,
			Printer:    output.NewPrinter(diag, true),
		}),
		Source:      src,
		Paths:       paths,
		Diagnostics: diag,
	}
}
