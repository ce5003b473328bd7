// Package input provides the line sources promptly reads answers from.
//
// # Overview
//
// A LineSource shows a prompt and returns one line of text. The prompt
// engine never looks inside a source: editing, rendering and completion are
// the source's business. Two sources ship with the package:
//
//   - Reader: a buffered reader over any io.Reader, for pipes and tests.
//   - Terminal: a bubbletea line editor with optional completion.
//
// # Usage
//
//	plain, paths := input.Open(input.ModeAuto, os.Stdin, os.Stdout)
//	name, err := plain.ReadLine("Enter your name")
//	photo, err := paths.ReadLine("Profile picture")
//
// # Signals
//
// Ctrl+C in a Terminal yields ErrInterrupted. End of input (Ctrl+D on an
// empty Terminal line, or an exhausted Reader) yields io.EOF.
//
// # Styling
//
// Prompts are displayed in cyan and bold and followed by ": ".
package input
