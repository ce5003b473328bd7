package coerce

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/simonhull/promptly/prompt"
)

// Kind describes how raw input becomes a T.
type Kind[T any] struct {
	Name  string                  // Type name used in diagnostics and by the CLI
	Parse func(string) (T, error) // Called with trimmed, non-empty input
	Hint  func(T) string          // Default-value hint; nil renders "(default=<v>)"
	Paths bool                    // Read through the path-completing source
}

// Required asks until the answer parses. Empty answers are re-asked.
func (k Kind[T]) Required(e *prompt.Engine, msg string) (T, error) {
	return prompt.Required(k.engine(e), msg, k.Parse)
}

// Optional asks until the answer parses or is empty.
func (k Kind[T]) Optional(e *prompt.Engine, msg string) (T, bool, error) {
	return prompt.Optional(k.engine(e), msg, k.Parse)
}

// Default asks with def shown in the message and returns def for an empty
// answer.
func (k Kind[T]) Default(e *prompt.Engine, msg string, def T) (T, error) {
	return prompt.Fallback(k.engine(e), prompt.Decorate(msg, k.HintFor(def)), k.Parse, def)
}

// HintFor renders the message suffix for a default value.
func (k Kind[T]) HintFor(def T) string {
	if k.Hint != nil {
		return k.Hint(def)
	}
	return prompt.DefaultHint(def)
}

func (k Kind[T]) engine(e *prompt.Engine) *prompt.Engine {
	if k.Paths {
		return e.Paths()
	}
	return e
}

// KindName, AskRequired, AskOptional and AskDefault implement Any.

func (k Kind[T]) KindName() string { return k.Name }

func (k Kind[T]) AskRequired(e *prompt.Engine, msg string) (any, error) {
	return k.Required(e, msg)
}

func (k Kind[T]) AskOptional(e *prompt.Engine, msg string) (any, bool, error) {
	return k.Optional(e, msg)
}

func (k Kind[T]) AskDefault(e *prompt.Engine, msg, def string) (any, error) {
	d, err := k.Parse(def)
	if err != nil {
		return nil, fmt.Errorf("invalid default: %w", err)
	}
	return k.Default(e, msg, d)
}

// Any is a Kind with its type erased, for callers that choose kinds by name.
type Any interface {
	KindName() string
	AskRequired(e *prompt.Engine, msg string) (any, error)
	AskOptional(e *prompt.Engine, msg string) (any, bool, error)
	// AskDefault parses def with the kind's parser before asking.
	AskDefault(e *prompt.Engine, msg, def string) (any, error)
}

// ParseError is the diagnostic for input a Kind rejects.
type ParseError struct {
	Input string
	Type  string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("Could not parse %s as %s.", e.Input, e.Type)
	}
	return fmt.Sprintf("Could not parse %s as %s: %v.", e.Input, e.Type, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseError wraps err for input s, dropping strconv's function prefix.
func parseError(s, typ string, err error) error {
	var numErr *strconv.NumError
	if errors.As(err, &numErr) {
		err = numErr.Err
	}
	return &ParseError{Input: s, Type: typ, Err: err}
}
