package prompt

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/simonhull/promptly/input"
	"github.com/simonhull/promptly/logger"
	"github.com/simonhull/promptly/output"
)

// DefaultRequiredMessage is printed when a required prompt gets empty input.
const DefaultRequiredMessage = "Value is required."

// ErrValueRequired rejects empty input for required prompts.
var ErrValueRequired = errors.New(DefaultRequiredMessage)

// Error reports a line source failure for a prompt. The retry loop never
// produces it for invalid answers.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("prompt %q: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Options configures an Engine
type Options struct {
	Source          input.LineSource // Where answers come from (required)
	PathSource      input.LineSource // Source for path prompts; defaults to Source
	Printer         *output.Printer  // Diagnostics stream; defaults to stderr
	OnFailure       FailureHandler   // Called on line source failure; defaults to ReturnErrors
	Logger          logger.Logger    // Defaults to a silent logger
	RequiredMessage string           // Defaults to DefaultRequiredMessage
}

// Engine turns prompt requests into validated values by re-asking until an
// answer is accepted or the line source fails. An Engine is not safe for
// concurrent use.
type Engine struct {
	source      input.LineSource
	pathSource  input.LineSource
	printer     *output.Printer
	onFailure   FailureHandler
	log         logger.Logger
	requiredMsg string
}

// NewEngine creates an engine with sensible defaults.
// It panics if opts or opts.Source is nil.
func NewEngine(opts *Options) *Engine {
	if opts == nil || opts.Source == nil {
		panic("prompt: NewEngine requires a line source")
	}

	e := &Engine{
		source:      opts.Source,
		pathSource:  opts.PathSource,
		printer:     opts.Printer,
		onFailure:   opts.OnFailure,
		log:         opts.Logger,
		requiredMsg: opts.RequiredMessage,
	}

	// Set defaults for nil fields
	if e.pathSource == nil {
		e.pathSource = e.source
	}
	if e.printer == nil {
		e.printer = output.NewPrinter(os.Stderr, false)
	}
	if e.onFailure == nil {
		e.onFailure = ReturnErrors()
	}
	if e.log == nil {
		e.log = logger.NewSilentLogger()
	}
	if e.requiredMsg == "" {
		e.requiredMsg = DefaultRequiredMessage
	}

	return e
}

// Paths returns an engine that reads through the path-completing source.
func (e *Engine) Paths() *Engine {
	cp := *e
	cp.source = e.pathSource
	return &cp
}

// Printer returns the printer diagnostics are written to.
func (e *Engine) Printer() *output.Printer {
	return e.printer
}

// Then is the retry primitive every typed prompt is built on. It reads a
// line, trims it and hands it to handler. A handler error is printed as a
// diagnostic and the identical message is asked again; there is no retry
// limit. A line source error ends the loop: the failure handler sees it and
// it is returned as an *Error.
func Then[U any](e *Engine, msg string, handler func(string) (U, error)) (U, error) {
	var zero U
	log := e.log.WithFields(logger.F("message", msg))

	for attempt := 1; ; attempt++ {
		log.Debug("prompting", logger.F("attempt", attempt))

		line, err := e.source.ReadLine(msg)
		if err != nil {
			return zero, e.fail(msg, err)
		}

		v, err := handler(strings.TrimSpace(line))
		if err == nil {
			return v, nil
		}

		log.Debug("answer rejected",
			logger.F("attempt", attempt),
			logger.F("reason", err.Error()),
		)
		e.report(err)
	}
}

// Required asks until a non-empty answer parses. Empty answers print the
// required notice and are asked again.
func Required[T any](e *Engine, msg string, parse func(string) (T, error)) (T, error) {
	return Then(e, msg, func(s string) (T, error) {
		if s == "" {
			var zero T
			return zero, ErrValueRequired
		}
		return parse(s)
	})
}

// Optional asks until the answer parses or is empty. An empty answer
// returns ok == false without calling parse.
func Optional[T any](e *Engine, msg string, parse func(string) (T, error)) (v T, ok bool, err error) {
	type answer struct {
		v  T
		ok bool
	}

	a, err := Then(e, msg, func(s string) (answer, error) {
		if s == "" {
			return answer{}, nil
		}
		v, err := parse(s)
		if err != nil {
			return answer{}, err
		}
		return answer{v: v, ok: true}, nil
	})
	return a.v, a.ok, err
}

// WithDefault decorates msg with the default and returns def for empty
// answers. def itself is never parsed.
//
// Example:
//
//	year, err := prompt.WithDefault(e, "Enter the year", parseInt, 2018)
//	// Displays: Enter the year (default=2018): _
func WithDefault[T any](e *Engine, msg string, parse func(string) (T, error), def T) (T, error) {
	return Fallback(e, Decorate(msg, DefaultHint(def)), parse, def)
}

// Fallback is WithDefault without decoration, for callers that render their
// own hint.
func Fallback[T any](e *Engine, msg string, parse func(string) (T, error), def T) (T, error) {
	v, ok, err := Optional(e, msg, parse)
	if err != nil {
		return v, err
	}
	if !ok {
		return def, nil
	}
	return v, nil
}

// Decorate appends a hint to a prompt message.
func Decorate(msg, hint string) string {
	if hint == "" {
		return msg
	}
	return msg + " " + hint
}

// DefaultHint renders a default value as "(default=<value>)".
func DefaultHint(v any) string {
	return fmt.Sprintf("(default=%v)", v)
}

func (e *Engine) report(err error) {
	if errors.Is(err, ErrValueRequired) {
		e.printer.Notice(e.requiredMsg)
		return
	}
	e.printer.Diagnostic(err.Error())
}

func (e *Engine) fail(msg string, err error) error {
	e.log.Warn("line source failed", logger.F("message", msg), logger.F("error", err))
	e.onFailure.HandleFailure(err)
	return &Error{Message: msg, Err: err}
}
