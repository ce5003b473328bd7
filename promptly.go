package promptly

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/simonhull/promptly/coerce"
	"github.com/simonhull/promptly/config"
	"github.com/simonhull/promptly/input"
	"github.com/simonhull/promptly/logger"
	"github.com/simonhull/promptly/output"
	"github.com/simonhull/promptly/prompt"
)

// ErrNestedOptional is returned, before any input is read, when an optional
// prompt is requested for a type that is already Optional.
var ErrNestedOptional = errors.New("optional of optional is not supported")

// Ask prompts until the answer coerces into T. Empty answers are re-asked,
// except for Optional targets, which accept them as "no value".
//
// Example:
//
//	name, err := promptly.Ask[string](e, "Enter your name")
//	age, err := promptly.Ask[uint32](e, "Enter your age")
func Ask[T any](e *prompt.Engine, msg string) (T, error) {
	var zero T
	if o, ok := any(zero).(optional); ok {
		v, err := o.askOptional(e, msg)
		if err != nil {
			return zero, err
		}
		return v.(T), nil
	}

	k, err := coerce.Lookup[T]()
	if err != nil {
		return zero, err
	}
	return k.Required(e, msg)
}

// AskOpt prompts until the answer coerces into T or is empty.
//
// Example:
//
//	photo, err := promptly.AskOpt[coerce.Path](e, "Enter a path to a profile picture")
//	if p, ok := photo.Get(); ok { ... }
func AskOpt[T any](e *prompt.Engine, msg string) (Optional[T], error) {
	var zero T
	if _, ok := any(zero).(optional); ok {
		return Optional[T]{}, fmt.Errorf("%w: %T", ErrNestedOptional, zero)
	}

	k, err := coerce.Lookup[T]()
	if err != nil {
		return Optional[T]{}, err
	}

	v, ok, err := k.Optional(e, msg)
	if err != nil || !ok {
		return Optional[T]{}, err
	}
	return Some(v), nil
}

// AskDefault prompts with def shown in the message and returns def for an
// empty answer. Booleans show "(Y/n)" or "(y/N)" instead of the value.
//
// Example:
//
//	ok, err := promptly.AskDefault(e, "Would you like to receive marketing emails", true)
//	// Displays: Would you like to receive marketing emails (Y/n): _
func AskDefault[T any](e *prompt.Engine, msg string, def T) (T, error) {
	if o, ok := any(def).(optional); ok {
		v, err := o.askDefault(e, msg)
		if err != nil {
			var zero T
			return zero, err
		}
		return v.(T), nil
	}

	k, err := coerce.Lookup[T]()
	if err != nil {
		var zero T
		return zero, err
	}
	return k.Default(e, msg, def)
}

// Prompt is Ask on the default engine.
func Prompt[T any](msg string) (T, error) {
	return Ask[T](Default(), msg)
}

// PromptOpt is AskOpt on the default engine.
func PromptOpt[T any](msg string) (Optional[T], error) {
	return AskOpt[T](Default(), msg)
}

// PromptDefault is AskDefault on the default engine.
func PromptDefault[T any](msg string, def T) (T, error) {
	return AskDefault(Default(), msg, def)
}

// NewEngine builds an engine reading stdin and writing prompts to stdout,
// configured by cfg. A nil cfg means config.Default() with the return
// policy, so input failures come back as errors instead of exiting.
func NewEngine(cfg *config.Config) *prompt.Engine {
	cfg = orEmbedded(cfg)
	plain, paths := input.Open(cfg.Mode(), os.Stdin, os.Stdout)
	return NewEngineWith(cfg, plain, paths, os.Stdout, os.Stderr)
}

// NewEngineWith builds an engine over caller-supplied sources. cfg picks
// which of stdout and stderr carries diagnostics; log output goes to stderr.
// A nil cfg is treated as in NewEngine.
func NewEngineWith(cfg *config.Config, plain, paths input.LineSource, stdout, stderr io.Writer) *prompt.Engine {
	cfg = orEmbedded(cfg)
	diag := stderr
	if cfg.Diagnostics == config.StreamStdout {
		diag = stdout
	}
	printer := output.NewPrinter(diag, cfg.NoColor)

	onFailure := prompt.ReturnErrors()
	if cfg.OnFailure == config.FailExit {
		onFailure = prompt.ExitOnFailure{Printer: printer, Code: cfg.ExitCode}
	}

	return prompt.NewEngine(&prompt.Options{
		Source:          plain,
		PathSource:      paths,
		Printer:         printer,
		OnFailure:       onFailure,
		Logger:          logger.NewLogger(cfg.Level(), stderr),
		RequiredMessage: cfg.RequiredMessage,
	})
}

// orEmbedded returns cfg, or the defaults with the return policy when cfg
// is nil.
func orEmbedded(cfg *config.Config) *config.Config {
	if cfg != nil {
		return cfg
	}
	cfg = config.Default()
	cfg.OnFailure = config.FailReturn
	return cfg
}

var (
	defaultMu     sync.Mutex
	defaultEngine *prompt.Engine
)

// Default returns the engine used by Prompt, PromptOpt and PromptDefault.
// It is built on first use from config.Load(""); unless configured
// otherwise it exits the process when input fails.
func Default() *prompt.Engine {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultEngine == nil {
		cfg, err := config.Load("")
		if err != nil {
			logger.Default().Warn("using default prompt configuration", logger.F("error", err))
			cfg = config.Default()
		}
		defaultEngine = NewEngine(cfg)
	}
	return defaultEngine
}

// SetDefault replaces the engine used by the package-level prompts.
func SetDefault(e *prompt.Engine) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultEngine = e
}
