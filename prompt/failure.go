package prompt

import (
	"errors"
	"os"

	"github.com/simonhull/promptly/input"
	"github.com/simonhull/promptly/output"
)

// FailureHandler decides what happens when a line source fails. It is
// called once with the cause before the engine returns the error, and may
// end the process instead of returning.
type FailureHandler interface {
	HandleFailure(err error)
}

// FailureFunc adapts a function to FailureHandler.
type FailureFunc func(err error)

// HandleFailure calls f(err).
func (f FailureFunc) HandleFailure(err error) {
	f(err)
}

// ReturnErrors leaves failures to the caller: the prompt call returns the
// error and nothing else happens. Use it when embedding prompts in a
// long-running program.
func ReturnErrors() FailureHandler {
	return FailureFunc(func(error) {})
}

// ExitOnFailure prints the cause and terminates the process. The message is
// suppressed when the user interrupted the read.
type ExitOnFailure struct {
	Printer *output.Printer // Defaults to stderr
	Code    int             // Exit status; defaults to 1
	Exit    func(code int)  // Defaults to os.Exit
}

// HandleFailure implements FailureHandler.
func (h ExitOnFailure) HandleFailure(err error) {
	if !errors.Is(err, input.ErrInterrupted) {
		p := h.Printer
		if p == nil {
			p = output.NewPrinter(os.Stderr, false)
		}
		p.Error("Error: " + err.Error())
	}

	code := h.Code
	if code == 0 {
		code = 1
	}

	exit := h.Exit
	if exit == nil {
		exit = os.Exit
	}
	exit(code)
}
