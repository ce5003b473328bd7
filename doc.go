// Package promptly asks the user for typed values on the command line.
//
// Each prompt repeats until the answer coerces into the requested type.
// Bad answers get a one-line diagnostic and the same question again:
//
//	Enter your age:
//	Value is required.
//	Enter your age: abc
//	Could not parse abc as uint32: invalid syntax.
//	Enter your age: 42
//
// Three forms are offered. Ask requires an answer, AskOpt accepts an empty
// one as "no value", and AskDefault substitutes a default that is shown in
// the message:
//
//	name, err := promptly.Ask[string](e, "Enter your name")
//	photo, err := promptly.AskOpt[coerce.Path](e, "Enter a path to a profile picture")
//	year, err := promptly.AskDefault(e, "Enter the year", 2018)
//
// Prompt, PromptOpt and PromptDefault do the same on a process-wide engine
// configured from promptly.yml and PROMPTLY_* variables. That engine exits
// the process when stdin fails. To get the error back instead, pass a nil
// config to NewEngine or NewEngineWith, or one whose OnFailure is
// config.FailReturn:
//
//	e := promptly.NewEngine(nil)
//	if _, err := promptly.Ask[int](e, "Count"); errors.Is(err, io.EOF) { ... }
//
// Supported types are registered in package coerce. Any type whose pointer
// implements encoding.TextUnmarshaler works without registration.
package promptly

// Version is reported by the promptly command.
const Version = "0.1.0"
