// Package prompt implements the retry loop behind every promptly prompt.
//
// # Overview
//
// An Engine owns a LineSource and asks it for lines until an answer is
// accepted. All typed prompts reduce to Then with a suitable handler:
//
//   - Required: empty answers print "Value is required." and re-ask.
//   - Optional: empty answers return ok == false.
//   - WithDefault: empty answers return the default, shown in the message.
//
// A rejected answer prints one diagnostic line and the identical message is
// asked again. There is no retry limit.
//
// # Usage
//
//	e := prompt.NewEngine(&prompt.Options{Source: input.NewReader(os.Stdin, os.Stdout)})
//	age, err := prompt.Required(e, "Enter your age", strconv.Atoi)
//
// # Failures
//
// Line source failures (Ctrl+C, closed input, read errors) are never
// retried. The engine passes them to its FailureHandler and returns them
// wrapped in *Error:
//
//   - ReturnErrors (the default) leaves the decision to the caller.
//   - ExitOnFailure prints the cause and exits the process.
package prompt
