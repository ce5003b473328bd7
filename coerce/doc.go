// Package coerce holds the rules that turn a line of input into a typed
// value.
//
// A Kind[T] bundles a parser, a default-value hint and the choice of line
// source. Builtin kinds cover text, booleans, paths, integers, floats, IP
// addresses, address:port pairs, URLs and durations. Any other type whose
// pointer implements encoding.TextUnmarshaler is handled by Lookup without
// registration.
//
//	k, err := coerce.Lookup[int]()
//	age, err := k.Required(engine, "Enter your age")
//
// Booleans accept true/yes/y and false/no/n in any case and show "(Y/n)" or
// "(y/N)" as their default hint. Paths expand a leading "~" to HOME and are
// read with filename completion.
package coerce
