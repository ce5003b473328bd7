package promptly

import (
	"fmt"

	"github.com/simonhull/promptly/coerce"
	"github.com/simonhull/promptly/prompt"
)

// Optional holds a value that the user may have left out.
type Optional[T any] struct {
	Value T
	Valid bool
}

// Some wraps a present value.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Valid: true}
}

// None returns an absent value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get returns the value and whether it is present.
func (o Optional[T]) Get() (T, bool) {
	return o.Value, o.Valid
}

// OrElse returns the value, or def when absent.
func (o Optional[T]) OrElse(def T) T {
	if !o.Valid {
		return def
	}
	return o.Value
}

func (o Optional[T]) String() string {
	if !o.Valid {
		return "none"
	}
	return fmt.Sprint(o.Value)
}

// MarshalYAML renders an absent value as null.
func (o Optional[T]) MarshalYAML() (any, error) {
	if !o.Valid {
		return nil, nil
	}
	return o.Value, nil
}

// optional lets Ask and AskDefault reach the element type of an Optional
// without knowing it statically.
type optional interface {
	askOptional(e *prompt.Engine, msg string) (any, error)
	// askDefault asks for the element type, returning the receiver on
	// an empty answer.
	askDefault(e *prompt.Engine, msg string) (any, error)
}

func (o Optional[T]) askOptional(e *prompt.Engine, msg string) (any, error) {
	return AskOpt[T](e, msg)
}

func (o Optional[T]) askDefault(e *prompt.Engine, msg string) (any, error) {
	var zero T
	if _, nested := any(zero).(optional); nested {
		return o, fmt.Errorf("%w: %T", ErrNestedOptional, zero)
	}

	k, err := coerce.Lookup[T]()
	if err != nil {
		return o, err
	}

	hint := "(default=none)"
	if o.Valid {
		hint = k.HintFor(o.Value)
	}

	v, err := AskOpt[T](e, prompt.Decorate(msg, hint))
	if err != nil || !v.Valid {
		return o, err
	}
	return v, nil
}
