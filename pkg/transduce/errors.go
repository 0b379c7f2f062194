package transduce

import "errors"

var (
	// ErrNotCallable is returned when a composition operand that must be
	// callable is not.
	ErrNotCallable = errors.New("transduce: operand is not callable")

	// ErrNotIterable is returned when a sequence step (Map, Filter,
	// Reduce) is applied to a value that cannot be iterated.
	ErrNotIterable = errors.New("transduce: value is not iterable")

	// ErrEmptySequence is returned by a Reduce step with no initial
	// value applied to an empty sequence.
	ErrEmptySequence = errors.New("transduce: reduce of empty sequence with no initial value")

	// ErrArgument is returned when a value fed through the pipeline does
	// not fit the parameter type of an adapted function.
	ErrArgument = errors.New("transduce: argument type mismatch")
)
