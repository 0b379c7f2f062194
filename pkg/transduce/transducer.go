package transduce

import (
	"fmt"
	"iter"
	"reflect"

	"github.com/ib-77/transduce/pkg/transduce/seqs"
)

// Call wraps fn as a single-step chain that applies fn to its argument.
// Call panics if fn is not callable: factories reject programmer errors
// eagerly, composition operands are rejected with ErrNotCallable at
// composition time instead.
func Call(fn any) *Chain {
	t, ok := asTransform(fn)
	if !ok {
		panic("transduce: Call: fn is not callable")
	}
	return newChain(NewUnit(t, fmt.Sprintf("Call(%s)", funcLabel(fn))))
}

// Map returns a chain step that turns a sequence into the lazy sequence
// of fn applied to each element, in order. Nothing is computed until
// the resulting sequence is consumed, and it can be consumed only once.
//
// Map panics if fn is not callable.
func Map(fn any) *Chain {
	t, ok := asTransform(fn)
	if !ok {
		panic("transduce: Map: fn is not callable")
	}

	step := func(in any) (any, error) {
		s, err := toSeq(in)
		if err != nil {
			return nil, err
		}
		return seqs.MapErr(s, func(v any) (any, error) {
			return t(v)
		}), nil
	}
	return newChain(NewUnit(step, fmt.Sprintf("Map(%s)", funcLabel(fn))))
}

// Filter returns a chain step that turns a sequence into the lazy
// sequence of elements whose predicate result is truthy, in order. With
// no predicate the element itself is the test, so zero values, empty
// strings and empty collections are dropped.
//
// Filter panics when given a non-callable predicate or more than one.
func Filter(pred ...any) *Chain {
	if len(pred) > 1 {
		panic("transduce: Filter: at most one predicate")
	}

	p := Transform(func(in any) (any, error) {
		return in, nil
	})
	label := "Filter(Truthy)"
	if len(pred) == 1 {
		t, ok := asTransform(pred[0])
		if !ok {
			panic("transduce: Filter: pred is not callable")
		}
		p = t
		label = fmt.Sprintf("Filter(%s)", funcLabel(pred[0]))
	}

	step := func(in any) (any, error) {
		s, err := toSeq(in)
		if err != nil {
			return nil, err
		}
		return seqs.FilterErr(s, func(v any) (bool, error) {
			r, err := p(v)
			if err != nil {
				return false, err
			}
			return Truthy(r), nil
		}), nil
	}
	return newChain(NewUnit(step, label))
}

// Reduce returns a chain step that eagerly folds a sequence into a
// single value, strictly left to right.
//
// With no initial value the first element seeds the accumulator and the
// fold starts from the second; an empty sequence then fails with
// ErrEmptySequence. With an initial value the fold covers every
// element, and an empty sequence returns the initial value unchanged.
//
// Reduce panics when fn is not a two-argument callable or when more
// than one initial value is given.
func Reduce(fn any, initial ...any) *Chain {
	acc, ok := asAccumulator(fn)
	if !ok {
		panic("transduce: Reduce: fn is not a two-argument callable")
	}
	if len(initial) > 1 {
		panic("transduce: Reduce: at most one initial value")
	}

	var seed any
	seeded := len(initial) == 1
	if seeded {
		seed = initial[0]
	}

	step := func(in any) (any, error) {
		s, err := toSeq(in)
		if err != nil {
			return nil, err
		}

		next, stop := iter.Pull(s.All())
		defer stop()

		var result any
		if seeded {
			result = seed
		} else {
			first, ok := next()
			if !ok {
				if err := s.Err(); err != nil {
					return nil, err
				}
				return nil, ErrEmptySequence
			}
			result = first
		}

		for {
			v, ok := next()
			if !ok {
				break
			}
			result, err = acc(result, v)
			if err != nil {
				return nil, err
			}
		}
		if err := s.Err(); err != nil {
			return nil, err
		}
		return result, nil
	}

	label := funcLabel(fn)
	if seeded {
		label = fmt.Sprintf("%s, %v", label, seed)
	}
	return newChain(NewUnit(step, label))
}

// toSeq coerces a step input into a lazy sequence. Accepted inputs are
// a *seqs.Seq produced by an upstream step, an iter.Seq, any slice or
// array, and strings (iterated rune by rune as one-character strings).
func toSeq(in any) (*seqs.Seq[any], error) {
	switch s := in.(type) {
	case *seqs.Seq[any]:
		return s, nil
	case iter.Seq[any]:
		return seqs.From(s), nil
	case func(func(any) bool):
		return seqs.From(iter.Seq[any](s)), nil
	case []any:
		return seqs.FromSlice(s), nil
	}

	rv := reflect.ValueOf(in)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return seqs.From[any](func(yield func(any) bool) {
			for i := range rv.Len() {
				if !yield(rv.Index(i).Interface()) {
					return
				}
			}
		}), nil
	case reflect.String:
		str := rv.String()
		return seqs.From[any](func(yield func(any) bool) {
			for _, r := range str {
				if !yield(string(r)) {
					return
				}
			}
		}), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrNotIterable, in)
}
