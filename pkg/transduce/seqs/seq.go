package seqs

import "iter"

// Seq is a lazy, single-pass stream of values of type T.
//
// The zero value is not usable; construct with From, FromSlice, Of or
// Empty. A Seq must be consumed at most once, by a single consumer.
type Seq[T any] struct {
	src      iter.Seq[T]
	consumed bool
	err      error
}

// From wraps an iter.Seq into a single-pass Seq.
func From[T any](src iter.Seq[T]) *Seq[T] {
	return &Seq[T]{src: src}
}

// FromSlice returns a Seq yielding the elements of in, in order.
func FromSlice[T any](in []T) *Seq[T] {
	return From[T](func(yield func(T) bool) {
		for _, v := range in {
			if !yield(v) {
				return
			}
		}
	})
}

// Of returns a Seq yielding the given values, in order.
func Of[T any](vs ...T) *Seq[T] {
	return FromSlice(vs)
}

// Empty returns a Seq that yields nothing.
func Empty[T any]() *Seq[T] {
	return From[T](func(yield func(T) bool) {})
}

// All returns the iterator over the stream's values. It may be called
// exactly once; a second call panics, because the underlying values are
// gone and re-iterating would silently yield nothing.
func (s *Seq[T]) All() iter.Seq[T] {
	if s.consumed {
		panic("seqs: stream already consumed")
	}
	s.consumed = true
	return s.src
}

// Collect consumes the stream into a slice. The returned error is the
// deferred stage error, if any stage failed mid-stream.
func (s *Seq[T]) Collect() ([]T, error) {
	out := make([]T, 0)
	for v := range s.All() {
		out = append(out, v)
	}
	return out, s.err
}

// Err reports the error recorded by a failed stage function. It is only
// meaningful after the stream has been iterated.
func (s *Seq[T]) Err() error {
	return s.err
}

// Consumed reports whether the stream has already been claimed for
// iteration.
func (s *Seq[T]) Consumed() bool {
	return s.consumed
}

// MapErr derives a lazy Seq yielding fn(v) for each value of s, in
// order. A non-nil error from fn stops the derived stream and is
// recorded on it. An error already recorded on s is inherited.
//
// The parent stream is claimed only when the derived stream is
// consumed.
func MapErr[T, R any](s *Seq[T], fn func(T) (R, error)) *Seq[R] {
	d := &Seq[R]{}
	d.src = func(yield func(R) bool) {
		for v := range s.All() {
			r, err := fn(v)
			if err != nil {
				d.err = err
				return
			}
			if !yield(r) {
				return
			}
		}
		d.err = s.err
	}
	return d
}

// Map derives a lazy Seq yielding fn(v) for each value of s, in order.
func Map[T, R any](s *Seq[T], fn func(T) R) *Seq[R] {
	return MapErr(s, func(v T) (R, error) {
		return fn(v), nil
	})
}

// FilterErr derives a lazy Seq yielding only the values of s for which
// pred returns true, in order. A non-nil error from pred stops the
// derived stream and is recorded on it. An error already recorded on s
// is inherited.
func FilterErr[T any](s *Seq[T], pred func(T) (bool, error)) *Seq[T] {
	d := &Seq[T]{}
	d.src = func(yield func(T) bool) {
		for v := range s.All() {
			keep, err := pred(v)
			if err != nil {
				d.err = err
				return
			}
			if keep {
				if !yield(v) {
					return
				}
			}
		}
		d.err = s.err
	}
	return d
}

// Filter derives a lazy Seq yielding only the values of s for which
// pred returns true, in order.
func Filter[T any](s *Seq[T], pred func(T) bool) *Seq[T] {
	return FilterErr(s, func(v T) (bool, error) {
		return pred(v), nil
	})
}
