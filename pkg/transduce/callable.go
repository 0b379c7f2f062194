package transduce

import (
	"fmt"
	"reflect"
	"runtime"
)

var errType = reflect.TypeOf((*error)(nil)).Elem()

// IsCallable reports whether v can take part in composition: a *Chain,
// a Transform-shaped function, or any single-parameter function
// adaptable through reflection.
func IsCallable(v any) bool {
	_, ok := asTransform(v)
	return ok
}

// asTransform coerces v into a Transform. Chains coerce to their
// direct-call form (first step only). Arbitrary single-parameter
// functions, like strings.ToUpper, are adapted through reflection; an
// optional trailing error result is respected.
func asTransform(v any) (Transform, bool) {
	switch f := v.(type) {
	case *Chain:
		return f.Invoke, true
	case Transform:
		return f, true
	case func(any) (any, error):
		return f, true
	case func(any) any:
		return func(in any) (any, error) {
			return f(in), nil
		}, true
	}
	return reflectFunc(v, 1)
}

// asAccumulator coerces v into an Accumulator for Reduce.
func asAccumulator(v any) (Accumulator, bool) {
	switch f := v.(type) {
	case Accumulator:
		return f, true
	case func(any, any) (any, error):
		return f, true
	case func(any, any) any:
		return func(acc, in any) (any, error) {
			return f(acc, in), nil
		}, true
	}
	fn, ok := reflectFunc(v, 2)
	if !ok {
		return nil, false
	}
	return func(acc, in any) (any, error) {
		return fn([]any{acc, in})
	}, true
}

// reflectFunc adapts an arbitrary function of arity narg (narg values
// in, one value out, optionally a trailing error out) into a Transform.
// For narg > 1 the adapted Transform expects its argument to be a []any
// holding the actual arguments.
func reflectFunc(v any, narg int) (Transform, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return nil, false
	}
	t := rv.Type()
	if t.IsVariadic() || t.NumIn() != narg {
		return nil, false
	}
	switch t.NumOut() {
	case 1:
		if t.Out(0) == errType {
			return nil, false
		}
	case 2:
		if t.Out(1) != errType {
			return nil, false
		}
	default:
		return nil, false
	}

	name := funcLabel(v)
	return func(in any) (any, error) {
		args := []any{in}
		if narg > 1 {
			packed, ok := in.([]any)
			if !ok || len(packed) != narg {
				return nil, fmt.Errorf("%s takes %d arguments, got %T: %w", name, narg, in, ErrArgument)
			}
			args = packed
		}

		call := make([]reflect.Value, narg)
		for i, a := range args {
			av, err := conform(a, t.In(i), name)
			if err != nil {
				return nil, err
			}
			call[i] = av
		}

		out := rv.Call(call)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, out[1].Interface().(error)
		}
		return out[0].Interface(), nil
	}, true
}

func conform(a any, pt reflect.Type, name string) (reflect.Value, error) {
	if a == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, fmt.Errorf("%s cannot take nil: %w", name, ErrArgument)
	}
	av := reflect.ValueOf(a)
	if !av.Type().AssignableTo(pt) {
		return reflect.Value{}, fmt.Errorf("%s cannot take %T: %w", name, a, ErrArgument)
	}
	return av, nil
}

// funcLabel renders a callable for display, the role str(func) plays in
// dynamic pipelines: function name for functions, type name otherwise.
func funcLabel(v any) string {
	rv := reflect.ValueOf(v)
	if rv.IsValid() && rv.Kind() == reflect.Func {
		if f := runtime.FuncForPC(rv.Pointer()); f != nil {
			return f.Name()
		}
	}
	return fmt.Sprintf("%T", v)
}

// IsNil reports whether v is nil or a nil pointer.
func IsNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// Truthy is the default Filter predicate: the dynamic-language boolean
// interpretation of a value. False values are nil, false, numeric zero,
// empty strings, empty collections, and nil pointers; everything else
// is true.
func Truthy(v any) bool {
	if IsNil(v) {
		return false
	}
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return len(x) > 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan, reflect.String:
		return rv.Len() > 0
	case reflect.Func, reflect.Interface:
		return !rv.IsNil()
	}
	return !rv.IsZero()
}
