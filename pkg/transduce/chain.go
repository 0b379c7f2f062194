package transduce

import (
	"fmt"
	"strings"
)

// Chain is an ordered pipeline of Units. A Chain is immutable from the
// outside: composition never mutates its operands, it always allocates
// a new Chain.
//
// The head transform and label duplicate the first unit's; they back
// direct invocation, which by contract runs the first step only.
type Chain struct {
	fn     Transform
	label  string
	steps  []*Unit
	labels []string
}

// New returns an identity chain of a single EmptyUnit.
func New() *Chain {
	return newChain(EmptyUnit())
}

func newChain(u *Unit) *Chain {
	return &Chain{
		fn:     u.fn,
		label:  u.label,
		steps:  []*Unit{u},
		labels: []string{u.label},
	}
}

// Combine concatenates two chains into a new one. The head transform
// and label are taken from left. Combine is associative: any grouping
// of the same operands flattens to the same step order.
func Combine(left, right *Chain) *Chain {
	steps := make([]*Unit, 0, len(left.steps)+len(right.steps))
	steps = append(steps, left.steps...)
	steps = append(steps, right.steps...)

	labels := make([]string, 0, len(left.labels)+len(right.labels))
	labels = append(labels, left.labels...)
	labels = append(labels, right.labels...)

	return &Chain{
		fn:     left.fn,
		label:  left.label,
		steps:  steps,
		labels: labels,
	}
}

// FromOperand guarantees a composition operand is a Chain. A Chain
// passes through unchanged, so repeated composition never nests chains
// inside chains. Any other callable is wrapped into a single-step chain
// labeled with its name. Non-callables are rejected with ErrNotCallable.
func FromOperand(v any) (*Chain, error) {
	if c, ok := v.(*Chain); ok {
		return c, nil
	}
	fn, ok := asTransform(v)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrNotCallable, v)
	}
	return newChain(NewUnit(fn, funcLabel(v))), nil
}

// Forward extends the pipeline to the right: chain >> other. The right
// operand must be callable; anything else is rejected with
// ErrNotCallable, never coerced.
func (c *Chain) Forward(other any) (*Chain, error) {
	rc, err := FromOperand(other)
	if err != nil {
		return nil, err
	}
	return Combine(c, rc), nil
}

// Backward composes from the left: other >> chain. A callable operand
// is prepended as the new first step and an extended chain is returned.
// A non-callable operand is the evaluation trigger: it is fed through
// the whole pipeline via Apply and the final value is returned raw.
func (c *Chain) Backward(other any) (any, error) {
	if IsCallable(other) {
		lc, err := FromOperand(other)
		if err != nil {
			return nil, err
		}
		return Combine(lc, c), nil
	}
	return c.Apply(other)
}

// Apply threads v through every step in order and returns the final
// result. A step error aborts the evaluation and propagates unchanged;
// the chain itself stays intact and reusable.
func (c *Chain) Apply(v any) (any, error) {
	var err error
	for _, u := range c.steps {
		v, err = u.Invoke(v)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

// Invoke runs the FIRST step only. This is the direct-call convenience
// for single-step chains; full evaluation goes through Backward or
// Apply. The asymmetry is part of the contract.
func (c *Chain) Invoke(in any) (any, error) {
	return c.fn(in)
}

func (c *Chain) Label() string {
	return c.label
}

// Len returns the number of steps.
func (c *Chain) Len() int {
	return len(c.steps)
}

// Labels returns a copy of the step labels in application order.
func (c *Chain) Labels() []string {
	out := make([]string, len(c.labels))
	copy(out, c.labels)
	return out
}

// String renders the pipeline in application order, for diagnostics
// only.
func (c *Chain) String() string {
	return "input >> " + strings.Join(c.labels, " >> ")
}
