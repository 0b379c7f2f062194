package transduce

import (
	"time"

	"github.com/google/uuid"
)

// Transform is the shape every step of a chain is reduced to: a
// single-argument function that either produces a value or fails.
type Transform func(in any) (any, error)

// Accumulator is the shape of a Reduce folding function.
type Accumulator func(acc, in any) (any, error)

// Unit is one transformation step of a chain: a Transform together with
// a display label. Units are immutable after construction and are
// identified by id, never by structure.
type Unit struct {
	id        uuid.UUID
	createdAt time.Time
	fn        Transform
	label     string
}

// NewUnit wraps fn with a display label.
func NewUnit(fn Transform, label string) *Unit {
	return &Unit{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		fn:        fn,
		label:     label,
	}
}

// EmptyUnit returns an identity step.
func EmptyUnit() *Unit {
	return NewUnit(func(in any) (any, error) {
		return in, nil
	}, "EmptyUnit")
}

// Invoke applies the unit's transform to in. Errors from the wrapped
// function propagate unchanged.
func (u *Unit) Invoke(in any) (any, error) {
	return u.fn(in)
}

func (u *Unit) Label() string {
	return u.label
}

func (u *Unit) Id() uuid.UUID {
	return u.id
}

// CreatedAt time creation (UTC)
func (u *Unit) CreatedAt() time.Time {
	return u.createdAt
}
