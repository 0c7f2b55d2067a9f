// Package nullcheck provides an optionally enforced nil-pointer check.
//
// An enabled Guard turns a nil pointer reaching a checked access into an
// immediate panic with an *Error, so the fault surfaces at the call that
// received the pointer rather than wherever it is eventually used. A
// disabled Guard makes every check a no-op: Deref returns the zero value
// and Check reports false.
package nullcheck

import (
	"fmt"
)

type Guard struct {
	enabled bool
}

var (
	Enabled  = Guard{enabled: true}
	Disabled = Guard{}
)

func New(enabled bool) Guard { return Guard{enabled: enabled} }

func (g Guard) Enabled() bool { return g.enabled }

func (g Guard) String() string {
	if g.enabled {
		return "enabled"
	}
	return "disabled"
}

// Error is the panic value raised by an enabled Guard.
type Error struct {
	Type string
}

func (e *Error) Error() string {
	return fmt.Sprintf("nullcheck: nil %s", e.Type)
}

// Check reports whether p is non-nil, panicking first if it is nil and g is
// enabled.
func Check[T any](g Guard, p *T) bool {
	if p != nil {
		return true
	}
	if g.enabled {
		panic(&Error{Type: fmt.Sprintf("%T", p)})
	}
	return false
}

// Deref returns *p. A nil p panics under an enabled Guard and yields the
// zero value under a disabled one.
func Deref[T any](g Guard, p *T) T {
	if !Check(g, p) {
		var zero T
		return zero
	}
	return *p
}

// Ref pairs a pointer with the Guard that validates access to it.
type Ref[T any] struct {
	guard Guard
	ptr   *T
}

func NewRef[T any](g Guard, p *T) Ref[T] { return Ref[T]{guard: g, ptr: p} }

func (r Ref[T]) IsNil() bool { return r.ptr == nil }

func (r Ref[T]) Get() T { return Deref(r.guard, r.ptr) }

// Set stores v through the pointer. A nil pointer panics under an enabled
// Guard and drops v under a disabled one.
func (r Ref[T]) Set(v T) {
	if Check(r.guard, r.ptr) {
		*r.ptr = v
	}
}
