package jsonopt

import (
	"fmt"
	"iter"
	"reflect"
)

// state discriminates the three field states. The zero state is undefined so
// that a zero Optional behaves like a field absent from the payload.
type state uint8

const (
	stateUndefined state = iota
	stateNull
	stateDefined
)

// Optional is a tri-state JSON field value: undefined (key absent from the
// payload), null (key present with an explicit JSON null), or defined (key
// present with a decoded value). The defined state never holds "no value";
// constructors that accept a possibly-nil payload route nil to the null state.
//
// The zero value is Undefined, which is what lets the decoders treat absent
// struct fields correctly without a registration step. Optional values are
// immutable; for comparable T the == operator compares state and payload
// structurally, so instances work as map keys.
type Optional[T any] struct {
	state state
	value T
}

// Undefined returns the Optional for a key absent from the payload.
// It is interchangeable with the zero value.
func Undefined[T any]() Optional[T] { return Optional[T]{} }

// Absent is an alias for Undefined.
func Absent[T any]() Optional[T] { return Undefined[T]() }

// Null returns the Optional for a key present with an explicit JSON null.
func Null[T any]() Optional[T] { return Optional[T]{state: stateNull} }

// Of returns a defined Optional holding v. For pointer-typed payloads prefer
// OfNullable: Of does not inspect v, so Of[*int](nil) would produce a defined
// state holding a nil pointer instead of routing to the null state.
func Of[T any](v T) Optional[T] { return Optional[T]{state: stateDefined, value: v} }

// OfNullable returns Null when v is nil and Of(*v) otherwise. This is the one
// constructor that accepts a possibly-nil payload; nil always routes to the
// null state, never to a defined state with no value.
func OfNullable[T any](v *T) Optional[T] {
	if v == nil {
		return Null[T]()
	}
	return Of(*v)
}

// ptr is the raw payload view handed to callbacks: nil unless defined.
func (o *Optional[T]) ptr() *T {
	if o.state == stateDefined {
		return &o.value
	}
	return nil
}

// IsPresent reports whether the key existed in the payload, i.e. the state is
// null or defined. Presence says nothing about the payload being non-nil.
func (o Optional[T]) IsPresent() bool { return o.state != stateUndefined }

// IsNull reports whether the key held an explicit JSON null.
func (o Optional[T]) IsNull() bool { return o.state == stateNull }

// IsUndefined reports whether the key was absent from the payload.
func (o Optional[T]) IsUndefined() bool { return o.state == stateUndefined }

// IsEmpty is an alias for IsUndefined.
func (o Optional[T]) IsEmpty() bool { return o.IsUndefined() }

// IsZero reports whether the state is undefined. It exists for the encoders:
// encoding/json (omitzero) and yaml.v3 (omitempty) consult it to drop absent
// fields from the output.
func (o Optional[T]) IsZero() bool { return o.IsUndefined() }

// Get returns the raw payload. It returns ErrUndefined when the key was
// absent, and a nil pointer with a nil error when the key held an explicit
// null. The nilable return on success is deliberate: it keeps null and defined
// distinguishable for callers that already checked presence.
func (o Optional[T]) Get() (*T, error) {
	if o.state == stateUndefined {
		return nil, ErrUndefined
	}
	return o.ptr(), nil
}

// MustGet is Get for callers that have already established presence. It panics
// with ErrUndefined when the key was absent.
func (o Optional[T]) MustGet() *T {
	if o.state == stateUndefined {
		panic(ErrUndefined)
	}
	return o.ptr()
}

// IfPresent invokes fn with the raw payload when the key was present and does
// nothing otherwise. The payload pointer is nil when the stored value was
// null; classic optionals never pass nil here, jsonopt does.
func (o Optional[T]) IfPresent(fn func(*T)) {
	if o.IsPresent() {
		fn(o.ptr())
	}
}

// IfPresentOrElse invokes fn with the raw payload (nil for the null state)
// when the key was present, and otherwise invokes the zero-argument fallback.
func (o Optional[T]) IfPresentOrElse(fn func(*T), otherwise func()) {
	if o.IsPresent() {
		fn(o.ptr())
		return
	}
	otherwise()
}

// Filter returns o unchanged when the key was absent. Otherwise it invokes
// pred with the raw payload (nil for the null state) and returns o when the
// predicate holds, Undefined when it does not.
func (o Optional[T]) Filter(pred func(*T) bool) Optional[T] {
	if !o.IsPresent() || pred(o.ptr()) {
		return o
	}
	return Undefined[T]()
}

// FilterToNull is Filter with a null result instead of an undefined one when
// the predicate rejects the payload.
func (o Optional[T]) FilterToNull(pred func(*T) bool) Optional[T] {
	if !o.IsPresent() || pred(o.ptr()) {
		return o
	}
	return Null[T]()
}

// Or returns o when the key was present and the supplied Optional otherwise.
func (o Optional[T]) Or(supply func() Optional[T]) Optional[T] {
	if o.IsPresent() {
		return o
	}
	return supply()
}

// Values yields nothing when the key was absent and exactly one payload
// pointer otherwise (nil for the null state). Each range restarts the
// sequence.
func (o Optional[T]) Values() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		if o.IsPresent() {
			yield(o.ptr())
		}
	}
}

// OrElse returns the raw payload when the key was present and other
// otherwise. Presence decides, not payload nilness: the null state returns
// nil, never other.
func (o Optional[T]) OrElse(other *T) *T {
	if o.IsPresent() {
		return o.ptr()
	}
	return other
}

// OrElseGet is OrElse with a lazily supplied fallback.
func (o Optional[T]) OrElseGet(supply func() *T) *T {
	if o.IsPresent() {
		return o.ptr()
	}
	return supply()
}

// OrElseError returns the raw payload when the key was present and otherwise
// the error built by errFn.
func (o Optional[T]) OrElseError(errFn func() error) (*T, error) {
	if o.IsPresent() {
		return o.ptr(), nil
	}
	return nil, errFn()
}

// Equal reports structural equality over state and payload. Payloads are
// compared with reflect.DeepEqual; for comparable T the == operator is the
// cheaper equivalent.
func (o Optional[T]) Equal(p Optional[T]) bool {
	if o.state != p.state {
		return false
	}
	if o.state != stateDefined {
		return true
	}
	return reflect.DeepEqual(o.value, p.value)
}

// String distinguishes the three states unambiguously.
func (o Optional[T]) String() string {
	switch o.state {
	case stateNull:
		return "null"
	case stateDefined:
		return fmt.Sprintf("value=%v", o.value)
	default:
		return "undefined"
	}
}
