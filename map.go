package jsonopt

// Map, MapToNull and FlatMap change the payload type, which Go methods cannot
// do, so they live as package functions taking the source Optional first.

// Map returns Undefined when the key was absent. Otherwise it invokes fn with
// the raw payload (nil for the null state) and wraps the result: a non-nil
// result becomes a defined Optional, a nil result collapses to Undefined.
// The collapse also swallows a null-state source mapped through an identity
// function; use MapToNull when a null result must stay observable as null.
func Map[T, U any](o Optional[T], fn func(*T) *U) Optional[U] {
	if !o.IsPresent() {
		return Undefined[U]()
	}
	r := fn(o.ptr())
	if r == nil {
		return Undefined[U]()
	}
	return Of(*r)
}

// MapToNull is Map with a nil mapper result resolving to Null instead of
// Undefined.
func MapToNull[T, U any](o Optional[T], fn func(*T) *U) Optional[U] {
	if !o.IsPresent() {
		return Undefined[U]()
	}
	return OfNullable(fn(o.ptr()))
}

// FlatMap returns Undefined when the key was absent. Otherwise it invokes fn
// with the raw payload (nil for the null state) and returns the result
// directly, with no re-wrapping.
func FlatMap[T, U any](o Optional[T], fn func(*T) Optional[U]) Optional[U] {
	if !o.IsPresent() {
		return Undefined[U]()
	}
	return fn(o.ptr())
}
