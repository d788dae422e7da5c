package jsonopt

// Apply merges o into dst with JSON merge-patch semantics: a defined value
// overwrites, an explicit null clears dst to the zero value, and an undefined
// field leaves dst untouched.
func Apply[T any](dst *T, o Optional[T]) {
	switch o.state {
	case stateDefined:
		*dst = o.value
	case stateNull:
		var zero T
		*dst = zero
	}
}

// ApplyPtr is Apply for pointer-typed destinations, where an explicit null
// clears the pointer itself.
func ApplyPtr[T any](dst **T, o Optional[T]) {
	switch o.state {
	case stateDefined:
		v := o.value
		*dst = &v
	case stateNull:
		*dst = nil
	}
}
