package todo

// Field is one updatable task attribute in a partial update: either
// unchanged (the zero value) or explicitly set via Set. This keeps "omitted"
// and "set to the zero value" distinguishable, so clearing a due date by
// setting it to "" is not the same as leaving it alone.
type Field[T any] struct {
	value T
	set   bool
}

func Set[T any](value T) Field[T] {
	return Field[T]{value: value, set: true}
}

func (f Field[T]) IsSet() bool {
	return f.set
}

// Value returns the assigned value; the zero value of T when unset.
func (f Field[T]) Value() T {
	return f.value
}
