package raz

// Optional holds a value that may be absent.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsPresent reports whether a value is held.
func (o Optional[T]) IsPresent() bool { return o.present }

// Get returns the held value and whether it is present.
// The returned value is the zero value when absent.
func (o Optional[T]) Get() (T, bool) {
	if !o.present {
		var zero T
		return zero, false
	}
	return o.value, true
}

// MustGet returns the held value and panics with ErrEmptyContainer when absent.
func (o Optional[T]) MustGet() T {
	if !o.present {
		panic(ErrEmptyContainer)
	}
	return o.value
}

// ValueOr returns the held value, or def when absent.
func (o Optional[T]) ValueOr(def T) T {
	if o.present {
		return o.value
	}
	return def
}
