package raz

import "iter"

const vectorMinCap = 8

// Vector is a growable sequence that owns its storage.
//
// Elements are transferred by copy: Push stores a copy of its argument and
// growth copies every live element into the new storage.
type Vector[T any] struct {
	data []T // len(data) is the allocated capacity
	n    int
}

// NewVector returns an empty Vector with the default capacity.
func NewVector[T any]() *Vector[T] {
	return &Vector[T]{data: make([]T, vectorMinCap)}
}

// NewVectorLen returns a Vector of n zero values with capacity n.
func NewVectorLen[T any](n int) *Vector[T] {
	if n < 0 {
		panic(&IndexError{Index: n, Len: 0})
	}
	return &Vector[T]{data: make([]T, n), n: n}
}

// VectorOf returns a Vector holding copies of items, capacity len(items).
func VectorOf[T any](items ...T) *Vector[T] {
	data := make([]T, len(items))
	copy(data, items)
	return &Vector[T]{data: data, n: len(items)}
}

// Len returns the number of live elements.
func (v *Vector[T]) Len() int { return v.n }

// Cap returns the allocated capacity.
func (v *Vector[T]) Cap() int { return len(v.data) }

// Empty reports whether there are no live elements.
func (v *Vector[T]) Empty() bool { return v.n == 0 }

func (v *Vector[T]) grow() {
	newCap := len(v.data) * 2
	if newCap == 0 {
		newCap = vectorMinCap
	}
	data := make([]T, newCap)
	copy(data, v.data[:v.n])
	v.data = data
}

// Push appends a copy of x, doubling the capacity when full.
func (v *Vector[T]) Push(x T) {
	if v.n >= len(v.data) {
		v.grow()
	}
	v.data[v.n] = x
	v.n++
}

// Pop drops the last element. It returns ErrEmptyContainer when empty.
func (v *Vector[T]) Pop() error {
	if v.n == 0 {
		return ErrEmptyContainer
	}
	v.n--
	var zero T
	v.data[v.n] = zero
	return nil
}

// At returns the element at index i. It panics with an *IndexError when i
// is outside [0, Len()).
func (v *Vector[T]) At(i int) T {
	if err := checkIndex(i, v.n); err != nil {
		panic(err)
	}
	return v.data[i]
}

// Get returns the element at index i, or an *IndexError.
func (v *Vector[T]) Get(i int) (T, error) {
	if err := checkIndex(i, v.n); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// Set overwrites the element at index i. It panics like At.
func (v *Vector[T]) Set(i int, x T) {
	if err := checkIndex(i, v.n); err != nil {
		panic(err)
	}
	v.data[i] = x
}

// Front returns the first element, or ErrEmptyContainer.
func (v *Vector[T]) Front() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return v.data[0], nil
}

// Back returns the last element, or ErrEmptyContainer.
func (v *Vector[T]) Back() (T, error) {
	if v.n == 0 {
		var zero T
		return zero, ErrEmptyContainer
	}
	return v.data[v.n-1], nil
}

// Clear drops every element and keeps the storage.
func (v *Vector[T]) Clear() {
	clear(v.data[:v.n])
	v.n = 0
}

// Slice returns the live elements. The slice aliases the storage and is
// invalidated by the next growing Push.
func (v *Vector[T]) Slice() []T {
	return v.data[:v.n:v.n]
}

// All yields index/element pairs in insertion order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(i, v.data[i]) {
				return
			}
		}
	}
}

// Values yields the elements in insertion order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.n; i++ {
			if !yield(v.data[i]) {
				return
			}
		}
	}
}

// Clone returns a deep copy with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	data := make([]T, len(v.data))
	copy(data, v.data[:v.n])
	return &Vector[T]{data: data, n: v.n}
}

// Assign replaces the contents of v with a copy of o's elements.
func (v *Vector[T]) Assign(o *Vector[T]) {
	if v == o {
		return
	}
	data := make([]T, len(o.data))
	copy(data, o.data[:o.n])
	v.data = data
	v.n = o.n
}
