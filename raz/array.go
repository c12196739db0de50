package raz

import "iter"

// Array is a fixed-length sequence.
type Array[T any] struct {
	data []T
}

// NewArray returns an Array of n zero values.
func NewArray[T any](n int) *Array[T] {
	return &Array[T]{data: make([]T, n)}
}

// ArrayOf returns an Array holding copies of items.
func ArrayOf[T any](items ...T) *Array[T] {
	data := make([]T, len(items))
	copy(data, items)
	return &Array[T]{data: data}
}

// Len returns the fixed length.
func (a *Array[T]) Len() int { return len(a.data) }

// At returns the element at index i, panicking with an *IndexError when out
// of range.
func (a *Array[T]) At(i int) T {
	if err := checkIndex(i, len(a.data)); err != nil {
		panic(err)
	}
	return a.data[i]
}

// Set stores x at index i, panicking with an *IndexError when out of range.
func (a *Array[T]) Set(i int, x T) {
	if err := checkIndex(i, len(a.data)); err != nil {
		panic(err)
	}
	a.data[i] = x
}

// Slice returns the elements; the slice aliases the storage.
func (a *Array[T]) Slice() []T { return a.data }

// All yields index/element pairs in order.
func (a *Array[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range a.data {
			if !yield(i, x) {
				return
			}
		}
	}
}
