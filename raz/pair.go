package raz

// Pair is a two-field tuple.
type Pair[T, U any] struct {
	First  T
	Second U
}

// MakePair builds a Pair from its two fields.
func MakePair[T, U any](first T, second U) Pair[T, U] {
	return Pair[T, U]{First: first, Second: second}
}
