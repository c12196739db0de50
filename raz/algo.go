package raz

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Sort orders s in place with a bubble sort. Only strictly greater
// neighbours are swapped, so equal elements keep their relative order.
func Sort[T cmp.Ordered](s []T) {
	n := len(s)
	for i := 0; i+1 < n; i++ {
		for j := 0; j < n-i-1; j++ {
			if s[j] > s[j+1] {
				Swap(&s[j], &s[j+1])
			}
		}
	}
}

// SortVector sorts the live elements of v in place.
func SortVector[T cmp.Ordered](v *Vector[T]) {
	Sort(v.Slice())
}

// Find returns the index of the first element equal to x, or -1.
func Find[T comparable](s []T, x T) int {
	for i := range s {
		if s[i] == x {
			return i
		}
	}
	return -1
}

// FindVector is Find over the live elements of v.
func FindVector[T comparable](v *Vector[T], x T) int {
	return Find(v.Slice(), x)
}

// Min returns the smaller of a and b, or b when they are equal.
func Min[T cmp.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b, or b when they are equal.
func Max[T cmp.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}

// Abs returns |x|. The most negative integer of a type maps to itself.
func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Pow raises base to an integer exponent by repeated squaring. A negative
// exponent yields the reciprocal. Every int is accepted, math.MinInt
// included.
func Pow(base float64, exp int) float64 {
	n := uint(exp)
	if exp < 0 {
		n = -n
	}
	result := 1.0
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			result *= base
		}
		base *= base
	}
	if exp < 0 {
		return 1 / result
	}
	return result
}

// Swap exchanges the values behind a and b.
func Swap[T any](a, b *T) {
	*a, *b = *b, *a
}
