package raz

import "iter"

const dictMinCap = 8

// Dict is an associative container backed by an array of key/value pairs.
//
// There is no hashing: Insert, Get, Contains and Erase scan the pairs
// linearly, so every operation is O(n). Dict is meant for the handful of
// entries a console program keeps around. Iteration follows insertion order,
// compacted on Erase.
type Dict[K comparable, V any] struct {
	data []Pair[K, V] // len(data) is the allocated capacity
	n    int
}

// NewDict returns an empty Dict with the default capacity.
func NewDict[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{data: make([]Pair[K, V], dictMinCap)}
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int { return d.n }

// Cap returns the allocated capacity.
func (d *Dict[K, V]) Cap() int { return len(d.data) }

// Empty reports whether there are no entries.
func (d *Dict[K, V]) Empty() bool { return d.n == 0 }

func (d *Dict[K, V]) index(key K) int {
	for i := 0; i < d.n; i++ {
		if d.data[i].First == key {
			return i
		}
	}
	return -1
}

// Insert stores value under key. An existing key is overwritten in place
// without growth or reordering; a new key is appended.
func (d *Dict[K, V]) Insert(key K, value V) {
	if i := d.index(key); i >= 0 {
		d.data[i].Second = value
		return
	}
	if d.n >= len(d.data) {
		newCap := len(d.data) * 2
		if newCap == 0 {
			newCap = dictMinCap
		}
		data := make([]Pair[K, V], newCap)
		copy(data, d.data[:d.n])
		d.data = data
	}
	d.data[d.n] = MakePair(key, value)
	d.n++
}

// Get returns the value stored under key, if any.
func (d *Dict[K, V]) Get(key K) Optional[V] {
	if i := d.index(key); i >= 0 {
		return Some(d.data[i].Second)
	}
	return None[V]()
}

// Contains reports whether key is present.
func (d *Dict[K, V]) Contains(key K) bool {
	return d.index(key) >= 0
}

// Erase removes key, shifting later entries left by one. It reports whether
// the key was present.
func (d *Dict[K, V]) Erase(key K) bool {
	i := d.index(key)
	if i < 0 {
		return false
	}
	copy(d.data[i:d.n-1], d.data[i+1:d.n])
	d.n--
	d.data[d.n] = Pair[K, V]{}
	return true
}

// Clear drops every entry and keeps the storage.
func (d *Dict[K, V]) Clear() {
	clear(d.data[:d.n])
	d.n = 0
}

// All yields key/value pairs in insertion order.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := 0; i < d.n; i++ {
			if !yield(d.data[i].First, d.data[i].Second) {
				return
			}
		}
	}
}

// Keys yields the keys in insertion order.
func (d *Dict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for i := 0; i < d.n; i++ {
			if !yield(d.data[i].First) {
				return
			}
		}
	}
}

// Clone returns a copy of d. Values are copied, not deep-cloned.
func (d *Dict[K, V]) Clone() *Dict[K, V] {
	data := make([]Pair[K, V], len(d.data))
	copy(data, d.data[:d.n])
	return &Dict[K, V]{data: data, n: d.n}
}
