// Package raz implements a minimal runtime layer of hand-rolled primitives.
//
// raz is designed to be:
//   - Small and explicit (every growth and copy is visible in the code)
//   - Byte-oriented (ASCII text only, no locale)
//   - Deterministic (the same input always produces the same bytes)
//
// # Containers
//
//	Str          growable byte buffer, zero-terminated, capacity 16, doubling
//	Vector[T]    growable sequence, capacity 8, doubling
//	Dict[K, V]   associative container with linear-scan lookup
//	Array[T]     fixed-length sequence
//	Queue[T]     FIFO over a Vector (Pop shifts left)
//	Stack[T]     LIFO over a Vector
//
// Containers are handed out as pointers and never share storage. Use Clone
// for a deep copy and Assign to replace the contents of an existing value.
// None of them are safe for concurrent use.
//
// # Numeric Codec
//
// Integers are written as plain base-10 digits with an optional leading '-'.
// Floats are written with exactly four fractional digits, truncated, never
// rounded:
//
//	FormatFloat(3.14159)  // "3.1415"
//	FormatFloat(-0.5)     // "-0.5000"
//
// Parsing validates every byte and reports failures as *ParseError.
//
// # Error Taxonomy
//
//	ErrSyntax          malformed numeric text (wrapped in *ParseError)
//	ErrRange           numeric text overflows the target type
//	ErrEmptyContainer  Pop/Front/Back/Top on an empty container
//	ErrOutOfBounds     index beyond the logical length (wrapped in *IndexError)
package raz
