// Package stream implements the raw console streams of the raz runtime.
//
// The streams provide:
//   - One write call per logical value on output (no batching across values)
//   - One read call per byte on input
//   - Direct system calls on fd 0 and fd 1 on linux, a byte-at-a-time
//     fallback through os.Stdin/os.Stdout elsewhere
//   - Substitutable io.Reader / io.Writer endpoints for tests and scripts
//
// # Text Format
//
// Strings are written byte for byte, booleans as true/false, integers in
// base 10 and floats as [-]<int>.<4 digits>, truncated. Endl writes a single
// '\n'.
//
// Input is tokenized on space and newline by Reader.Token, and on newline
// only by Reader.Line. io.EOF marks the end of input.
package stream

import (
	"errors"
	"fmt"
)

// Token delimiters.
const (
	Space   byte = ' '
	Newline byte = '\n'
)

// ErrUnsupportedType is recorded by Writer.Print for values it cannot format.
var ErrUnsupportedType = errors.New("unsupported value type")

// Endl is the newline marker accepted by Writer.Print.
var Endl = endlMarker{}

type endlMarker struct{}

func (endlMarker) String() string { return "\n" }

func isDelim(c byte) bool {
	return c == Space || c == Newline
}

func unsupported(v any) error {
	return fmt.Errorf("stream: %w: %T", ErrUnsupportedType, v)
}
