package stream

import (
	"fmt"
	"io"

	"github.com/Neumenon/raz/raz"
)

// Writer formats primitive values onto an io.Writer.
//
// Every method formats one logical value into a transient raz.Str and hands
// it to the underlying writer in a single Write call. Methods return the
// Writer so calls can be chained; the first error is kept and every later
// call becomes a no-op. Check Err once the sequence is done.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) emit(p []byte) *Writer {
	if w.err != nil {
		return w
	}
	if _, err := w.w.Write(p); err != nil {
		w.err = fmt.Errorf("stream: write: %w", err)
	}
	return w
}

// String writes lit byte for byte.
func (w *Writer) String(lit string) *Writer {
	return w.emit([]byte(lit))
}

// Str writes the logical bytes of s.
func (w *Writer) Str(s *raz.Str) *Writer {
	return w.emit(s.Bytes())
}

// Char writes a single byte.
func (w *Writer) Char(c byte) *Writer {
	return w.emit([]byte{c})
}

// Bool writes true or false.
func (w *Writer) Bool(b bool) *Writer {
	if b {
		return w.String("true")
	}
	return w.String("false")
}

// Int writes n in base 10.
func (w *Writer) Int(n int64) *Writer {
	return w.emit(raz.FormatInt(n).Bytes())
}

// Uint writes n in base 10.
func (w *Writer) Uint(n uint64) *Writer {
	return w.emit(raz.FormatUint(n).Bytes())
}

// Float writes f with exactly four truncated fractional digits.
func (w *Writer) Float(f float64) *Writer {
	return w.emit(raz.FormatFloat(f).Bytes())
}

// Endl writes a single newline.
func (w *Writer) Endl() *Writer {
	return w.Char(Newline)
}

// Print writes each value with its own call, dispatching on type. A byte is
// written as a character, not a number; since uint8 is the same type, use
// Uint to print a small unsigned number. A rune is an int32 and prints as
// its code point, so characters go through Char or a byte conversion.
// Values of other types record an ErrUnsupportedType error.
func (w *Writer) Print(vals ...any) *Writer {
	for _, v := range vals {
		w.value(v)
	}
	return w
}

// Println is Print followed by Endl.
func (w *Writer) Println(vals ...any) *Writer {
	return w.Print(vals...).Endl()
}

func (w *Writer) value(v any) {
	switch x := v.(type) {
	case string:
		w.String(x)
	case *raz.Str:
		w.Str(x)
	case byte:
		w.Char(x)
	case bool:
		w.Bool(x)
	case int:
		w.Int(int64(x))
	case int8:
		w.Int(int64(x))
	case int16:
		w.Int(int64(x))
	case int32:
		w.Int(int64(x))
	case int64:
		w.Int(x)
	case uint:
		w.Uint(uint64(x))
	case uint16:
		w.Uint(uint64(x))
	case uint32:
		w.Uint(uint64(x))
	case uint64:
		w.Uint(x)
	case float32:
		w.Float(float64(x))
	case float64:
		w.Float(x)
	case endlMarker:
		w.Endl()
	default:
		if w.err == nil {
			w.err = unsupported(v)
		}
	}
}

// ByteWise returns a writer that forwards p to w one byte per Write call.
// It is the portable console path; the bytes and their order are the same
// as a single Write of p.
func ByteWise(w io.Writer) io.Writer {
	return byteWriter{w: w}
}

type byteWriter struct {
	w io.Writer
}

func (b byteWriter) Write(p []byte) (int, error) {
	for i := range p {
		if _, err := b.w.Write(p[i : i+1]); err != nil {
			return i, err
		}
	}
	return len(p), nil
}
