package stream

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/Neumenon/raz/raz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingWriter keeps every Write call separately.
type recordingWriter struct {
	calls [][]byte
}

func (r *recordingWriter) Write(p []byte) (int, error) {
	r.calls = append(r.calls, append([]byte(nil), p...))
	return len(p), nil
}

func (r *recordingWriter) String() string {
	return string(bytes.Join(r.calls, nil))
}

type failingWriter struct {
	after int
	n     int
}

var errDiskFull = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n >= f.after {
		return 0, errDiskFull
	}
	f.n++
	return len(p), nil
}

// ============================================================
// Formatting
// ============================================================

func TestWriter_Primitives(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.String("n=").Int(-42).Char(' ').Uint(255).Char(' ').
		Float(3.14159).Char(' ').Bool(true).Char(' ').Bool(false).
		Str(raz.StrFrom(" ok")).Endl()
	require.NoError(t, w.Err())

	assert.Equal(t, "n=-42 255 3.1415 true false ok\n", buf.String())
}

func TestWriter_FloatFormat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.5, "1.5000"},
		{-0.25, "-0.2500"},
		{10, "10.0000"},
		{0.99999, "0.9999"},
		{math.Inf(1), "inf"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, NewWriter(&buf).Float(tt.in).Err())
		assert.Equal(t, tt.want, buf.String())
	}
}

func TestWriter_OneWritePerValue(t *testing.T) {
	rec := &recordingWriter{}
	w := NewWriter(rec)
	w.Print("Sum: ", 12.5, Endl)
	w.Int(1234567)
	require.NoError(t, w.Err())

	require.Len(t, rec.calls, 4)
	assert.Equal(t, "Sum: ", string(rec.calls[0]))
	assert.Equal(t, "12.5000", string(rec.calls[1]))
	assert.Equal(t, "\n", string(rec.calls[2]))
	assert.Equal(t, "1234567", string(rec.calls[3]))
}

func TestWriter_Print(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Println(int8(-1), int16(2), int32(3), int64(4), uint(5), uint16(6), uint32(7), uint64(8), byte('x'), float32(0.5), true)
	require.NoError(t, w.Err())
	assert.Equal(t, "-12345678x0.5000true\n", buf.String())
}

func TestWriter_PrintByteAndRune(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Print('x', byte('y'), uint8(7)).Char(' ').Uint(uint64(uint8(7))).Char(' ').Char('z')
	require.NoError(t, w.Err())
	assert.Equal(t, "120y\a 7 z", buf.String())
}

func TestWriter_PrintUnsupported(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	w.Print("a", struct{}{}, "b")
	assert.ErrorIs(t, w.Err(), ErrUnsupportedType)
	assert.Equal(t, "a", buf.String())
}

func TestWriter_StickyError(t *testing.T) {
	fw := &failingWriter{after: 1}
	w := NewWriter(fw)
	w.String("first").String("second").Int(3)

	require.Error(t, w.Err())
	assert.ErrorIs(t, w.Err(), errDiskFull)
	assert.Equal(t, 1, fw.n)
}

// ============================================================
// Native vs byte-wise path
// ============================================================

func TestByteWise_SameBytes(t *testing.T) {
	write := func(w *Writer) {
		w.Println("Correct! You guessed it in ", 7, " attempts")
		w.Print(-3.75, byte(' '), false, Endl)
	}

	var direct bytes.Buffer
	write(NewWriter(&direct))

	rec := &recordingWriter{}
	write(NewWriter(ByteWise(rec)))

	assert.Equal(t, direct.String(), rec.String())
	assert.Len(t, rec.calls, direct.Len(), "one call per byte")
	for _, c := range rec.calls {
		assert.Len(t, c, 1)
	}
}

func TestByteWise_ShortOnError(t *testing.T) {
	n, err := ByteWise(&failingWriter{after: 2}).Write([]byte("abcd"))
	assert.ErrorIs(t, err, errDiskFull)
	assert.Equal(t, 2, n)
}
