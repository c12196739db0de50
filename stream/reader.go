package stream

import (
	"errors"
	"fmt"
	"io"

	"github.com/Neumenon/raz/raz"
)

// Reader reads characters, tokens and lines from an io.Reader.
//
// Each byte is fetched with its own one-byte Read call, so nothing past the
// consumed delimiter is ever taken from the source.
type Reader struct {
	r   io.Reader
	one [1]byte
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadByte reads a single byte. It returns io.EOF once the source is
// exhausted.
func (r *Reader) ReadByte() (byte, error) {
	if _, err := io.ReadFull(r.r, r.one[:]); err != nil {
		if errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, fmt.Errorf("stream: read: %w", err)
	}
	return r.one[0], nil
}

// Char reads one raw byte, delimiters included.
func (r *Reader) Char() (byte, error) {
	return r.ReadByte()
}

// Token skips leading spaces and newlines, then reads bytes up to the next
// space or newline. The delimiter is consumed and discarded. A token cut
// short by the end of input is returned without error; io.EOF is returned
// only when no byte of a token was read.
func (r *Reader) Token() (*raz.Str, error) {
	tok := raz.NewStr()
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && !tok.Empty() {
				return tok, nil
			}
			return nil, err
		}
		if isDelim(c) {
			if tok.Empty() {
				continue
			}
			return tok, nil
		}
		tok.PushBack(c)
	}
}

// Line reads bytes up to the next newline, which is consumed and discarded.
// Spaces are kept. A final line without a newline is returned without
// error; io.EOF is returned only when nothing was left to read.
func (r *Reader) Line() (*raz.Str, error) {
	line := raz.NewStr()
	read := false
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && read {
				return line, nil
			}
			return nil, err
		}
		read = true
		if c == Newline {
			return line, nil
		}
		line.PushBack(c)
	}
}

// Int reads one token as a signed integer.
func (r *Reader) Int() (int64, error) {
	tok, err := r.Token()
	if err != nil {
		return 0, err
	}
	return raz.ParseInt(tok)
}

// Uint reads one token as an unsigned integer.
func (r *Reader) Uint() (uint64, error) {
	tok, err := r.Token()
	if err != nil {
		return 0, err
	}
	return raz.ParseUint(tok)
}

// Float reads one token as a float.
func (r *Reader) Float() (float64, error) {
	tok, err := r.Token()
	if err != nil {
		return 0, err
	}
	return raz.ParseFloat(tok)
}

// Bool reads one token as true or false.
func (r *Reader) Bool() (bool, error) {
	tok, err := r.Token()
	if err != nil {
		return false, err
	}
	return raz.ParseBool(tok)
}
