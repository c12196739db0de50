package stream

import (
	"io"
	"sync"

	"github.com/Neumenon/raz/raz"
)

var (
	consoleOut = sync.OnceValue(newConsoleWriter)
	consoleIn  = sync.OnceValue(newConsoleReader)
)

// Native reports whether the console streams use direct system calls on
// this platform rather than the byte-at-a-time fallback.
func Native() bool { return nativeIO }

// Stdout returns a Writer over the process console (fd 1). Writers returned
// by separate calls share the same underlying sink.
func Stdout() *Writer {
	return NewWriter(consoleOut())
}

// Stdin returns a Reader over the process console (fd 0).
func Stdin() *Reader {
	return NewReader(consoleIn())
}

// Console pairs an input and an output stream for prompted interaction.
type Console struct {
	In  *Reader
	Out *Writer

	// Echo writes each value read back to Out followed by a newline, so
	// that a transcript of non-interactive input reads like a session.
	Echo bool
}

// NewConsole creates a Console over r and w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{In: NewReader(r), Out: NewWriter(w)}
}

// StdConsole returns a Console over the process console.
func StdConsole() *Console {
	return &Console{In: Stdin(), Out: Stdout()}
}

// Print writes vals to the output stream.
func (c *Console) Print(vals ...any) error {
	return c.Out.Print(vals...).Err()
}

// Println writes vals followed by a newline.
func (c *Console) Println(vals ...any) error {
	return c.Out.Println(vals...).Err()
}

// Input writes prompt, if any, and reads one line.
func (c *Console) Input(prompt string) (*raz.Str, error) {
	if err := c.prompt(prompt); err != nil {
		return nil, err
	}
	line, err := c.In.Line()
	if err != nil {
		return nil, err
	}
	return line, c.echo(line)
}

func (c *Console) echo(s *raz.Str) error {
	if !c.Echo {
		return nil
	}
	return c.Out.Str(s).Endl().Err()
}

func (c *Console) prompt(prompt string) error {
	if prompt == "" {
		return nil
	}
	return c.Out.String(prompt).Err()
}

// Number lists the types InputAs can decode.
type Number interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64
}

// InputAs writes prompt, if any, and reads one token decoded as T. Values
// that do not fit T are reported as a *raz.ParseError wrapping raz.ErrRange.
func InputAs[T Number](c *Console, prompt string) (T, error) {
	var zero T
	if err := c.prompt(prompt); err != nil {
		return zero, err
	}
	tok, err := c.In.Token()
	if err != nil {
		return zero, err
	}
	if err := c.echo(tok); err != nil {
		return zero, err
	}

	switch any(zero).(type) {
	case float32, float64:
		f, err := raz.ParseFloat(tok)
		if err != nil {
			return zero, err
		}
		return T(f), nil
	case uint, uint8, uint16, uint32, uint64:
		u, err := raz.ParseUint(tok)
		if err != nil {
			return zero, err
		}
		if uint64(T(u)) != u {
			return zero, rangeError(tok)
		}
		return T(u), nil
	default:
		n, err := raz.ParseInt(tok)
		if err != nil {
			return zero, err
		}
		if int64(T(n)) != n {
			return zero, rangeError(tok)
		}
		return T(n), nil
	}
}

func rangeError(tok *raz.Str) error {
	return &raz.ParseError{Func: "InputAs", Input: tok.String(), Offset: -1, Err: raz.ErrRange}
}
