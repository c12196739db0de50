//go:build !linux

package stream

import (
	"io"
	"os"
	"sync"
)

const nativeIO = false

// lockedWriter serializes whole Write calls so the byte-at-a-time path
// cannot interleave two values.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}

func newConsoleWriter() io.Writer { return &lockedWriter{w: ByteWise(os.Stdout)} }
func newConsoleReader() io.Reader { return os.Stdin }
