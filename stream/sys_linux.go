//go:build linux

package stream

import (
	"io"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// nativeIO reports that the console streams issue system calls directly.
const nativeIO = true

// fdWriter writes straight to a file descriptor with write(2). One Write
// is one system call unless the kernel accepts a short count.
type fdWriter struct {
	mu sync.Mutex
	fd int
}

func (f *fdWriter) Write(p []byte) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for n < len(p) {
		m, err := unix.Write(f.fd, p[n:])
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return n, os.NewSyscallError("write", err)
		}
		n += m
	}
	return n, nil
}

// fdReader reads straight from a file descriptor with read(2). A zero-byte
// read is reported as io.EOF.
type fdReader struct {
	mu sync.Mutex
	fd int
}

func (f *fdReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	for {
		n, err := unix.Read(f.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return 0, os.NewSyscallError("read", err)
		}
		if n == 0 {
			return 0, io.EOF
		}
		return n, nil
	}
}

func newConsoleWriter() io.Writer { return &fdWriter{fd: unix.Stdout} }
func newConsoleReader() io.Reader { return &fdReader{fd: unix.Stdin} }
