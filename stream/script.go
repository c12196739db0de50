package stream

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// OpenScript opens a recorded input file to drive a Reader in place of the
// console. Files ending in .zst or .gz are decompressed on the fly.
func OpenScript(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}

	switch {
	case strings.HasSuffix(path, ".zst"):
		dec, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open script: zstd: %w", err)
		}
		return &scriptReader{Reader: dec, close: func() error {
			dec.Close()
			return f.Close()
		}}, nil

	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("open script: gzip: %w", err)
		}
		return &scriptReader{Reader: gz, close: func() error {
			gzErr := gz.Close()
			if err := f.Close(); err != nil {
				return err
			}
			return gzErr
		}}, nil

	default:
		return f, nil
	}
}

type scriptReader struct {
	io.Reader
	close func() error
}

func (s *scriptReader) Close() error { return s.close() }
