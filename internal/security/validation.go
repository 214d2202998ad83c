// Package security validates file paths and sizes for files palettegen reads
// or writes on behalf of plugins and users.
package security

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrSizeLimit is returned by LimitedReader once its budget is spent.
var ErrSizeLimit = errors.New("size limit exceeded")

// ValidateOutputFile checks a plugin-provided filename. It must be relative,
// must not climb out of baseDir and must name something below it.
func ValidateOutputFile(filename, baseDir string) error {
	if filename == "" {
		return fmt.Errorf("empty output filename")
	}

	if filepath.IsAbs(filename) {
		return fmt.Errorf("output filename must be relative: %s", filename)
	}

	for part := range strings.SplitSeq(filepath.ToSlash(filename), "/") {
		if part == ".." {
			return fmt.Errorf("output filename contains directory traversal (..): %s", filename)
		}
	}

	if filepath.Clean(filepath.Join(baseDir, filename)) == filepath.Clean(baseDir) {
		return fmt.Errorf("output filename does not name a file: %s", filename)
	}

	return nil
}

// LimitedReader wraps an io.Reader and fails with ErrSizeLimit when the
// underlying reader holds more than Remaining bytes.
type LimitedReader struct {
	R         io.Reader
	Remaining int64
}

// Read implements io.Reader with size limits.
func (l *LimitedReader) Read(p []byte) (int, error) {
	if l.Remaining <= 0 {
		// A reader that is exactly at its limit may still be at EOF.
		var probe [1]byte
		if n, err := l.R.Read(probe[:]); n == 0 && errors.Is(err, io.EOF) {
			return 0, io.EOF
		}
		return 0, ErrSizeLimit
	}
	if int64(len(p)) > l.Remaining {
		p = p[:l.Remaining]
	}
	n, err := l.R.Read(p)
	l.Remaining -= int64(n)
	return n, err
}

// NewLimitedReader creates a new LimitedReader with the specified size limit.
func NewLimitedReader(r io.Reader, maxBytes int64) *LimitedReader {
	return &LimitedReader{
		R:         r,
		Remaining: maxBytes,
	}
}
